package slab

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteReport tests column alignment against exact output.
// TestWriteReport 针对精确输出测试列对齐。
func TestWriteReport(t *testing.T) {
	entries := []Entry{
		{Address: "0x2000", Cache: "kmalloc_128", Caller: "thread_create()"},
		{Address: "0xffff800000001000", Cache: "vm_page", Caller: "page fault at 0x10"},
	}

	var buf bytes.Buffer
	WriteReport(&buf, entries)

	want := strings.Join([]string{
		"Address            Cache       Caller",
		"=======            =====       ======",
		"0x2000             kmalloc_128 thread_create()",
		"0xffff800000001000 vm_page     page fault at 0x10",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// TestWriteReportEmpty tests that zero survivors produce only the header
// and rule rows with zero-width columns.
func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, nil)
	assert.Equal(t, "Address Cache Caller\n======= ===== ======\n", buf.String())
}

// TestReportEndToEnd replays a small log and checks the rendered table.
// TestReportEndToEnd 回放小日志并检查渲染的表格。
func TestReportEndToEnd(t *testing.T) {
	log := strings.Join([]string{
		"slab: allocated 0x1000 64 kmalloc_64 1 foo()",
		"slab: allocated 0x2000 128 kmalloc_128 1 bar()",
		"slab: freed 0x1000 64 kmalloc_64 0 foo()",
	}, "\n")

	ledger, err := Build(strings.NewReader(log))
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, ledger.Live())

	out := buf.String()
	assert.NotContains(t, out, "0x1000")
	assert.Contains(t, out, "0x2000 kmalloc_128 bar()")
}
