package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompileFilter tests filter compilation.
// TestCompileFilter 测试过滤器编译。
func TestCompileFilter(t *testing.T) {
	_, err := CompileFilter(`Cache == "kmalloc_64"`)
	assert.NoError(t, err)

	// Syntax errors are rejected / 语法错误被拒绝
	_, err = CompileFilter(`Cache ==`)
	assert.Error(t, err)

	// Non-boolean results are rejected at compile time
	// 非布尔结果在编译期被拒绝
	_, err = CompileFilter(`Cache`)
	assert.Error(t, err)

	// Unknown fields are rejected / 未知字段被拒绝
	_, err = CompileFilter(`Size > 64`)
	assert.Error(t, err)
}

// TestFilterApply tests survivor filtering.
// TestFilterApply 测试存活条目过滤。
func TestFilterApply(t *testing.T) {
	entries := []Entry{
		{Address: "0x1000", Cache: "kmalloc_64", Caller: "vfs_node_alloc()"},
		{Address: "0x2000", Cache: "kmalloc_128", Caller: "thread_create()"},
		{Address: "0x3000", Cache: "kmalloc_64", Caller: "ipc_port_alloc()"},
	}

	f, err := CompileFilter(`Cache == "kmalloc_64"`)
	require.NoError(t, err)

	kept, err := f.Apply(entries)
	require.NoError(t, err)
	require.Len(t, kept, 2)
	assert.Equal(t, "0x1000", kept[0].Address)
	assert.Equal(t, "0x3000", kept[1].Address)
}

// TestFilterCallerContains tests matching on the free-form caller field.
func TestFilterCallerContains(t *testing.T) {
	f, err := CompileFilter(`Caller contains "vfs"`)
	require.NoError(t, err)

	ok, err := f.Match(Entry{Address: "0x1000", Cache: "kmalloc_64", Caller: "vfs_node_alloc()"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Match(Entry{Address: "0x2000", Cache: "kmalloc_64", Caller: "thread_create()"})
	require.NoError(t, err)
	assert.False(t, ok)
}
