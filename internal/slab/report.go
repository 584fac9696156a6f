package slab

import (
	"fmt"
	"io"
)

// Column labels and separators of the leak report. The separators keep
// their historic widths; columns narrower than a label simply do not pad.
const (
	addressLabel = "Address"
	cacheLabel   = "Cache"
	callerLabel  = "Caller"

	addressRule = "======="
	cacheRule   = "====="
	callerRule  = "======"
)

// WriteReport renders the surviving entries as a column-aligned table.
// WriteReport 将存活的分配条目渲染为列对齐的表格。
//
// The address and cache columns are padded to the widest surviving value;
// the caller column is never padded since it ends the row. With no
// survivors both widths are zero and only the header and rule rows are
// emitted.
func WriteReport(w io.Writer, entries []Entry) {
	addrWidth, nameWidth := 0, 0
	for _, e := range entries {
		if len(e.Address) > addrWidth {
			addrWidth = len(e.Address)
		}
		if len(e.Cache) > nameWidth {
			nameWidth = len(e.Cache)
		}
	}

	fmt.Fprintf(w, "%-*s %-*s %s\n", addrWidth, addressLabel, nameWidth, cacheLabel, callerLabel)
	fmt.Fprintf(w, "%-*s %-*s %s\n", addrWidth, addressRule, nameWidth, cacheRule, callerRule)
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s %-*s %s\n", addrWidth, e.Address, nameWidth, e.Cache, e.Caller)
	}
}
