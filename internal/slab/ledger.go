// Package slab reconstructs the set of live kernel slab allocations from a
// boot log and reports the survivors, i.e. likely leaks.
//
// The kernel's slab allocator traces every object it hands out or takes
// back as a single line on the debug console. Replaying those lines in file
// order yields the allocations that were never freed by the time the log
// ended.
package slab

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// A slab trace line carries exactly seven whitespace-separated fields, the
// last of which is the rest of the line verbatim (the caller description
// may itself contain spaces):
//
//	slab: <verb> <address> <size> <cache> <count> <caller...>
//
// Anything else on the console is noise and is skipped, not rejected.
const (
	eventTag    = "slab:"
	eventFields = 7
)

// Verbs understood by the replay. Unknown verbs are skipped so newer
// kernels can emit new trace kinds without breaking older tools.
const (
	verbAllocated = "allocated"
	verbFreed     = "freed"
)

// Event is one parsed slab trace line. The size and count fields of the
// line are opaque metadata and are not retained.
type Event struct {
	Verb    string
	Address string
	Cache   string
	Caller  string
}

// Entry is one live allocation in the ledger.
type Entry struct {
	Address string
	Cache   string
	Caller  string
}

// ParseLine classifies a log line. The second return value is false for
// anything that is not a slab trace event: wrong tag, too few fields, or
// an empty line. A trailing carriage return is stripped so logs captured
// over a serial console with CRLF endings replay the same as plain ones.
func ParseLine(line string) (Event, bool) {
	tokens := tokenize(strings.TrimSuffix(line, "\r"))
	if len(tokens) != eventFields || tokens[0] != eventTag {
		return Event{}, false
	}
	return Event{
		Verb:    tokens[1],
		Address: tokens[2],
		Cache:   tokens[4],
		Caller:  tokens[6],
	}, true
}

// tokenize splits a line into at most eventFields tokens. Runs of blanks
// separate the leading tokens; once the bound is reached the remainder of
// the line, minus leading blanks, becomes the final token unchanged.
func tokenize(line string) []string {
	tokens := make([]string, 0, eventFields)
	i := 0
	for len(tokens) < eventFields-1 {
		for i < len(line) && isBlank(line[i]) {
			i++
		}
		if i == len(line) {
			return tokens
		}
		start := i
		for i < len(line) && !isBlank(line[i]) {
			i++
		}
		tokens = append(tokens, line[start:i])
	}
	for i < len(line) && isBlank(line[i]) {
		i++
	}
	if i < len(line) {
		tokens = append(tokens, line[i:])
	}
	return tokens
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// Ledger tracks the currently-live allocations while a log is replayed.
// Ledger 在回放日志时跟踪当前存活的分配。
type Ledger struct {
	entries map[string]Entry
	// order holds live addresses in first-allocation order so the final
	// report is deterministic.
	order []string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]Entry)}
}

// Apply replays a single event into the ledger.
//
// An "allocated" event records or overwrites the entry for its address
// (last write wins, keeping the address's original position). A "freed"
// event removes the entry if present; freeing an unknown address is a
// no-op, which tolerates logs that started recording mid-boot. Any other
// verb is ignored.
func (l *Ledger) Apply(ev Event) {
	switch ev.Verb {
	case verbAllocated:
		if _, ok := l.entries[ev.Address]; !ok {
			l.order = append(l.order, ev.Address)
		}
		l.entries[ev.Address] = Entry{
			Address: ev.Address,
			Cache:   ev.Cache,
			Caller:  ev.Caller,
		}
	case verbFreed:
		if _, ok := l.entries[ev.Address]; ok {
			delete(l.entries, ev.Address)
			l.drop(ev.Address)
		}
	}
}

func (l *Ledger) drop(address string) {
	for i, addr := range l.order {
		if addr == address {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}

// Len returns the number of live entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Live returns the surviving entries in first-allocation order.
func (l *Ledger) Live() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, addr := range l.order {
		out = append(out, l.entries[addr])
	}
	return out
}

// maxLineBytes bounds a single log line. Console logs occasionally carry
// huge lines (binary spew, wrapped panics); 1 MiB is far beyond any real
// slab trace line while keeping a corrupt log from exhausting memory.
const maxLineBytes = 1 << 20

// Build replays every line from r into a fresh ledger. Lines that are not
// slab trace events are skipped silently.
func Build(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if ev, ok := ParseLine(scanner.Text()); ok {
			ledger.Apply(ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// BuildFromFile replays the log file at path. Open or read failures are
// returned as-is; there is nothing to recover.
func BuildFromFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Build(f)
}
