// Package editmap implements the batched event-log mutator the
// resolvers rewrite the event log through: they record out-of-order
// (at, remove, insert) edits and a single Consume pass applies them all
// in one sorted sweep, repairing any cross-event Link indices along the
// way.
package editmap

import (
	"sort"

	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/internal/invariant"
)

type record struct {
	at     int
	remove int
	insert []event.Event
}

// EditMap accumulates edits during a resolver pass and applies them
// once. It is single-shot: Consume may only be called once, and Add/
// AddBefore may not be called after Consume.
type EditMap struct {
	consumed bool
	edits    []record
}

// New returns an empty EditMap.
func New() *EditMap {
	return &EditMap{}
}

// Add records an edit: remove `remove` events starting at `at` and
// insert `insert` there. If an edit already exists at `at`, the two are
// merged: remove counts sum, and insert is appended after the existing
// inserts.
func (m *EditMap) Add(at, remove int, insert []event.Event) {
	m.addImpl(at, remove, insert, false)
}

// AddBefore records an edit like Add, but prepends insert before any
// existing inserts at the same `at`. Attention resolution needs this:
// it inserts opener events before closer events recorded at the same
// position.
func (m *EditMap) AddBefore(at, remove int, insert []event.Event) {
	m.addImpl(at, remove, insert, true)
}

func (m *EditMap) addImpl(at, remove int, insert []event.Event, before bool) {
	invariant.Precondition(!m.consumed, "cannot add to an EditMap after consuming")

	for i := range m.edits {
		if m.edits[i].at == at {
			m.edits[i].remove += remove
			if before {
				m.edits[i].insert = append(append([]event.Event{}, insert...), m.edits[i].insert...)
			} else {
				m.edits[i].insert = append(m.edits[i].insert, insert...)
			}
			return
		}
	}

	m.edits = append(m.edits, record{at: at, remove: remove, insert: insert})
}

// Consume sorts the recorded edits by `at` and produces the rewritten
// event vector in one pass, repairing Link.Previous/Link.Next on every
// original event that survives through a cumulative shift table.
// Consuming an EditMap twice is a programming error.
func (m *EditMap) Consume(events []event.Event) []event.Event {
	invariant.Precondition(!m.consumed, "cannot consume an EditMap twice")
	m.consumed = true

	sort.SliceStable(m.edits, func(i, j int) bool { return m.edits[i].at < m.edits[j].at })

	jumps := make([]jump, 0, len(m.edits))
	shift := 0
	for _, e := range m.edits {
		shift += len(e.insert) - e.remove
		jumps = append(jumps, jump{at: e.at, shift: shift})
	}

	out := make([]event.Event, 0, len(events)+shift)
	start := 0

	for _, e := range m.edits {
		if start < e.at {
			out = append(out, shiftLinks(events[start:e.at], jumps)...)
		}

		for _, ins := range e.insert {
			invariant.Precondition(ins.Link == nil, "inserted events must not carry link indices")
		}
		out = append(out, e.insert...)

		start = e.at + e.remove
	}

	if start < len(events) {
		out = append(out, shiftLinks(events[start:], jumps)...)
	}

	return out
}

type jump struct {
	at    int
	shift int
}

// shiftLinks returns a copy of events with Link.Previous/Link.Next
// rewritten through jumps. For an original index i, the repaired index
// is i + shift, where shift is the cumulative shift of the rightmost
// jump entry whose `at` is <= i.
func shiftLinks(events []event.Event, jumps []jump) []event.Event {
	out := make([]event.Event, len(events))
	copy(out, events)

	remap := func(i int) int {
		shift := 0
		for _, j := range jumps {
			if j.at > i {
				break
			}
			shift = j.shift
		}
		next := i + shift
		invariant.Invariant(next >= 0, "link index cannot shift before 0")
		return next
	}

	for i := range out {
		if out[i].Link == nil {
			continue
		}
		link := *out[i].Link
		if link.Previous != nil {
			p := remap(*link.Previous)
			link.Previous = &p
		}
		if link.Next != nil {
			n := remap(*link.Next)
			link.Next = &n
		}
		out[i].Link = &link
	}

	return out
}
