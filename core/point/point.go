// Package point implements the coordinate and byte-slice model that
// every other tokenizer package builds on: a Point addresses a single
// location in the source buffer, and a Slice addresses a byte range
// between two Points.
package point

// TabSize is the number of columns a tab character expands to. VS
// (virtual space) counts fall in [0, TabSize).
const TabSize = 4

// Point is a coordinate into the source buffer. Line and Column are
// 1-indexed; Index is the 0-indexed byte offset. VS holds the number
// of virtual spaces consumed so far inside a tab expansion - it lets a
// Point address a position *inside* a tab character, which Index alone
// cannot do.
type Point struct {
	Line   int
	Column int
	Index  int
	VS     int
}

// Advance returns the Point immediately after consuming one byte b at
// this Point (line/column/index bookkeeping only; callers that expand
// tabs into virtual spaces update VS themselves before calling this for
// the trailing non-tab byte).
func (p Point) Advance(b byte) Point {
	next := p
	next.Index++
	next.VS = 0
	if b == '\n' {
		next.Line++
		next.Column = 1
	} else {
		next.Column++
	}
	return next
}

// Position is a half-open range between two Points, start inclusive,
// end exclusive.
type Position struct {
	Start Point
	End   Point
}

// Slice is a byte range addressed by a Position, plus the virtual-space
// padding implied at either end. Bytes never include the padding: a
// caller that needs the padded text calls String.
type Slice struct {
	Bytes  []byte
	Before int // virtual spaces implied before Bytes
	After  int // virtual spaces implied after Bytes
}

// FromPosition slices source for a Position, translating leading and
// trailing virtual-space counts: a nonzero VS before the range means
// the range starts mid-tab, so the byte index is advanced past the tab
// and the remaining columns before the tab stop become leading padding;
// symmetrically for a nonzero VS after.
func FromPosition(source []byte, pos Position) Slice {
	before := pos.Start.VS
	after := pos.End.VS
	start := pos.Start.Index
	end := pos.End.Index

	if before > 0 {
		before = TabSize - before
		start++
	}
	if after > 0 {
		after--
		end++
	}

	return Slice{Bytes: source[start:end], Before: before, After: after}
}

// FromIndices slices source by raw byte indices with no virtual-space
// padding. Indices cannot represent virtual spaces.
func FromIndices(source []byte, start, end int) Slice {
	return Slice{Bytes: source[start:end]}
}

// Len returns the slice length including implied virtual-space padding.
func (s Slice) Len() int {
	return len(s.Bytes) + s.Before + s.After
}

// String renders the slice as text, expanding leading virtual spaces
// into literal spaces. Trailing virtual spaces are not expected in
// practice (every call site consumes them before asking for text) and
// panic via the invariant package's assertions are the caller's
// responsibility, not this low-level helper's.
func (s Slice) String() string {
	if s.Before == 0 {
		return string(s.Bytes)
	}
	buf := make([]byte, 0, s.Len())
	for i := 0; i < s.Before; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, s.Bytes...)
	return string(buf)
}
