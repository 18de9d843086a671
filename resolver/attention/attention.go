// Package attention pairs emphasis/strong delimiter runs after
// tokenization. The tokenizer emits AttentionSequence placeholders for
// every `*`/`_` run; pairing is deferred to this resolver because
// whether a run opens or closes depends on Unicode classification of
// surrounding characters and on far-apart runs, which cannot be decided
// incrementally.
package attention

import (
	"unicode/utf8"

	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/core/point"
	"github.com/markdown-core/tokenizer/internal/unicodeclass"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// Name registers this resolver.
const Name = "attention"

// sequence is one AttentionSequence with everything pairing needs:
// which marker formed it, at what container depth it sits, where its
// Enter currently lives in the event log, and how many markers are
// still unconsumed.
type sequence struct {
	marker     byte
	balance    int
	eventIndex int
	startPoint point.Point
	endPoint   point.Point
	size       int
	open       bool
	close      bool
}

// Resolve classifies every AttentionSequence, pairs openers with
// closers, rewrites matches into Emphasis/Strong groupings through the
// edit map, and downgrades whatever remains to plain data.
func Resolve(t *tokenizer.Tokenizer) {
	sequences := pair(t, classify(t))

	// Remaining sequences are just text.
	for i := range sequences {
		t.Events[sequences[i].eventIndex].Name = event.Data
		t.Events[sequences[i].eventIndex+1].Name = event.Data
	}
}

// classify walks the events once and builds the sequence list. balance
// counts open Enter events so that pairing can later require opener and
// closer to sit at the same nesting depth.
func classify(t *tokenizer.Tokenizer) []sequence {
	var sequences []sequence
	balance := 0

	for index := 0; index < len(t.Events); index++ {
		enter := &t.Events[index]

		if enter.Kind != event.Enter {
			balance--
			continue
		}
		balance++

		if enter.Name != event.AttentionSequence {
			continue
		}

		exit := &t.Events[index+1]

		before := unicodeclass.Classify(beforeRune(t.Source, enter.Point.Index))
		after := unicodeclass.Classify(afterRune(t.Source, exit.Point.Index))

		open := after == unicodeclass.Other ||
			(after == unicodeclass.Punctuation && before != unicodeclass.Other)
		// TODO: GFM strike-through would add a configured-marker
		// disjunct here; keep the classification in one place so that
		// stays a local change.
		close := before == unicodeclass.Other ||
			(before == unicodeclass.Punctuation && after != unicodeclass.Other)

		marker := t.Source[enter.Point.Index]
		if marker == '_' {
			// Underscore runs inside a word can neither open nor
			// close. Both adjustments read the unadjusted flags.
			o, c := open, close
			open = o && (before != unicodeclass.Other || !c)
			close = c && (after != unicodeclass.Other || !o)
		}

		sequences = append(sequences, sequence{
			marker:     marker,
			balance:    balance,
			eventIndex: index,
			startPoint: enter.Point,
			endPoint:   exit.Point,
			size:       exit.Point.Index - enter.Point.Index,
			open:       open,
			close:      close,
		})
	}

	return sequences
}

// pair walks the sequences left to right, and for each closer scans
// backward for the nearest valid opener, forming inner matches first.
// Returns the sequences that survive with markers left over.
func pair(t *tokenizer.Tokenizer, sequences []sequence) []sequence {
	close := 0

	for close < len(sequences) {
		next := close + 1

		if sequences[close].close {
			open := close
			for open > 0 {
				open--

				if !sequences[open].open ||
					sequences[close].marker != sequences[open].marker ||
					sequences[close].balance != sequences[open].balance {
					continue
				}

				// Rule of three: if the opener can also close or the
				// closer can also open, and the closer's size is not a
				// multiple of three while the sum of both sizes is,
				// this opener is not a match; keep scanning back.
				if (sequences[open].close || sequences[close].open) &&
					sequences[close].size%3 != 0 &&
					(sequences[open].size+sequences[close].size)%3 == 0 {
					continue
				}

				take := 1
				if sequences[open].size > 1 && sequences[close].size > 1 {
					take = 2
				}

				// Matched. Everything strictly between opener and
				// closer can no longer open anything, which is what
				// rules out <em>a <strong>b</em> c</strong>.
				for between := open + 1; between < close; between++ {
					sequences[between].open = false
				}

				match(t, sequences, open, close, take)

				// Stay on this closer: its residue may close another
				// opener further back.
				next = close
				if sequences[close].size == 0 {
					sequences = remove(sequences, close)
				}
				if open < len(sequences) && sequences[open].size == 0 {
					sequences = remove(sequences, open)
					next--
				}

				break
			}
		}

		close = next
	}

	return sequences
}

// match deducts take markers from the opener/closer pair and records
// the Emphasis/Strong grouping events around the consumed markers. The
// closer's start point shifts forward and the opener's end point shifts
// backward; whatever remains of either sequence stays in the event log
// with its points updated in place.
func match(t *tokenizer.Tokenizer, sequences []sequence, open, close, take int) {
	seqClose := &sequences[close]
	closeEventIndex := seqClose.eventIndex
	closeEnter := seqClose.startPoint
	// Sequences are runs of single-byte markers, so point arithmetic by
	// take bytes never lands mid-character and VS never changes.
	seqClose.size -= take
	seqClose.startPoint.Column += take
	seqClose.startPoint.Index += take
	closeExit := seqClose.startPoint

	if seqClose.size == 0 {
		t.Map.Add(closeEventIndex, 2, nil)
	} else {
		t.Events[closeEventIndex].Point = closeExit
	}

	seqOpen := &sequences[open]
	openEventIndex := seqOpen.eventIndex
	openExit := seqOpen.endPoint
	seqOpen.size -= take
	seqOpen.endPoint.Column -= take
	seqOpen.endPoint.Index -= take
	openEnter := seqOpen.endPoint

	if seqOpen.size == 0 {
		t.Map.Add(openEventIndex, 2, nil)
	} else {
		t.Events[openEventIndex+1].Point = openEnter
	}

	group := event.Emphasis
	groupSequence := event.EmphasisSequence
	groupText := event.EmphasisText
	if take == 2 {
		group = event.Strong
		groupSequence = event.StrongSequence
		groupText = event.StrongText
	}

	// Opener events go after the opening sequence's pair (which might
	// remain), and ahead of any closer events already recorded there.
	t.Map.AddBefore(openEventIndex+2, 0, []event.Event{
		{Kind: event.Enter, Name: group, Point: openEnter},
		{Kind: event.Enter, Name: groupSequence, Point: openEnter},
		{Kind: event.Exit, Name: groupSequence, Point: openExit},
		{Kind: event.Enter, Name: groupText, Point: openExit},
	})
	t.Map.Add(closeEventIndex, 0, []event.Event{
		{Kind: event.Exit, Name: groupText, Point: closeEnter},
		{Kind: event.Enter, Name: groupSequence, Point: closeEnter},
		{Kind: event.Exit, Name: groupSequence, Point: closeExit},
		{Kind: event.Exit, Name: group, Point: closeExit},
	})
}

func remove(sequences []sequence, at int) []sequence {
	return append(sequences[:at], sequences[at+1:]...)
}

// beforeRune decodes the scalar that ends immediately before index.
// Only the 4 preceding bytes matter; invalid bytes decode lossily to
// the replacement character.
func beforeRune(source []byte, index int) (rune, bool) {
	start := index - utf8.UTFMax
	if start < 0 {
		start = 0
	}
	if index == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRune(source[start:index])
	return r, true
}

// afterRune decodes the scalar starting at index.
func afterRune(source []byte, index int) (rune, bool) {
	if index >= len(source) {
		return 0, false
	}
	end := index + utf8.UTFMax
	if end > len(source) {
		end = len(source)
	}
	r, _ := utf8.DecodeRune(source[index:end])
	return r, true
}
