package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/internal/identifier"
	"github.com/markdown-core/tokenizer/internal/invariant"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// Reference labels longer than this cannot match a definition.
const linkReferenceSizeMax = 999

// referenceFull parses the explicit second label of `[text][label]`.
func referenceFull(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	invariant.Precondition(ok && b == '[', "full reference must start at `[`")

	t.Enter(event.Reference)
	t.Enter(event.ReferenceMarker)
	t.Consume()
	t.Exit(event.ReferenceMarker)
	t.TokenizeState.Size = 0
	return tokenizer.Next(tokenizer.StateReferenceFullOpen)
}

func referenceFullOpen(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	// `[]` is a collapsed reference, not an empty full one, and a
	// label cannot open another bracket.
	if !ok || b == '[' || b == ']' {
		return tokenizer.Nok
	}

	t.Enter(event.ReferenceString)
	return tokenizer.Retry(tokenizer.StateReferenceFullInside)
}

func referenceFullInside(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok || b == '[' {
		t.TokenizeState.Size = 0
		return tokenizer.Nok
	}

	if b == ']' {
		t.Exit(event.ReferenceString)
		t.TokenizeState.Size = 0
		return tokenizer.Retry(tokenizer.StateReferenceFullEnd)
	}

	if t.TokenizeState.Size >= linkReferenceSizeMax {
		t.TokenizeState.Size = 0
		return tokenizer.Nok
	}
	t.TokenizeState.Size++
	t.Consume()
	if b == '\\' {
		return tokenizer.Next(tokenizer.StateReferenceFullEscape)
	}
	return tokenizer.Next(tokenizer.StateReferenceFullInside)
}

func referenceFullEscape(t *tokenizer.Tokenizer) tokenizer.State {
	if b, ok := t.Current(); ok && (b == '[' || b == ']' || b == '\\') {
		t.TokenizeState.Size++
		t.Consume()
		return tokenizer.Next(tokenizer.StateReferenceFullInside)
	}
	return tokenizer.Retry(tokenizer.StateReferenceFullInside)
}

// referenceFullEnd consumes the closing `]` and only succeeds when the
// explicit label's normalized identifier is defined.
func referenceFullEnd(t *tokenizer.Tokenizer) tokenizer.State {
	t.Enter(event.ReferenceMarker)
	t.Consume()
	t.Exit(event.ReferenceMarker)
	t.Exit(event.Reference)

	if t.Definitions.Has(fullReferenceID(t)) {
		return tokenizer.Ok
	}
	return tokenizer.Nok
}

// fullReferenceID reads the just-emitted ReferenceString pair back out
// of the event log and normalizes the bytes it spans.
func fullReferenceID(t *tokenizer.Tokenizer) string {
	start, end := -1, -1
	for i := len(t.Events) - 1; i >= 0; i-- {
		e := &t.Events[i]
		if e.Name != event.ReferenceString {
			continue
		}
		if e.Kind == event.Exit {
			end = e.Point.Index
		} else {
			start = e.Point.Index
			break
		}
	}
	invariant.Invariant(start >= 0 && end >= start, "full reference must have emitted its string")
	return identifier.Normalize(string(t.Source[start:end]))
}

// referenceCollapsed parses `[]` after a label. Only attempted when the
// label's own identifier is defined.
func referenceCollapsed(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	invariant.Precondition(ok && b == '[', "collapsed reference must start at `[`")

	t.Enter(event.Reference)
	t.Enter(event.ReferenceMarker)
	t.Consume()
	t.Exit(event.ReferenceMarker)
	return tokenizer.Next(tokenizer.StateReferenceCollapsedOpen)
}

func referenceCollapsedOpen(t *tokenizer.Tokenizer) tokenizer.State {
	if b, ok := t.Current(); ok && b == ']' {
		t.Enter(event.ReferenceMarker)
		t.Consume()
		t.Exit(event.ReferenceMarker)
		t.Exit(event.Reference)
		return tokenizer.Ok
	}
	return tokenizer.Nok
}
