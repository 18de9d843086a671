package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// spaceOrTabEolStart consumes whitespace between resource parts: runs
// of spaces and tabs with at most one line ending. Fails when there is
// no whitespace at all.
func spaceOrTabEolStart(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok || (b != ' ' && b != '\t' && b != '\n') {
		return tokenizer.Nok
	}

	t.TokenizeState.SeenEol = false
	return tokenizer.Retry(tokenizer.StateSpaceOrTabEolInside)
}

func spaceOrTabEolInside(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()

	switch {
	case ok && (b == ' ' || b == '\t'):
		if top, open := t.TopConstruct(); !open || top != event.SpaceOrTab {
			t.Enter(event.SpaceOrTab)
		}
		t.Consume()
		return tokenizer.Next(tokenizer.StateSpaceOrTabEolInside)

	case ok && b == '\n' && !t.TokenizeState.SeenEol:
		if top, open := t.TopConstruct(); open && top == event.SpaceOrTab {
			t.Exit(event.SpaceOrTab)
		}
		t.TokenizeState.SeenEol = true
		t.Enter(event.LineEnding)
		t.Consume()
		t.Exit(event.LineEnding)
		return tokenizer.Next(tokenizer.StateSpaceOrTabEolInside)

	default:
		if top, open := t.TopConstruct(); open && top == event.SpaceOrTab {
			t.Exit(event.SpaceOrTab)
		}
		t.TokenizeState.SeenEol = false
		return tokenizer.Ok
	}
}
