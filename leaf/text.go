package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/internal/invariant"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// textStart is the text content loop: at each position it hands off to
// whichever construct the current byte could begin, falling back to
// plain data when the construct declines.
func textStart(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok {
		flushData(t)
		// Every other resolver is registered by now; merging adjacent
		// data runs must come after all of them.
		t.RegisterResolver(dataResolverName, resolveData)
		return tokenizer.Ok
	}

	switch b {
	case '*', '_':
		flushData(t)
		t.Attempt(tokenizer.Next(tokenizer.StateTextStart), tokenizer.Next(tokenizer.StateTextData))
		return tokenizer.Retry(tokenizer.StateAttentionStart)
	case '[':
		flushData(t)
		t.Attempt(tokenizer.Next(tokenizer.StateTextStart), tokenizer.Next(tokenizer.StateTextData))
		return tokenizer.Retry(tokenizer.StateLabelStartLink)
	case '!':
		flushData(t)
		t.Attempt(tokenizer.Next(tokenizer.StateTextStart), tokenizer.Next(tokenizer.StateTextData))
		return tokenizer.Retry(tokenizer.StateLabelStartImage)
	case ']':
		flushData(t)
		t.Attempt(tokenizer.Next(tokenizer.StateTextStart), tokenizer.Next(tokenizer.StateTextData))
		return tokenizer.Retry(tokenizer.StateLabelEndStart)
	case '\n':
		flushData(t)
		t.Enter(event.LineEnding)
		t.Consume()
		t.Exit(event.LineEnding)
		return tokenizer.Next(tokenizer.StateTextStart)
	default:
		return tokenizer.Retry(tokenizer.StateTextData)
	}
}

// textData accumulates one byte into the open Data run, opening a run
// if none is open.
func textData(t *tokenizer.Tokenizer) tokenizer.State {
	if top, ok := t.TopConstruct(); !ok || top != event.Data {
		enterData(t)
	}
	t.Consume()
	return tokenizer.Next(tokenizer.StateTextStart)
}

// flushData closes the open Data run, if any.
func flushData(t *tokenizer.Tokenizer) {
	if top, ok := t.TopConstruct(); ok && top == event.Data {
		t.Exit(event.Data)
	}
}

// enterData opens a Data run. A run that directly continues the
// previous one across a single line ending is threaded to it through
// the events' content links, so downstream consumers can treat the two
// as one logical run.
func enterData(t *tokenizer.Tokenizer) {
	n := len(t.Events)
	if n >= 3 &&
		t.Events[n-1].Kind == event.Exit && t.Events[n-1].Name == event.LineEnding &&
		t.Events[n-2].Kind == event.Enter && t.Events[n-2].Name == event.LineEnding &&
		t.Events[n-3].Kind == event.Exit && t.Events[n-3].Name == event.Data {
		// Data runs hold no nested events, so the matching Enter sits
		// directly before the Exit.
		previous := n - 4
		invariant.Invariant(t.Events[previous].Kind == event.Enter && t.Events[previous].Name == event.Data,
			"data exit must follow its enter")

		next := n
		if t.Events[previous].Link == nil {
			t.Events[previous].Link = &event.LinkRef{}
		}
		t.Events[previous].Link.Next = &next
		t.EnterLink(event.Data, &event.LinkRef{Previous: &previous})
		return
	}

	t.Enter(event.Data)
}
