package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/internal/invariant"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// resourceStart opens an inline resource `( destination [title] )`.
// Only dispatched when the caller has already seen `(`.
func resourceStart(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	invariant.Precondition(ok && b == '(', "resource must start at `(`")

	t.Enter(event.Resource)
	t.Enter(event.ResourceMarker)
	t.Consume()
	t.Exit(event.ResourceMarker)
	return tokenizer.Next(tokenizer.StateResourceBefore)
}

func resourceBefore(t *tokenizer.Tokenizer) tokenizer.State {
	t.Attempt(tokenizer.Retry(tokenizer.StateResourceOpen), tokenizer.Retry(tokenizer.StateResourceOpen))
	return tokenizer.Retry(tokenizer.StateSpaceOrTabEolStart)
}

func resourceOpen(t *tokenizer.Tokenizer) tokenizer.State {
	if b, ok := t.Current(); ok && b == ')' {
		// Empty destination: `[a]()`.
		return tokenizer.Retry(tokenizer.StateResourceEnd)
	}

	// A destination that fails fails the whole resource.
	t.Attempt(tokenizer.Retry(tokenizer.StateResourceDestinationAfter), tokenizer.Nok)
	return tokenizer.Retry(tokenizer.StateDestinationStart)
}

func resourceDestinationAfter(t *tokenizer.Tokenizer) tokenizer.State {
	t.Attempt(tokenizer.Retry(tokenizer.StateResourceBetween), tokenizer.Retry(tokenizer.StateResourceEnd))
	return tokenizer.Retry(tokenizer.StateSpaceOrTabEolStart)
}

// resourceBetween runs after whitespace following the destination: a
// title may open here, otherwise the resource must close.
func resourceBetween(t *tokenizer.Tokenizer) tokenizer.State {
	switch b, ok := t.Current(); {
	case ok && (b == '"' || b == '\'' || b == '('):
		t.Attempt(tokenizer.Retry(tokenizer.StateResourceTitleAfter), tokenizer.Nok)
		return tokenizer.Retry(tokenizer.StateTitleStart)
	default:
		return tokenizer.Retry(tokenizer.StateResourceEnd)
	}
}

func resourceTitleAfter(t *tokenizer.Tokenizer) tokenizer.State {
	t.Attempt(tokenizer.Retry(tokenizer.StateResourceEnd), tokenizer.Retry(tokenizer.StateResourceEnd))
	return tokenizer.Retry(tokenizer.StateSpaceOrTabEolStart)
}

func resourceEnd(t *tokenizer.Tokenizer) tokenizer.State {
	if b, ok := t.Current(); ok && b == ')' {
		t.Enter(event.ResourceMarker)
		t.Consume()
		t.Exit(event.ResourceMarker)
		t.Exit(event.Resource)
		return tokenizer.Ok
	}
	return tokenizer.Nok
}
