package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// Raw destinations allow balanced parens up to this depth; deeper input
// is treated as not-a-destination rather than scanned indefinitely.
const resourceDestinationBalanceMax = 32

// destinationStart dispatches between the `<...>` literal form and the
// raw form.
func destinationStart(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok {
		return tokenizer.Nok
	}

	switch {
	case b == '<':
		t.Enter(event.ResourceDestination)
		t.Enter(event.ResourceDestinationLiteral)
		t.Enter(event.ResourceDestinationLiteralMarker)
		t.Consume()
		t.Exit(event.ResourceDestinationLiteralMarker)
		return tokenizer.Next(tokenizer.StateDestinationLiteral)
	case b == ')' || b == ' ' || b == '\t' || b == '\n' || b < 0x20:
		return tokenizer.Nok
	default:
		t.Enter(event.ResourceDestination)
		t.Enter(event.ResourceDestinationRaw)
		t.Enter(event.ResourceDestinationString)
		t.TokenizeState.Balance = 0
		return tokenizer.Retry(tokenizer.StateDestinationRaw)
	}
}

func destinationLiteral(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok || b == '<' || b == '\n' {
		// Unclosed literal; the attempt unwinds the events.
		return tokenizer.Nok
	}

	if b == '>' {
		if top, open := t.TopConstruct(); open && top == event.ResourceDestinationString {
			t.Exit(event.ResourceDestinationString)
		}
		t.Enter(event.ResourceDestinationLiteralMarker)
		t.Consume()
		t.Exit(event.ResourceDestinationLiteralMarker)
		t.Exit(event.ResourceDestinationLiteral)
		t.Exit(event.ResourceDestination)
		return tokenizer.Ok
	}

	if top, open := t.TopConstruct(); !open || top != event.ResourceDestinationString {
		t.Enter(event.ResourceDestinationString)
	}
	t.Consume()
	if b == '\\' {
		return tokenizer.Next(tokenizer.StateDestinationLiteralEscape)
	}
	return tokenizer.Next(tokenizer.StateDestinationLiteral)
}

func destinationLiteralEscape(t *tokenizer.Tokenizer) tokenizer.State {
	if b, ok := t.Current(); ok && (b == '<' || b == '>' || b == '\\') {
		t.Consume()
		return tokenizer.Next(tokenizer.StateDestinationLiteral)
	}
	return tokenizer.Retry(tokenizer.StateDestinationLiteral)
}

func destinationRaw(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	// Whitespace and control bytes end a raw destination without being
	// part of it.
	if !ok || b == ' ' || b < 0x20 {
		t.Exit(event.ResourceDestinationString)
		t.Exit(event.ResourceDestinationRaw)
		t.Exit(event.ResourceDestination)
		t.TokenizeState.Balance = 0
		return tokenizer.Ok
	}

	switch b {
	case '(':
		if t.TokenizeState.Balance >= resourceDestinationBalanceMax {
			t.TokenizeState.Balance = 0
			return tokenizer.Nok
		}
		t.TokenizeState.Balance++
		t.Consume()
		return tokenizer.Next(tokenizer.StateDestinationRaw)
	case ')':
		if t.TokenizeState.Balance == 0 {
			t.Exit(event.ResourceDestinationString)
			t.Exit(event.ResourceDestinationRaw)
			t.Exit(event.ResourceDestination)
			return tokenizer.Ok
		}
		t.TokenizeState.Balance--
		t.Consume()
		return tokenizer.Next(tokenizer.StateDestinationRaw)
	case '\\':
		t.Consume()
		return tokenizer.Next(tokenizer.StateDestinationRawEscape)
	default:
		t.Consume()
		return tokenizer.Next(tokenizer.StateDestinationRaw)
	}
}

func destinationRawEscape(t *tokenizer.Tokenizer) tokenizer.State {
	if b, ok := t.Current(); ok && (b == '(' || b == ')' || b == '\\') {
		t.Consume()
		return tokenizer.Next(tokenizer.StateDestinationRaw)
	}
	return tokenizer.Retry(tokenizer.StateDestinationRaw)
}
