package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// titleStart opens a resource title. `"` and `'` close with themselves,
// `(` closes with `)`.
func titleStart(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok {
		return tokenizer.Nok
	}

	var closer byte
	switch b {
	case '"', '\'':
		closer = b
	case '(':
		closer = ')'
	default:
		return tokenizer.Nok
	}

	t.TokenizeState.TitleMarker = closer
	t.Enter(event.ResourceTitle)
	t.Enter(event.ResourceTitleMarker)
	t.Consume()
	t.Exit(event.ResourceTitleMarker)
	return tokenizer.Next(tokenizer.StateTitleBegin)
}

// titleBegin sits between the opening marker (or the end of the string)
// and whatever follows: the closing marker, or title text.
func titleBegin(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok {
		t.TokenizeState.TitleMarker = 0
		return tokenizer.Nok
	}

	if b == t.TokenizeState.TitleMarker {
		t.Enter(event.ResourceTitleMarker)
		t.Consume()
		t.Exit(event.ResourceTitleMarker)
		t.Exit(event.ResourceTitle)
		t.TokenizeState.TitleMarker = 0
		return tokenizer.Ok
	}

	t.Enter(event.ResourceTitleString)
	return tokenizer.Retry(tokenizer.StateTitleInside)
}

func titleInside(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok {
		t.TokenizeState.TitleMarker = 0
		return tokenizer.Nok
	}

	switch {
	case b == t.TokenizeState.TitleMarker:
		t.Exit(event.ResourceTitleString)
		return tokenizer.Retry(tokenizer.StateTitleBegin)
	case b == '(' && t.TokenizeState.TitleMarker == ')':
		// An unescaped `(` inside a paren title is not allowed.
		t.TokenizeState.TitleMarker = 0
		return tokenizer.Nok
	case b == '\\':
		t.Consume()
		return tokenizer.Next(tokenizer.StateTitleEscape)
	default:
		t.Consume()
		return tokenizer.Next(tokenizer.StateTitleInside)
	}
}

func titleEscape(t *tokenizer.Tokenizer) tokenizer.State {
	if b, ok := t.Current(); ok && (b == t.TokenizeState.TitleMarker || b == '\\' || b == '(') {
		t.Consume()
		return tokenizer.Next(tokenizer.StateTitleInside)
	}
	return tokenizer.Retry(tokenizer.StateTitleInside)
}
