package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/resolver/attention"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// attentionStart begins a run of identical `*` or `_` markers. Whether
// the run opens or closes emphasis is not knowable here; the resolver
// decides after the surrounding text is tokenized.
func attentionStart(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok || (b != '*' && b != '_') {
		return tokenizer.Nok
	}

	t.TokenizeState.Marker = b
	t.Enter(event.AttentionSequence)
	return tokenizer.Retry(tokenizer.StateAttentionInside)
}

func attentionInside(t *tokenizer.Tokenizer) tokenizer.State {
	if b, ok := t.Current(); ok && b == t.TokenizeState.Marker {
		t.Consume()
		return tokenizer.Next(tokenizer.StateAttentionInside)
	}

	t.Exit(event.AttentionSequence)
	t.RegisterResolver(attention.Name, attention.Resolve)
	t.TokenizeState.Marker = 0
	return tokenizer.Ok
}
