package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/resolver/media"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// labelStartLink recognizes `[` and pushes a label start that a later
// `]` may close into a link.
func labelStartLink(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok || b != '[' {
		return tokenizer.Nok
	}

	t.Enter(event.LabelLink)
	t.Enter(event.LabelMarker)
	t.Consume()
	t.Exit(event.LabelMarker)
	t.Exit(event.LabelLink)

	pushLabelStart(t)
	return tokenizer.Ok
}

// labelStartImage recognizes `![`. The `!` alone proves nothing; the
// construct fails (and the byte becomes data) unless `[` follows.
func labelStartImage(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok || b != '!' {
		return tokenizer.Nok
	}

	t.Enter(event.LabelImage)
	t.Enter(event.LabelMarker)
	t.Consume()
	return tokenizer.Next(tokenizer.StateLabelStartImageOpen)
}

func labelStartImageOpen(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok || b != '[' {
		return tokenizer.Nok
	}

	t.Consume()
	t.Exit(event.LabelMarker)
	t.Exit(event.LabelImage)

	pushLabelStart(t)
	return tokenizer.Ok
}

// pushLabelStart records the four events just emitted (group Enter,
// marker pair, group Exit) as an open label start. The media resolver
// is registered here already so that starts that never match still get
// rewritten to data.
func pushLabelStart(t *tokenizer.Tokenizer) {
	exitIndex := len(t.Events) - 1
	t.LabelStarts = append(t.LabelStarts, tokenizer.LabelStart{
		Start: [2]int{exitIndex - 3, exitIndex},
	})
	t.RegisterResolverBefore(media.Name, media.Resolve)
}
