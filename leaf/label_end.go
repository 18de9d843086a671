package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/internal/identifier"
	"github.com/markdown-core/tokenizer/resolver/media"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// labelEndStart fires on `]`. It looks for the nearest label start that
// has not already been balanced away; finding an inactive one burns it
// (links must not nest) and fails, so the `]` becomes data.
func labelEndStart(t *tokenizer.Tokenizer) tokenizer.State {
	b, ok := t.Current()
	if !ok || b != ']' {
		return tokenizer.Nok
	}

	index := -1
	for i := len(t.LabelStarts) - 1; i >= 0; i-- {
		if !t.LabelStarts[i].Balanced {
			index = i
			break
		}
	}
	if index < 0 {
		return tokenizer.Nok
	}
	if t.LabelStarts[index].Inactive {
		t.LabelStarts[index].Balanced = true
		return tokenizer.Nok
	}

	start := t.LabelStarts[index].Start
	ts := &t.TokenizeState
	ts.LabelStart = index
	ts.MediaStart = start
	ts.LabelEndEnter = len(t.Events)
	// The proposed identifier is the label text between the start's
	// closing bracket and this `]`, regardless of which branch matches;
	// full references override it with their explicit second label.
	ts.ID = identifier.Normalize(string(t.Source[t.Events[start[1]].Point.Index:t.Point().Index]))

	t.Enter(event.LabelEnd)
	t.Enter(event.LabelMarker)
	t.Consume()
	t.Exit(event.LabelMarker)
	t.Exit(event.LabelEnd)
	return tokenizer.Next(tokenizer.StateLabelEndAfter)
}

// labelEndAfter branches on the byte after `]`: an inline resource, a
// full or collapsed reference, or a bare shortcut reference.
func labelEndAfter(t *tokenizer.Tokenizer) tokenizer.State {
	defined := t.Definitions.Has(t.TokenizeState.ID)
	b, ok := t.Current()

	switch {
	case ok && b == '(':
		// A failed resource can still be a valid shortcut.
		nok := tokenizer.Retry(tokenizer.StateLabelEndNok)
		if defined {
			nok = tokenizer.Retry(tokenizer.StateLabelEndOk)
		}
		t.Attempt(tokenizer.Retry(tokenizer.StateLabelEndOk), nok)
		return tokenizer.Retry(tokenizer.StateResourceStart)

	case ok && b == '[':
		nok := tokenizer.Retry(tokenizer.StateLabelEndNok)
		if defined {
			nok = tokenizer.Retry(tokenizer.StateLabelEndReferenceNotFull)
		}
		t.Attempt(tokenizer.Retry(tokenizer.StateLabelEndOk), nok)
		return tokenizer.Retry(tokenizer.StateReferenceFull)

	default:
		if defined {
			return tokenizer.Retry(tokenizer.StateLabelEndOk)
		}
		return tokenizer.Retry(tokenizer.StateLabelEndNok)
	}
}

// labelEndReferenceNotFull tries the collapsed form `[]`. Only reached
// when the identifier is defined, so even a failed collapse still
// commits as a shortcut.
func labelEndReferenceNotFull(t *tokenizer.Tokenizer) tokenizer.State {
	t.Attempt(tokenizer.Retry(tokenizer.StateLabelEndOk), tokenizer.Retry(tokenizer.StateLabelEndOk))
	return tokenizer.Retry(tokenizer.StateReferenceCollapsed)
}

// labelEndOk commits the media. Label starts that were skipped over
// move to the loose list; when the committed start is a link, every
// remaining link start is inactivated so links cannot nest.
func labelEndOk(t *tokenizer.Tokenizer) tokenizer.State {
	ts := &t.TokenizeState
	index := ts.LabelStart

	t.LabelStartsLoose = append(t.LabelStartsLoose, t.LabelStarts[index+1:]...)
	t.LabelStarts = t.LabelStarts[:index]

	if t.Events[ts.MediaStart[0]].Name == event.LabelLink {
		for i := range t.LabelStarts {
			if t.Events[t.LabelStarts[i].Start[0]].Name == event.LabelLink {
				t.LabelStarts[i].Inactive = true
			}
		}
	}

	t.MediaList = append(t.MediaList, tokenizer.Media{
		Start: ts.MediaStart,
		End:   [2]int{ts.LabelEndEnter, len(t.Events) - 1},
		ID:    ts.ID,
	})
	t.RegisterResolverBefore(media.Name, media.Resolve)

	ts.LabelStart = 0
	ts.LabelEndEnter = 0
	ts.MediaStart = [2]int{}
	ts.ID = ""
	return tokenizer.Ok
}

// labelEndNok marks the start as balanced so it is never considered
// again, then fails; the surrounding attempt rolls the `]` back into
// data.
func labelEndNok(t *tokenizer.Tokenizer) tokenizer.State {
	ts := &t.TokenizeState
	t.LabelStarts[ts.LabelStart].Balanced = true

	ts.LabelStart = 0
	ts.LabelEndEnter = 0
	ts.MediaStart = [2]int{}
	ts.ID = ""
	return tokenizer.Nok
}
