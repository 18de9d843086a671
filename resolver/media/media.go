// Package media turns matched label starts and label ends into Link and
// Image groupings, and turns everything that did not match back into
// plain data.
package media

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// Name registers this resolver.
const Name = "media"

// Resolve rewrites the event log in two sweeps: label starts that never
// matched become Data spans, and every committed Media gets its
// Link/Image, Label, and LabelText grouping events inserted around the
// events that are already there.
func Resolve(t *tokenizer.Tokenizer) {
	loose := append(t.LabelStartsLoose, t.LabelStarts...)
	t.LabelStartsLoose = nil
	t.LabelStarts = nil
	media := t.MediaList
	t.MediaList = nil

	for i := range media {
		m := &media[i]

		// The label start pair: Enter(LabelLink|LabelImage), marker
		// events, Exit. Text starts right after the pair's Exit.
		groupEnterIndex := m.Start[0]
		textEnterIndex := m.Start[1] + 1
		// The label end pair: Enter(LabelEnd), marker events,
		// Exit(LabelEnd) three events later.
		textExitIndex := m.End[0]
		labelExitIndex := m.End[0] + 3
		// Resource or reference Exit, when present.
		groupEndIndex := m.End[1]

		group := event.Link
		if t.Events[groupEnterIndex].Name == event.LabelImage {
			group = event.Image
		}

		t.Map.Add(groupEnterIndex, 0, []event.Event{
			{Kind: event.Enter, Name: group, Point: t.Events[groupEnterIndex].Point},
			{Kind: event.Enter, Name: event.Label, Point: t.Events[groupEnterIndex].Point},
		})

		// Empty labels get no LabelText at all. The text Enter goes
		// ahead of whatever an earlier (inner, nested) media already
		// recorded at the same index, so the outer text wraps it; the
		// text Exit appends after for the same reason.
		if textEnterIndex != textExitIndex {
			t.Map.AddBefore(textEnterIndex, 0, []event.Event{
				{Kind: event.Enter, Name: event.LabelText, Point: t.Events[textEnterIndex].Point},
			})
			t.Map.Add(textExitIndex, 0, []event.Event{
				{Kind: event.Exit, Name: event.LabelText, Point: t.Events[textExitIndex].Point},
			})
		}

		t.Map.Add(labelExitIndex+1, 0, []event.Event{
			{Kind: event.Exit, Name: event.Label, Point: t.Events[labelExitIndex].Point},
		})
		t.Map.Add(groupEndIndex+1, 0, []event.Event{
			{Kind: event.Exit, Name: group, Point: t.Events[groupEndIndex].Point},
		})
	}

	// Unmatched label starts: the bracket events collapse into one Data
	// span. Runs after the grouping sweep so that a group Exit recorded
	// at the same index lands ahead of the replacement data.
	for i := range loose {
		enterIndex := loose[i].Start[0]
		exitIndex := loose[i].Start[1]

		t.Map.Add(enterIndex, exitIndex-enterIndex+1, []event.Event{
			{Kind: event.Enter, Name: event.Data, Point: t.Events[enterIndex].Point},
			{Kind: event.Exit, Name: event.Data, Point: t.Events[exitIndex].Point},
		})
	}
}
