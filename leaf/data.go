package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// dataResolverName is registered at the very end of the text loop so
// the merge runs after attention has downgraded leftover sequences to
// data.
const dataResolverName = "data"

// resolveData merges adjacent Data runs: an Exit directly followed by
// an Enter collapses into one continuous run. Runs threaded by content
// links are left alone; they are separated by line endings and never
// adjacent.
func resolveData(t *tokenizer.Tokenizer) {
	index := 0
	for index+1 < len(t.Events) {
		if t.Events[index].Kind == event.Exit && t.Events[index].Name == event.Data &&
			t.Events[index+1].Kind == event.Enter && t.Events[index+1].Name == event.Data &&
			t.Events[index+1].Link == nil {
			t.Map.Add(index, 2, nil)
			index += 2
			continue
		}
		index++
	}
}
