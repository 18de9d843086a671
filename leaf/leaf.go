// Package leaf carries the per-construct state functions the driver
// dispatches to: the text content loop, attention sequences, label
// starts and ends, and the resource/reference/destination/title
// machinery label ends branch into.
//
// Constructs register themselves with the driver through Install; each
// is an ordinary StateFunc keyed by a StateName in the dispatch table.
package leaf

import (
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// Install populates t's dispatch table with every construct in this
// package.
func Install(t *tokenizer.Tokenizer) {
	t.Handle(tokenizer.StateTextStart, textStart)
	t.Handle(tokenizer.StateTextData, textData)

	t.Handle(tokenizer.StateAttentionStart, attentionStart)
	t.Handle(tokenizer.StateAttentionInside, attentionInside)

	t.Handle(tokenizer.StateLabelStartLink, labelStartLink)
	t.Handle(tokenizer.StateLabelStartImage, labelStartImage)
	t.Handle(tokenizer.StateLabelStartImageOpen, labelStartImageOpen)

	t.Handle(tokenizer.StateLabelEndStart, labelEndStart)
	t.Handle(tokenizer.StateLabelEndAfter, labelEndAfter)
	t.Handle(tokenizer.StateLabelEndReferenceNotFull, labelEndReferenceNotFull)
	t.Handle(tokenizer.StateLabelEndOk, labelEndOk)
	t.Handle(tokenizer.StateLabelEndNok, labelEndNok)

	t.Handle(tokenizer.StateResourceStart, resourceStart)
	t.Handle(tokenizer.StateResourceBefore, resourceBefore)
	t.Handle(tokenizer.StateResourceOpen, resourceOpen)
	t.Handle(tokenizer.StateResourceDestinationAfter, resourceDestinationAfter)
	t.Handle(tokenizer.StateResourceBetween, resourceBetween)
	t.Handle(tokenizer.StateResourceTitleAfter, resourceTitleAfter)
	t.Handle(tokenizer.StateResourceEnd, resourceEnd)

	t.Handle(tokenizer.StateDestinationStart, destinationStart)
	t.Handle(tokenizer.StateDestinationLiteral, destinationLiteral)
	t.Handle(tokenizer.StateDestinationLiteralEscape, destinationLiteralEscape)
	t.Handle(tokenizer.StateDestinationRaw, destinationRaw)
	t.Handle(tokenizer.StateDestinationRawEscape, destinationRawEscape)

	t.Handle(tokenizer.StateTitleStart, titleStart)
	t.Handle(tokenizer.StateTitleBegin, titleBegin)
	t.Handle(tokenizer.StateTitleInside, titleInside)
	t.Handle(tokenizer.StateTitleEscape, titleEscape)

	t.Handle(tokenizer.StateReferenceFull, referenceFull)
	t.Handle(tokenizer.StateReferenceFullOpen, referenceFullOpen)
	t.Handle(tokenizer.StateReferenceFullInside, referenceFullInside)
	t.Handle(tokenizer.StateReferenceFullEscape, referenceFullEscape)
	t.Handle(tokenizer.StateReferenceFullEnd, referenceFullEnd)
	t.Handle(tokenizer.StateReferenceCollapsed, referenceCollapsed)
	t.Handle(tokenizer.StateReferenceCollapsedOpen, referenceCollapsedOpen)

	t.Handle(tokenizer.StateSpaceOrTabEolStart, spaceOrTabEolStart)
	t.Handle(tokenizer.StateSpaceOrTabEolInside, spaceOrTabEolInside)
}

// Tokenize runs the full pipeline over source: install constructs,
// drive the text loop to end of input, run resolvers, return the final
// event log.
func Tokenize(source []byte, opts ...tokenizer.Option) []event.Event {
	t := tokenizer.New(source, opts...)
	Install(t)
	return t.Tokenize(tokenizer.StateTextStart)
}
