package tokenizer

// StateName identifies a state function by symbol. The driver looks the
// function up in the dispatch table instead of chaining calls or
// allocating closures per transition, which keeps the stack bounded no
// matter how deep a document nests.
type StateName uint8

const (
	// Text content loop.
	StateTextStart StateName = iota
	StateTextData

	// Attention sequences (`*`/`_` runs).
	StateAttentionStart
	StateAttentionInside

	// Label starts (`[` and `![`).
	StateLabelStartLink
	StateLabelStartImage
	StateLabelStartImageOpen

	// Label end (`]`) and its branches.
	StateLabelEndStart
	StateLabelEndAfter
	StateLabelEndReferenceNotFull
	StateLabelEndOk
	StateLabelEndNok

	// Inline resource `( destination [title] )`.
	StateResourceStart
	StateResourceBefore
	StateResourceOpen
	StateResourceDestinationAfter
	StateResourceBetween
	StateResourceTitleAfter
	StateResourceEnd

	// Destination.
	StateDestinationStart
	StateDestinationLiteral
	StateDestinationLiteralEscape
	StateDestinationRaw
	StateDestinationRawEscape

	// Title.
	StateTitleStart
	StateTitleBegin
	StateTitleInside
	StateTitleEscape

	// References.
	StateReferenceFull
	StateReferenceFullOpen
	StateReferenceFullInside
	StateReferenceFullEscape
	StateReferenceFullEnd
	StateReferenceCollapsed
	StateReferenceCollapsedOpen

	// Whitespace between resource parts.
	StateSpaceOrTabEolStart
	StateSpaceOrTabEolInside

	stateNameCount
)

var stateNames = [...]string{
	"TextStart",
	"TextData",
	"AttentionStart",
	"AttentionInside",
	"LabelStartLink",
	"LabelStartImage",
	"LabelStartImageOpen",
	"LabelEndStart",
	"LabelEndAfter",
	"LabelEndReferenceNotFull",
	"LabelEndOk",
	"LabelEndNok",
	"ResourceStart",
	"ResourceBefore",
	"ResourceOpen",
	"ResourceDestinationAfter",
	"ResourceBetween",
	"ResourceTitleAfter",
	"ResourceEnd",
	"DestinationStart",
	"DestinationLiteral",
	"DestinationLiteralEscape",
	"DestinationRaw",
	"DestinationRawEscape",
	"TitleStart",
	"TitleBegin",
	"TitleInside",
	"TitleEscape",
	"ReferenceFull",
	"ReferenceFullOpen",
	"ReferenceFullInside",
	"ReferenceFullEscape",
	"ReferenceFullEnd",
	"ReferenceCollapsed",
	"ReferenceCollapsedOpen",
	"SpaceOrTabEolStart",
	"SpaceOrTabEolInside",
}

func (n StateName) String() string {
	if int(n) < len(stateNames) {
		return stateNames[n]
	}
	return "Unknown"
}

type stateKind uint8

const (
	kindNext stateKind = iota
	kindRetry
	kindOk
	kindNok
)

// State is the result of running one state function. Next and Retry
// name the state to dispatch to (Next after consuming the current byte,
// Retry with the same byte); Ok and Nok terminate the innermost attempt
// with success or failure.
type State struct {
	kind stateKind
	name StateName
}

// Next resumes at name on the byte after the one just consumed.
func Next(name StateName) State { return State{kind: kindNext, name: name} }

// Retry re-dispatches to name with the current byte unconsumed.
func Retry(name StateName) State { return State{kind: kindRetry, name: name} }

// Ok reports that the construct succeeded.
var Ok = State{kind: kindOk}

// Nok reports that the construct failed; the nearest attempt restores
// its checkpoint.
var Nok = State{kind: kindNok}

func (s State) String() string {
	switch s.kind {
	case kindNext:
		return "Next(" + s.name.String() + ")"
	case kindRetry:
		return "Retry(" + s.name.String() + ")"
	case kindOk:
		return "Ok"
	default:
		return "Nok"
	}
}

// StateFunc is one state of a construct's machine. It inspects
// t.Current(), optionally consumes it or emits events, and names what
// happens next.
type StateFunc func(t *Tokenizer) State
