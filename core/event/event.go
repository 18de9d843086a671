// Package event implements the flat Enter/Exit event log that the
// tokenizer emits and the resolvers rewrite.
package event

import "github.com/markdown-core/tokenizer/core/point"

// Kind distinguishes an Enter from an Exit event.
type Kind uint8

const (
	Enter Kind = iota
	Exit
)

func (k Kind) String() string {
	if k == Enter {
		return "Enter"
	}
	return "Exit"
}

// Name is a closed enumeration of construct names. New constructs are
// always appended at the end: downstream code may store Name values
// (e.g. in golden test fixtures) and inserting in the middle would
// silently renumber them.
type Name uint16

const (
	Data Name = iota
	AttentionSequence
	Emphasis
	EmphasisSequence
	EmphasisText
	Strong
	StrongSequence
	StrongText
	Label
	LabelLink
	LabelImage
	LabelEnd
	LabelMarker
	LabelText
	Link
	Image
	Reference
	ReferenceMarker
	ReferenceString
	Resource
	ResourceMarker
	ResourceDestination
	ResourceDestinationLiteral
	ResourceDestinationLiteralMarker
	ResourceDestinationRaw
	ResourceDestinationString
	ResourceTitle
	ResourceTitleMarker
	ResourceTitleString
	LineEnding
	SpaceOrTab
)

var names = [...]string{
	"Data",
	"AttentionSequence",
	"Emphasis",
	"EmphasisSequence",
	"EmphasisText",
	"Strong",
	"StrongSequence",
	"StrongText",
	"Label",
	"LabelLink",
	"LabelImage",
	"LabelEnd",
	"LabelMarker",
	"LabelText",
	"Link",
	"Image",
	"Reference",
	"ReferenceMarker",
	"ReferenceString",
	"Resource",
	"ResourceMarker",
	"ResourceDestination",
	"ResourceDestinationLiteral",
	"ResourceDestinationLiteralMarker",
	"ResourceDestinationRaw",
	"ResourceDestinationString",
	"ResourceTitle",
	"ResourceTitleMarker",
	"ResourceTitleString",
	"LineEnding",
	"SpaceOrTab",
}

func (n Name) String() string {
	if int(n) < len(names) {
		return names[n]
	}
	return "Unknown"
}

// LinkRef threads multi-line content of a single logical construct
// across intervening events (used by text/string content runs that are
// broken up by, say, a line ending). Previous/Next are event indices;
// nil means "no link in that direction". A freshly inserted event (by a
// resolver, via EditMap) must never carry a LinkRef: EditMap.Consume
// repairs link indices only on events that survive from the original
// vector.
type LinkRef struct {
	Previous *int
	Next     *int
}

// Event is one node of the flat parse log: an Enter or Exit of a named
// construct at a point in the source.
type Event struct {
	Kind  Kind
	Name  Name
	Point point.Point
	Link  *LinkRef
}

// PositionFromExit returns the Position spanned by the Enter/Exit pair
// ending at events[index], by scanning backward for the matching Enter
// of the same name. Does not support events nested inside themselves
// (e.g. two AttentionSequence pairs overlapping) - callers must pass
// the index of a non-nesting construct's Exit.
func PositionFromExit(events []Event, index int) point.Position {
	exit := events[index]
	enterIndex := index - 1
	for events[enterIndex].Kind != Enter || events[enterIndex].Name != exit.Name {
		enterIndex--
	}
	return point.Position{Start: events[enterIndex].Point, End: exit.Point}
}
