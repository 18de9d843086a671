package media_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/definition"
	"github.com/markdown-core/tokenizer/leaf"
	"github.com/markdown-core/tokenizer/tokenizer"
)

func tokenize(source string, defs ...string) []event.Event {
	set := definition.Set{}
	for _, d := range defs {
		set.Add(d)
	}
	return leaf.Tokenize([]byte(source), tokenizer.WithDefinitions(set))
}

func names(events []event.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind.String()+" "+e.Name.String())
	}
	return out
}

func has(events []event.Event, name event.Name) bool {
	for _, e := range events {
		if e.Name == name {
			return true
		}
	}
	return false
}

func TestFullReference(t *testing.T) {
	events := tokenize("[a][b]", "b")

	want := []string{
		"Enter Link",
		"Enter Label",
		"Enter LabelLink",
		"Enter LabelMarker", "Exit LabelMarker",
		"Exit LabelLink",
		"Enter LabelText",
		"Enter Data", "Exit Data",
		"Exit LabelText",
		"Enter LabelEnd",
		"Enter LabelMarker", "Exit LabelMarker",
		"Exit LabelEnd",
		"Exit Label",
		"Enter Reference",
		"Enter ReferenceMarker", "Exit ReferenceMarker",
		"Enter ReferenceString", "Exit ReferenceString",
		"Enter ReferenceMarker", "Exit ReferenceMarker",
		"Exit Reference",
		"Exit Link",
	}
	if diff := cmp.Diff(want, names(events)); diff != "" {
		t.Errorf("[a][b] (-want +got):\n%s", diff)
	}
}

func TestFullReferenceUndefined(t *testing.T) {
	events := tokenize("[a][b]")

	want := []string{"Enter Data", "Exit Data"}
	if diff := cmp.Diff(want, names(events)); diff != "" {
		t.Errorf("undefined full reference must collapse to data (-want +got):\n%s", diff)
	}
}

// TestFullReferenceFallsBackToShortcut: when the explicit label is
// undefined but the text's own identifier is defined, the text becomes
// a shortcut link and the explicit label stays data.
func TestFullReferenceFallsBackToShortcut(t *testing.T) {
	events := tokenize("[a][b]", "a")

	got := names(events)
	if got[0] != "Enter Link" {
		t.Fatalf("expected shortcut link, got %v", got)
	}
	if has(events, event.Reference) {
		t.Error("the undefined explicit label must not become a Reference")
	}
}

func TestCollapsedReference(t *testing.T) {
	events := tokenize("[a][]", "a")

	got := names(events)
	if got[0] != "Enter Link" {
		t.Fatalf("expected collapsed reference link, got %v", got)
	}
	if !has(events, event.Reference) {
		t.Error("collapsed reference must emit Reference events for `[]`")
	}
	if has(events, event.ReferenceString) {
		t.Error("collapsed reference has no ReferenceString")
	}
}

func TestShortcutAtEndOfInput(t *testing.T) {
	events := tokenize("[a]", "a")

	if names(events)[0] != "Enter Link" {
		t.Fatalf("expected shortcut link, got %v", names(events))
	}
}

func TestReferenceMatchingNormalizes(t *testing.T) {
	// Case folding and whitespace collapsing both apply before lookup.
	set := definition.Collect([]byte("[foo bar]: /url\n"))

	events := leaf.Tokenize([]byte("[Foo\nBAR]"), tokenizer.WithDefinitions(set))
	if names(events)[0] != "Enter Link" {
		t.Fatalf("normalized identifiers must match, got %v", names(events))
	}
}

func TestLinkInactivation(t *testing.T) {
	// Only the innermost link survives; outer brackets turn to data.
	events := tokenize("[a [b](#) c](#)")

	links := 0
	for _, e := range events {
		if e.Kind == event.Enter && e.Name == event.Link {
			links++
		}
	}
	if links != 1 {
		t.Errorf("expected exactly one link, got %d", links)
	}
}

func TestImageNotInactivatedByLink(t *testing.T) {
	// A committed link only burns other *link* starts; image starts
	// stay usable.
	events := tokenize("![a [b](#) c](#)")

	if !has(events, event.Image) {
		t.Error("expected the outer image to survive")
	}
	if !has(events, event.Link) {
		t.Error("expected the inner link to survive")
	}
}

func TestBalancedStartNotRetried(t *testing.T) {
	// The first `]` burns the start; the second cannot reuse it.
	events := tokenize("[a] b]")

	want := []string{"Enter Data", "Exit Data"}
	if diff := cmp.Diff(want, names(events)); diff != "" {
		t.Errorf("burned label start (-want +got):\n%s", diff)
	}
}
