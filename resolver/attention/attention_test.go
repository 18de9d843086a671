package attention_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/leaf"
)

func names(events []event.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind.String()+" "+e.Name.String())
	}
	return out
}

func TestAsteriskFlanking(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		emphasis bool
	}{
		{"simple", "*a*", true},
		{"space after opener", "* a*", false},
		{"space before closer", "*a *b", false},
		{"punctuation flanked", "*.a.*", true},
		{"interior word", "a*b*c", true},
		{"lone run", "**", false},
		{"unclosed", "*a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := leaf.Tokenize([]byte(tt.source))
			got := false
			for _, n := range names(events) {
				if n == "Enter Emphasis" {
					got = true
				}
			}
			if got != tt.emphasis {
				t.Errorf("%q: emphasis=%v, want %v\nevents: %v", tt.source, got, tt.emphasis, names(events))
			}
		})
	}
}

func TestUnderscoreFlanking(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		emphasis bool
	}{
		{"word boundaries", "_a_", true},
		{"intraword run", "foo_bar_baz", false},
		{"open only at start of word", "foo _bar_", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := leaf.Tokenize([]byte(tt.source))
			found := false
			for _, n := range names(events) {
				if n == "Enter Emphasis" {
					found = true
				}
			}
			if found != tt.emphasis {
				t.Errorf("%q: emphasis=%v, want %v\nevents: %v", tt.source, found, tt.emphasis, names(events))
			}
		})
	}
}

func TestMarkersDoNotMix(t *testing.T) {
	events := leaf.Tokenize([]byte("*a_"))

	want := []string{"Enter Data", "Exit Data"}
	if diff := cmp.Diff(want, names(events)); diff != "" {
		t.Errorf("`*` cannot close `_` (-want +got):\n%s", diff)
	}
}

// TestNoAttentionSequenceSurvives is the cleanup pass: whatever cannot
// pair is plain data, never a leftover placeholder.
func TestNoAttentionSequenceSurvives(t *testing.T) {
	inputs := []string{"*", "**", "infix * alone", "*a", "a*", "_ _", "***"}
	for _, src := range inputs {
		events := leaf.Tokenize([]byte(src))
		for i, e := range events {
			if e.Name == event.AttentionSequence {
				t.Errorf("%q: event %d still AttentionSequence", src, i)
			}
		}
	}
}

// TestPartialConsumption: a long opener pairs with a shorter closer,
// leaving its unconsumed, shifted residue in place as data.
func TestPartialConsumption(t *testing.T) {
	// **a* pairs one `*`, leaving `*` of the opener as data.
	events := leaf.Tokenize([]byte("**a*"))

	want := []string{
		"Enter Data", "Exit Data", // leftover "*"
		"Enter Emphasis",
		"Enter EmphasisSequence", "Exit EmphasisSequence",
		"Enter EmphasisText",
		"Enter Data", "Exit Data",
		"Exit EmphasisText",
		"Enter EmphasisSequence", "Exit EmphasisSequence",
		"Exit Emphasis",
	}
	if diff := cmp.Diff(want, names(events)); diff != "" {
		t.Errorf("**a* (-want +got):\n%s", diff)
	}
	if events[0].Point.Index != 0 || events[1].Point.Index != 1 {
		t.Errorf("residual marker must cover byte 0 only, got %d..%d",
			events[0].Point.Index, events[1].Point.Index)
	}
}

func TestBalanceKeepsPairsAtSameDepth(t *testing.T) {
	// The opener inside the label and the closer outside it sit at
	// different depths once media wraps the label, so they must not
	// pair across the boundary.
	events := leaf.Tokenize([]byte("[*a](b) c*"))

	for _, n := range names(events) {
		if n == "Enter Emphasis" {
			t.Fatalf("emphasis must not cross a link boundary:\n%v", names(events))
		}
	}
}
