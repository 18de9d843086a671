package tokenizer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/core/point"
	"github.com/markdown-core/tokenizer/tokenizer"
)

// dataUntilEOF drives a trivial machine that wraps the whole input in
// one Data pair. Used as scaffolding by the driver tests; the real text
// loop lives in the leaf package.
func dataUntilEOF(t *tokenizer.Tokenizer) tokenizer.State {
	_, ok := t.Current()
	if top, open := t.TopConstruct(); !open || top != event.Data {
		if !ok {
			return tokenizer.Ok
		}
		t.Enter(event.Data)
	}
	if !ok {
		t.Exit(event.Data)
		return tokenizer.Ok
	}
	t.Consume()
	return tokenizer.Next(tokenizer.StateTextData)
}

func TestTokenizeEmitsDataRun(t *testing.T) {
	tk := tokenizer.New([]byte("abc"))
	tk.Handle(tokenizer.StateTextData, dataUntilEOF)

	events := tk.Tokenize(tokenizer.StateTextData)

	if len(events) != 2 {
		t.Fatalf("expected one Enter/Exit pair, got %d events", len(events))
	}
	if events[0].Kind != event.Enter || events[0].Name != event.Data || events[0].Point.Index != 0 {
		t.Errorf("unexpected enter: %+v", events[0])
	}
	if events[1].Kind != event.Exit || events[1].Point.Index != 3 {
		t.Errorf("unexpected exit: %+v", events[1])
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tk := tokenizer.New(nil)
	tk.Handle(tokenizer.StateTextData, dataUntilEOF)

	events := tk.Tokenize(tokenizer.StateTextData)
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

// TestAttemptRestoresOnNok checks the checkpoint contract: a failing
// child must leave no trace - not in the events, not in the point, not
// in the label-start stack.
func TestAttemptRestoresOnNok(t *testing.T) {
	tk := tokenizer.New([]byte("xy"))

	attempted := false
	tk.Handle(tokenizer.StateTextStart, func(t *tokenizer.Tokenizer) tokenizer.State {
		if !attempted {
			attempted = true
			t.Attempt(tokenizer.Retry(tokenizer.StateTextData), tokenizer.Retry(tokenizer.StateTextData))
			return tokenizer.Retry(tokenizer.StateAttentionStart)
		}
		return tokenizer.Retry(tokenizer.StateTextData)
	})
	// The failing child: emits an event, consumes a byte, pushes a
	// label start, then gives up.
	tk.Handle(tokenizer.StateAttentionStart, func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Enter(event.LabelLink)
		t.Consume()
		t.LabelStarts = append(t.LabelStarts, tokenizer.LabelStart{Start: [2]int{0, 0}})
		return tokenizer.Nok
	})
	tk.Handle(tokenizer.StateTextData, dataUntilEOF)

	events := tk.Tokenize(tokenizer.StateTextStart)

	want := []event.Event{
		{Kind: event.Enter, Name: event.Data, Point: pointAt(1, 1, 0)},
		{Kind: event.Exit, Name: event.Data, Point: pointAt(1, 3, 2)},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events after rollback (-want +got):\n%s", diff)
	}
	if len(tk.LabelStarts) != 0 {
		t.Errorf("label-start stack must be restored, got %d entries", len(tk.LabelStarts))
	}
}

// TestAttemptKeepsOnOk: a succeeding child retains everything.
func TestAttemptKeepsOnOk(t *testing.T) {
	tk := tokenizer.New([]byte("x"))

	attempted := false
	tk.Handle(tokenizer.StateTextStart, func(t *tokenizer.Tokenizer) tokenizer.State {
		if !attempted {
			attempted = true
			t.Attempt(tokenizer.Retry(tokenizer.StateTextData), tokenizer.Retry(tokenizer.StateTextData))
			return tokenizer.Retry(tokenizer.StateAttentionStart)
		}
		return tokenizer.Retry(tokenizer.StateTextData)
	})
	tk.Handle(tokenizer.StateAttentionStart, func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Enter(event.AttentionSequence)
		t.Consume()
		t.Exit(event.AttentionSequence)
		return tokenizer.Ok
	})
	tk.Handle(tokenizer.StateTextData, dataUntilEOF)

	events := tk.Tokenize(tokenizer.StateTextStart)
	if len(events) != 2 || events[0].Name != event.AttentionSequence {
		t.Fatalf("expected the child's events to survive, got %+v", events)
	}
}

// TestNestedAttempts: an inner failure must not disturb the outer
// attempt's checkpoint.
func TestNestedAttempts(t *testing.T) {
	tk := tokenizer.New([]byte("ab"))

	tk.Handle(tokenizer.StateTextStart, func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Attempt(tokenizer.Retry(tokenizer.StateTextData), tokenizer.Retry(tokenizer.StateTextData))
		return tokenizer.Retry(tokenizer.StateAttentionStart)
	})
	// Outer child: consumes a byte, then tries an inner child that
	// fails, and succeeds regardless.
	inner := false
	tk.Handle(tokenizer.StateAttentionStart, func(t *tokenizer.Tokenizer) tokenizer.State {
		if !inner {
			inner = true
			t.Enter(event.AttentionSequence)
			t.Consume()
			t.Attempt(tokenizer.Retry(tokenizer.StateAttentionInside), tokenizer.Retry(tokenizer.StateAttentionInside))
			return tokenizer.Next(tokenizer.StateLabelStartLink)
		}
		t.Exit(event.AttentionSequence)
		return tokenizer.Ok
	})
	tk.Handle(tokenizer.StateLabelStartLink, func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Enter(event.LabelLink)
		t.Consume()
		return tokenizer.Nok
	})
	tk.Handle(tokenizer.StateAttentionInside, func(t *tokenizer.Tokenizer) tokenizer.State {
		return tokenizer.Retry(tokenizer.StateAttentionStart)
	})
	tk.Handle(tokenizer.StateTextData, dataUntilEOF)

	events := tk.Tokenize(tokenizer.StateTextStart)

	// The inner LabelLink enter is rolled back; the outer
	// AttentionSequence pair survives, followed by the remaining byte
	// as data.
	names := []event.Name{event.AttentionSequence, event.AttentionSequence, event.Data, event.Data}
	if len(events) != len(names) {
		t.Fatalf("expected %d events, got %d: %+v", len(names), len(events), events)
	}
	for i, n := range names {
		if events[i].Name != n {
			t.Errorf("event %d: got %v, want %v", i, events[i].Name, n)
		}
	}
	// The inner rollback rewound the point to just after the first
	// byte.
	if events[2].Point.Index != 1 {
		t.Errorf("data must start at index 1, got %d", events[2].Point.Index)
	}
}

func TestResolverOrder(t *testing.T) {
	tk := tokenizer.New(nil)
	tk.Handle(tokenizer.StateTextData, dataUntilEOF)

	var ran []string
	record := func(name string) tokenizer.Resolver {
		return func(*tokenizer.Tokenizer) { ran = append(ran, name) }
	}

	tk.RegisterResolver("a", record("a"))
	tk.RegisterResolver("b", record("b"))
	tk.RegisterResolverBefore("c", record("c"))
	tk.RegisterResolver("a", record("dup")) // no-op

	tk.Tokenize(tokenizer.StateTextData)

	want := []string{"c", "a", "b"}
	if diff := cmp.Diff(want, ran); diff != "" {
		t.Errorf("resolver order (-want +got):\n%s", diff)
	}
}

func TestExitMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched exit")
		}
	}()

	tk := tokenizer.New([]byte("a"))
	tk.Enter(event.Data)
	tk.Exit(event.Emphasis)
}

func TestConsumeTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double consume")
		}
	}()

	tk := tokenizer.New([]byte("ab"))
	tk.Handle(tokenizer.StateTextData, func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Consume()
		t.Consume()
		return tokenizer.Ok
	})
	tk.Tokenize(tokenizer.StateTextData)
}

func TestRetryAfterConsumePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Retry after consuming")
		}
	}()

	tk := tokenizer.New([]byte("ab"))
	tk.Handle(tokenizer.StateTextData, func(t *tokenizer.Tokenizer) tokenizer.State {
		t.Consume()
		return tokenizer.Retry(tokenizer.StateTextData)
	})
	tk.Tokenize(tokenizer.StateTextData)
}

func pointAt(line, column, index int) point.Point {
	return point.Point{Line: line, Column: column, Index: index}
}
