// Package tokenizer implements the resumable state-machine driver at
// the center of the event-stream model: byte-at-a-time advancement over
// the source buffer, speculative attempts with full rollback, Enter/
// Exit event emission, and the registry of post-pass resolvers that
// rewrite the finished event log.
package tokenizer

import (
	"log/slog"

	"github.com/markdown-core/tokenizer/core/editmap"
	"github.com/markdown-core/tokenizer/core/event"
	"github.com/markdown-core/tokenizer/core/point"
	"github.com/markdown-core/tokenizer/internal/invariant"
)

// DefinitionSet is the interface to the definition-collection pre-pass:
// the tokenizer only ever asks whether a normalized identifier is
// defined.
type DefinitionSet interface {
	Has(id string) bool
}

type noDefinitions struct{}

func (noDefinitions) Has(string) bool { return false }

// Resolver is a named post-pass over the event log. It records edits on
// t.Map; the driver consumes the map when the resolver returns.
type Resolver func(t *Tokenizer)

// LabelStart is one pushed entry for a `[` or `![` that may later be
// closed by a label end. Start holds the Enter/Exit event indices of
// the LabelLink/LabelImage pair.
type LabelStart struct {
	Start [2]int
	// Balanced means a label end for this start was attempted and did
	// not match; the start can never match again.
	Balanced bool
	// Inactive means this start cannot open a link because doing so
	// would nest links.
	Inactive bool
}

// Media is a committed link or image: the label start's Enter/Exit
// event indices, the label end's Enter/Exit event indices (End[1]
// covers the whole construct, including a trailing resource or
// reference), and the normalized label identifier.
type Media struct {
	Start [2]int
	End   [2]int
	ID    string
}

// Scratch is per-construct scratch state threaded through state
// functions. A construct that sets a field resets it before returning
// Ok or Nok; attempts do not snapshot it.
type Scratch struct {
	// Marker is the attention marker ('*' or '_') being matched.
	Marker byte
	// TitleMarker is the byte that closes the current resource title.
	TitleMarker byte
	// Size counts bytes consumed inside a reference label.
	Size int
	// LabelStart is the label-start stack index the current label end
	// is trying to close.
	LabelStart int
	// LabelEndEnter is the event index of the current LabelEnd Enter.
	LabelEndEnter int
	// MediaStart carries the label start's event indices into the
	// label-end commit.
	MediaStart [2]int
	// ID is the normalized identifier of the proposed media.
	ID string
	// Balance counts unclosed parens inside a raw destination.
	Balance int
	// SeenEol is set once the whitespace machine has taken its one
	// allowed line ending.
	SeenEol bool
}

type snapshot struct {
	point            point.Point
	events           int
	stack            int
	labelStarts      int
	labelStartsLoose int
	media            int
}

type attemptFrame struct {
	ok   State
	nok  State
	snap snapshot
}

// Tokenizer drives construct state functions over a byte buffer. All
// mutable parse state lives here; there is no global state.
type Tokenizer struct {
	// Source is the complete input. Read-only; events address into it
	// by byte index.
	Source []byte
	// Events is the flat event log. During tokenization only the
	// driver appends; during resolution only the running resolver
	// rewrites it (through Map).
	Events []event.Event
	// Map is the EditMap of the currently running resolver. The driver
	// replaces it before each resolver and consumes it after.
	Map *editmap.EditMap
	// Definitions answers identifier lookups for reference links.
	Definitions DefinitionSet

	// LabelStarts is the stack of open `[` / `![` starts.
	LabelStarts []LabelStart
	// LabelStartsLoose collects starts that were skipped over by a
	// committed label end; the media resolver turns them into data.
	LabelStartsLoose []LabelStart
	// MediaList collects committed links/images in commit order.
	MediaList []Media

	// TokenizeState is construct scratch state.
	TokenizeState Scratch

	point    point.Point
	consumed bool
	stack    []event.Name
	states   [stateNameCount]StateFunc
	attempts []attemptFrame

	resolverOrder []string
	resolvers     map[string]Resolver

	logger *slog.Logger
}

// New creates a Tokenizer over source. The buffer is shared by
// reference and never copied.
func New(source []byte, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		Source:      source,
		Definitions: noDefinitions{},
		point:       point.Point{Line: 1, Column: 1},
		resolvers:   map[string]Resolver{},
		logger:      defaultLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Handle installs the state function for name in the dispatch table.
func (t *Tokenizer) Handle(name StateName, fn StateFunc) {
	invariant.NotNil(fn, "state function")
	t.states[name] = fn
}

// Current returns the byte under the cursor, or ok=false at the end of
// input.
func (t *Tokenizer) Current() (byte, bool) {
	if t.point.Index >= len(t.Source) {
		return 0, false
	}
	return t.Source[t.point.Index], true
}

// Point returns the current position.
func (t *Tokenizer) Point() point.Point {
	return t.point
}

// Consume advances past the current byte. A state function that
// consumes must return Next; one that does not must return Retry, Ok,
// or Nok. Consuming twice without a transition in between is a
// programming error.
func (t *Tokenizer) Consume() {
	invariant.Invariant(!t.consumed, "current byte already consumed")
	if b, ok := t.Current(); ok {
		t.point = t.point.Advance(b)
	}
	t.consumed = true
}

// Enter appends an Enter event for name at the current point.
func (t *Tokenizer) Enter(name event.Name) {
	t.EnterLink(name, nil)
}

// EnterLink is Enter with a content link to a related event.
func (t *Tokenizer) EnterLink(name event.Name, link *event.LinkRef) {
	if t.logger != nil {
		t.logger.Debug("enter", "name", name.String(), "index", t.point.Index)
	}
	t.Events = append(t.Events, event.Event{Kind: event.Enter, Name: name, Point: t.point, Link: link})
	t.stack = append(t.stack, name)
}

// Exit appends an Exit event for name at the current point. The name
// must match the most recent unclosed Enter.
func (t *Tokenizer) Exit(name event.Name) {
	invariant.Precondition(len(t.stack) > 0, "exit %s with no open construct", name)
	top := t.stack[len(t.stack)-1]
	invariant.Precondition(top == name, "exit %s does not match open %s", name, top)
	if t.logger != nil {
		t.logger.Debug("exit", "name", name.String(), "index", t.point.Index)
	}
	t.stack = t.stack[:len(t.stack)-1]
	t.Events = append(t.Events, event.Event{Kind: event.Exit, Name: name, Point: t.point})
}

// TopConstruct returns the most recent unclosed Enter's name.
func (t *Tokenizer) TopConstruct() (event.Name, bool) {
	if len(t.stack) == 0 {
		return 0, false
	}
	return t.stack[len(t.stack)-1], true
}

// Attempt pushes a checkpoint. The next Ok resumes at ok; the next Nok
// restores the checkpoint (point, event-log length, label-start stack
// length, media-list length) and resumes at nok. Nested attempts
// compose as a stack. The usual shape is:
//
//	t.Attempt(Next(StateAfter), Next(StateOtherwise))
//	return Retry(StateChild)
func (t *Tokenizer) Attempt(ok, nok State) {
	t.attempts = append(t.attempts, attemptFrame{
		ok:  ok,
		nok: nok,
		snap: snapshot{
			point:            t.point,
			events:           len(t.Events),
			stack:            len(t.stack),
			labelStarts:      len(t.LabelStarts),
			labelStartsLoose: len(t.LabelStartsLoose),
			media:            len(t.MediaList),
		},
	})
}

func (t *Tokenizer) restore(s snapshot) {
	if t.logger != nil {
		t.logger.Debug("restore", "index", s.point.Index, "events", s.events)
	}
	t.point = s.point
	t.Events = t.Events[:s.events]
	t.stack = t.stack[:s.stack]
	t.LabelStarts = t.LabelStarts[:s.labelStarts]
	t.LabelStartsLoose = t.LabelStartsLoose[:s.labelStartsLoose]
	t.MediaList = t.MediaList[:s.media]
}

// RegisterResolver records that the named resolver must run after
// tokenization, in registration order. Registering the same name twice
// is a no-op.
func (t *Tokenizer) RegisterResolver(name string, fn Resolver) {
	if _, dup := t.resolvers[name]; dup {
		return
	}
	if t.logger != nil {
		t.logger.Debug("register resolver", "name", name)
	}
	t.resolvers[name] = fn
	t.resolverOrder = append(t.resolverOrder, name)
}

// RegisterResolverBefore is RegisterResolver, but the resolver runs
// ahead of everything registered so far.
func (t *Tokenizer) RegisterResolverBefore(name string, fn Resolver) {
	if _, dup := t.resolvers[name]; dup {
		return
	}
	if t.logger != nil {
		t.logger.Debug("register resolver", "name", name, "before", true)
	}
	t.resolvers[name] = fn
	t.resolverOrder = append([]string{name}, t.resolverOrder...)
}

// Tokenize runs the trampoline from start until the top-level construct
// returns Ok, then runs registered resolvers in order. It returns the
// final event log.
func (t *Tokenizer) Tokenize(start StateName) []event.Event {
	final := t.run(start)
	invariant.Postcondition(final.kind == kindOk, "tokenization must end in Ok, got %s", final)
	invariant.Postcondition(len(t.stack) == 0, "%d constructs left unclosed at end of input", len(t.stack))
	t.resolveAll()
	return t.Events
}

// run is the trampoline: a loop that looks up the next state function
// by name and dispatches it. Construct nesting shows up as attempt
// frames, never as Go stack depth.
func (t *Tokenizer) run(start StateName) State {
	state := Retry(start)

	for {
		switch state.kind {
		case kindOk, kindNok:
			if len(t.attempts) == 0 {
				return state
			}
			frame := t.attempts[len(t.attempts)-1]
			t.attempts = t.attempts[:len(t.attempts)-1]
			if state.kind == kindNok {
				t.restore(frame.snap)
				state = frame.nok
			} else {
				state = frame.ok
			}

		case kindNext, kindRetry:
			fn := t.states[state.name]
			invariant.NotNil(fn, "state function for "+state.name.String())
			if t.logger != nil {
				t.logger.Debug("dispatch", "state", state.name.String(), "index", t.point.Index)
			}
			from := state.name
			t.consumed = false
			state = fn(t)
			switch state.kind {
			case kindNext:
				invariant.Invariant(t.consumed, "%s returned Next without consuming", from)
			case kindRetry:
				invariant.Invariant(!t.consumed, "%s returned Retry after consuming", from)
			}
		}
	}
}

func (t *Tokenizer) resolveAll() {
	for _, name := range t.resolverOrder {
		if t.logger != nil {
			t.logger.Debug("resolve", "name", name)
		}
		t.Map = editmap.New()
		t.resolvers[name](t)
		t.Events = t.Map.Consume(t.Events)
	}

	// Transient per-resolution collections are done; release them.
	t.Map = nil
	t.resolverOrder = nil
	t.resolvers = map[string]Resolver{}
	t.LabelStarts = nil
	t.LabelStartsLoose = nil
	t.MediaList = nil
}
