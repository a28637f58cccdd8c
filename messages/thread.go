package messages

import (
	"iter"
	"slices"

	"github.com/casualjim/scribe/pkg/uuidx"
	"github.com/google/uuid"
)

// NewThread creates an empty thread with a fresh identifier.
func NewThread(turns ...Turn) *Thread {
	return &Thread{
		id:    uuidx.New(),
		turns: slices.Clone(turns),
	}
}

// Thread is an ordered chat history.
type Thread struct {
	id    uuid.UUID
	turns []Turn
}

// ID returns the unique identifier of this thread.
func (t *Thread) ID() uuid.UUID {
	return t.id
}

// Len returns the number of turns in the thread.
func (t *Thread) Len() int {
	return len(t.turns)
}

// Add appends a turn to the end of the thread.
func (t *Thread) Add(role Role, content string) {
	t.turns = append(t.turns, Turn{Role: role, Content: content})
}

// Turns returns a copy of the history, safe to hand to a generation call.
func (t *Thread) Turns() []Turn {
	return slices.Clone(t.turns)
}

// All iterates the turns in order without copying.
func (t *Thread) All() iter.Seq[Turn] {
	return slices.Values(t.turns)
}

// Last returns the most recent turn.
func (t *Thread) Last() (Turn, bool) {
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}
