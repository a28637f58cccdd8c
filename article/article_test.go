package article

import (
	"errors"
	"testing"

	"github.com/casualjim/scribe/messages"
	"github.com/casualjim/scribe/provider"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New("tides", "glm-4.5", "# Tidal Power\n\nThe sea moves twice a day.")

	assert.Equal(t, uuid.Version(7), a.ID.Version())
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.Equal(t, "Tidal Power", a.Title())
	assert.Equal(t, 9, a.WordCount())
}

func TestArticle_TitleFallsBackToTopic(t *testing.T) {
	a := New("tides", "m", "## Only a subheading\n\ntext")
	assert.Equal(t, "tides", a.Title())
}

func TestArticle_Revise(t *testing.T) {
	a := New("tides", "m1", "old")
	b := a.Revise("m2", "new")

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "new", b.Content)
	assert.Equal(t, "m2", b.Model)
	assert.Equal(t, "old", a.Content)
}

func TestRequest(t *testing.T) {
	turn := Request("  tidal power ", "")
	assert.Equal(t, messages.RoleUser, turn.Role)
	assert.Equal(t, "Write an article about: tidal power", turn.Content)

	turn = Request("tidal power", "for teenagers, 600 words")
	assert.Contains(t, turn.Content, "Additional instructions: for teenagers, 600 words")
}

func TestRevision(t *testing.T) {
	a := New("tides", "m", "draft")
	turns := Revision(a, "make it shorter ")

	require.Len(t, turns, 3)
	assert.Equal(t, messages.RoleUser, turns[0].Role)
	assert.Equal(t, messages.Assistant("draft"), turns[1])
	assert.Equal(t, messages.User("make it shorter"), turns[2])
}

type closeCounter struct{ n int }

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func TestCollect(t *testing.T) {
	closer := &closeCounter{}
	stream := provider.NewStream(func(yield func(string, error) bool) {
		for _, f := range []string{"# Ti", "des\n", "Body"} {
			if !yield(f, nil) {
				return
			}
		}
	}, closer)

	var seen []string
	text, err := Collect(stream, func(f string) { seen = append(seen, f) })

	require.NoError(t, err)
	assert.Equal(t, "# Tides\nBody", text)
	assert.Equal(t, []string{"# Ti", "des\n", "Body"}, seen)
	assert.Equal(t, 1, closer.n)
}

func TestCollect_KeepsPartialTextOnError(t *testing.T) {
	boom := errors.New("stream reset")
	stream := provider.NewStream(func(yield func(string, error) bool) {
		if yield("partial ", nil) && yield("text", nil) {
			yield("", boom)
		}
	}, nil)

	text, err := Collect(stream, nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "partial text", text)
}
