// Package article holds the host-side helpers around a generation call: turning a topic
// into the user's request, accumulating streamed fragments, and the stored Article record.
package article

import (
	"fmt"
	"strings"
	"time"

	"github.com/casualjim/scribe/messages"
	"github.com/casualjim/scribe/pkg/uuidx"
	"github.com/casualjim/scribe/provider"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Article is a generated article as stored by the host.
type Article struct {
	ID        uuid.UUID       `json:"id"`
	Topic     string          `json:"topic"`
	Model     string          `json:"model"`
	Content   string          `json:"content"`
	CreatedAt strfmt.DateTime `json:"created_at"`
	UpdatedAt strfmt.DateTime `json:"updated_at"`
}

// New creates an article record with a fresh id.
func New(topic, model, content string) Article {
	now := strfmt.DateTime(time.Now())
	return Article{
		ID:        uuidx.New(),
		Topic:     topic,
		Model:     model,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Revise returns a copy with new content and an updated timestamp.
func (a Article) Revise(model, content string) Article {
	a.Model = model
	a.Content = content
	a.UpdatedAt = strfmt.DateTime(time.Now())
	return a
}

// Title returns the first Markdown H1 of the content, or the topic when there is none.
func (a Article) Title() string {
	for _, line := range strings.Split(a.Content, "\n") {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return a.Topic
}

// WordCount counts whitespace-separated words in the content.
func (a Article) WordCount() int {
	return len(strings.Fields(a.Content))
}

// Request builds the user turn asking for an article about topic. Extra instructions,
// such as audience or length, are appended when not empty.
func Request(topic, instructions string) messages.Turn {
	var b strings.Builder
	fmt.Fprintf(&b, "Write an article about: %s", strings.TrimSpace(topic))
	if s := strings.TrimSpace(instructions); s != "" {
		b.WriteString("\n\nAdditional instructions: ")
		b.WriteString(s)
	}
	return messages.User(b.String())
}

// Revision builds the conversation that asks the model to rework an existing article.
func Revision(a Article, instruction string) []messages.Turn {
	thread := messages.NewThread(Request(a.Topic, ""), messages.Assistant(a.Content))
	thread.Add(messages.RoleUser, strings.TrimSpace(instruction))
	return thread.Turns()
}

// Collect drains the stream, calling onFragment for each fragment in arrival order, and
// returns the concatenated text. On failure the text received so far is returned with
// the error. The stream is closed on return.
func Collect(stream *provider.Stream, onFragment func(string)) (string, error) {
	defer stream.Close()

	var sb strings.Builder
	for stream.Next() {
		fragment := stream.Current()
		sb.WriteString(fragment)
		if onFragment != nil {
			onFragment(fragment)
		}
	}
	return sb.String(), stream.Err()
}
