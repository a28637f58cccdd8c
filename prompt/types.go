package prompt

import (
	"time"

	"github.com/casualjim/scribe/pkg/uuidx"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Memory is a free-text fact the author wants woven into generated articles.
type Memory struct {
	ID        uuid.UUID       `json:"id"`
	Category  string          `json:"category,omitempty"`
	Title     string          `json:"title,omitempty"`
	Content   string          `json:"content"`
	CreatedAt strfmt.DateTime `json:"created_at"`
}

// NewMemory creates a memory with a fresh id and the current time.
func NewMemory(content string) Memory {
	return Memory{
		ID:        uuidx.New(),
		Content:   content,
		CreatedAt: strfmt.DateTime(time.Now()),
	}
}

// WritingExample is a sample of the author's writing used to imitate their style.
type WritingExample struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title,omitempty"`
	Content   string          `json:"content"`
	CreatedAt strfmt.DateTime `json:"created_at"`
}

// NewWritingExample creates a writing example with a fresh id and the current time.
func NewWritingExample(title, content string) WritingExample {
	return WritingExample{
		ID:        uuidx.New(),
		Title:     title,
		Content:   content,
		CreatedAt: strfmt.DateTime(time.Now()),
	}
}
