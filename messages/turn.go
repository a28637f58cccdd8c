package messages

import "fmt"

// Role identifies who authored a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

func (r Role) String() string {
	return string(r)
}

// UnmarshalText rejects roles other than user and assistant.
func (r *Role) UnmarshalText(text []byte) error {
	role := Role(text)
	if !role.Valid() {
		return fmt.Errorf("invalid role: %q", text)
	}
	*r = role
	return nil
}

// Turn is a single entry in a chat history.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// User creates a turn authored by the user.
func User(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// Assistant creates a turn authored by the model.
func Assistant(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}
