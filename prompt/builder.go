package prompt

import (
	"fmt"
	"strings"
)

// ExcerptLength is the number of runes of a writing example that reach the prompt.
const ExcerptLength = 500

const (
	authorContextHeader = "=== AUTHOR CONTEXT ==="
	authorContextIntro  = "Facts about the author. Weave them in where they fit naturally, never as a list:"
	styleExamplesHeader = "=== STYLE EXAMPLES ==="
	styleExamplesIntro  = "Excerpts of the author's own writing:"
	styleExamplesOutro  = "Match the tone, vocabulary, sentence rhythm and structure of these examples. Do not copy their content."
	sectionEnd          = "=== END ==="
)

// Build returns the full system prompt for one generation call.
// With no memories and no examples the result is exactly StyleGuide.
func Build(memories []Memory, examples []WritingExample) string {
	var b strings.Builder
	b.WriteString(StyleGuide)

	if len(memories) > 0 {
		b.WriteString("\n\n")
		b.WriteString(authorContextHeader)
		b.WriteByte('\n')
		b.WriteString(authorContextIntro)
		b.WriteByte('\n')
		for _, m := range memories {
			b.WriteString("- ")
			b.WriteString(m.Content)
			b.WriteByte('\n')
		}
		b.WriteString(sectionEnd)
	}

	if len(examples) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styleExamplesHeader)
		b.WriteByte('\n')
		b.WriteString(styleExamplesIntro)
		b.WriteString("\n\n")
		for i, ex := range examples {
			title := ex.Title
			if strings.TrimSpace(title) == "" {
				title = "Untitled"
			}
			fmt.Fprintf(&b, "Example %d: %s\n%s\n\n", i+1, title, Excerpt(ex.Content))
		}
		b.WriteString(styleExamplesOutro)
		b.WriteByte('\n')
		b.WriteString(sectionEnd)
	}

	return b.String()
}

// Excerpt truncates content to ExcerptLength runes and marks the cut with an ellipsis.
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= ExcerptLength {
		return content
	}
	return string(runes[:ExcerptLength]) + "..."
}
