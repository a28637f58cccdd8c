package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	assert.Equal(t, StyleGuide, Build(nil, nil))
	assert.Equal(t, StyleGuide, Build([]Memory{}, []WritingExample{}))
}

func TestBuild_MemoriesInOrder(t *testing.T) {
	memories := []Memory{
		NewMemory("I live in Lisbon"),
		NewMemory("I have two dogs"),
		NewMemory("I work as a marine biologist"),
	}

	got := Build(memories, nil)

	require.True(t, strings.HasPrefix(got, StyleGuide))
	assert.Contains(t, got, authorContextHeader)
	assert.NotContains(t, got, styleExamplesHeader)

	last := -1
	for _, m := range memories {
		idx := strings.Index(got, "- "+m.Content+"\n")
		require.NotEqual(t, -1, idx, "memory %q missing", m.Content)
		assert.Greater(t, idx, last, "memory %q out of order", m.Content)
		last = idx
	}
}

func TestBuild_ExamplesTruncated(t *testing.T) {
	long := strings.Repeat("word ", 200)
	examples := []WritingExample{
		NewWritingExample("Long one", long),
		NewWritingExample("", "short sample"),
	}

	got := Build(nil, examples)

	assert.Contains(t, got, styleExamplesHeader)
	assert.Contains(t, got, "Example 1: Long one\n"+long[:ExcerptLength]+"...")
	assert.NotContains(t, got, long)
	assert.Contains(t, got, "Example 2: Untitled\nshort sample\n")
	assert.Contains(t, got, styleExamplesOutro)
}

func TestBuild_SectionOrder(t *testing.T) {
	got := Build(
		[]Memory{NewMemory("fact")},
		[]WritingExample{NewWritingExample("t", "sample")},
	)

	guide := strings.Index(got, StyleGuide)
	memories := strings.Index(got, authorContextHeader)
	examples := strings.Index(got, styleExamplesHeader)

	assert.Equal(t, 0, guide)
	assert.Less(t, guide, memories)
	assert.Less(t, memories, examples)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short"))

	exact := strings.Repeat("a", ExcerptLength)
	assert.Equal(t, exact, Excerpt(exact))

	multibyte := strings.Repeat("é", ExcerptLength+10)
	got := Excerpt(multibyte)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, ExcerptLength+3, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}
