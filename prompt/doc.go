// Package prompt assembles the system prompt sent with every generation call.
//
// The prompt is built from three parts, always in this order:
//  1. StyleGuide: a fixed guide that steers the model toward a natural, human voice
//  2. Author context: the user's memory items, one per line
//  3. Style examples: excerpts of the user's own writing, truncated to ExcerptLength runes
//
// Nothing is cached. Build is called with the current snapshots at the start of each
// generation so an edited memory or example is visible on the very next call.
package prompt
