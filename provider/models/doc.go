// Package models maps the logical model names the host application offers to the
// provider and vendor model id that serve them.
//
// Resolution is a table lookup. A name that is not in the table resolves to Default
// instead of failing: the host enumerates valid names itself, so drift between the two
// degrades to a working model rather than a broken generate call.
package models
