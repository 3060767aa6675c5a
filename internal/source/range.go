// Package source holds the position information threaded through the AST,
// the annotation map and the diagnostics produced by validation.
package source

import "fmt"

// Range is a half-open byte-offset span within a single source file.
// It is produced by the lexer/parser (out of scope here) and passed through
// validation unchanged.
type Range struct {
	Start  int
	End    int
	FileID int
}

// Len returns the number of bytes the range spans.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("file#%d[%d:%d]", r.FileID, r.Start, r.End)
}
