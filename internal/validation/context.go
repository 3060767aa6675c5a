// Package validation implements the statement-level semantic validator: a
// pure visitor over an already-annotated AST that pushes diagnostics
// without ever rewriting the tree or halting on the first error.
package validation

import (
	"github.com/stvalidate/stvalidate/internal/constevaluator"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/index"
	"github.com/stvalidate/stvalidate/internal/resolver"
)

// ValidationContext bundles the read-only collaborators one traversal needs
// plus the lexical qualifier (the enclosing POU name) used for visibility
// checks. Index and AnnotationMap may be shared across concurrently
// validated compilation units; the Sink is exclusive to this context.
type ValidationContext struct {
	Index       index.Index
	Annotations resolver.AnnotationMap
	Evaluator   constevaluator.ConstEvaluator
	// Qualifier is the name of the POU the statement currently being
	// visited lives in, or "" at the top level / when unknown.
	Qualifier string
	Sink      *diagnostic.Sink
}

// NewContext builds a ValidationContext rooted at the given POU qualifier.
func NewContext(idx index.Index, ann resolver.AnnotationMap, eval constevaluator.ConstEvaluator, qualifier string) *ValidationContext {
	return &ValidationContext{
		Index:       idx,
		Annotations: ann,
		Evaluator:   eval,
		Qualifier:   qualifier,
		Sink:        diagnostic.NewSink(),
	}
}

func (c *ValidationContext) push(d diagnostic.Diagnostic) {
	c.Sink.Push(d)
}

// findPouName looks up the POU registered under name, returning ok=false if
// the index has no such POU.
func (c *ValidationContext) findPouName(name string) (*index.Pou, bool) {
	return c.Index.FindPou(name)
}
