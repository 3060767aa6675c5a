// Package resolver describes the read-only annotation map produced by name
// resolution and type inference: the bridge between a
// raw AST node and its resolved binding/type. Building the annotation map is
// out of scope here; this package only defines the contract plus a small
// in-memory reference implementation keyed by AST node identity.
package resolver

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/index"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// StatementAnnotation is the resolved binding attached to one AST node.
type StatementAnnotation interface {
	isAnnotation()
}

// Variable annotates a node that resolved to a variable/parameter binding.
type Variable struct {
	QualifiedName string
	ResultingType *typesystem.Type
	Constant      bool
	VariableType  index.VariableType
	ArgumentType  index.ArgumentType
	// Private mirrors VariableIndexEntry.IsPrivate at the point the
	// variable was declared; visibility checks read it off the
	// annotation rather than re-resolving the declaration.
	Private bool
}

func (Variable) isAnnotation() {}

// Value annotates a node that produced a value but not through a named
// binding (e.g. the result of a binary expression).
type Value struct {
	ResultingType *typesystem.Type
}

func (Value) isAnnotation() {}

// TypeAnnotation annotates a node that refers to a type itself (e.g. the
// operand of a cast-prefix, or a type name used as an expression).
type TypeAnnotation struct {
	TypeName string
}

func (TypeAnnotation) isAnnotation() {}

// ProgramAnnotation annotates a reference resolving to a PROGRAM.
type ProgramAnnotation struct {
	Name string
}

func (ProgramAnnotation) isAnnotation() {}

// FunctionAnnotation annotates a reference resolving to a callable POU.
type FunctionAnnotation struct {
	Name string
}

func (FunctionAnnotation) isAnnotation() {}

// AnnotationMap is the read-only contract the validator consults for every
// node it visits.
type AnnotationMap interface {
	Get(stmt ast.Statement) (StatementAnnotation, bool)
	// GetType returns the node's inferred type, resolving through idx when
	// the annotation only carries a type name.
	GetType(stmt ast.Statement, idx index.Index) *typesystem.Type
	// GetTypeHint returns the target type propagated down from context
	// (e.g. the declared type of the variable a literal initializes), or
	// nil if no hint was propagated.
	GetTypeHint(stmt ast.Statement, idx index.Index) *typesystem.Type
	// GetTypeOrVoid is GetType with a typesystem.Void fallback instead of
	// nil, used by rules that need a non-nil type to call predicates on.
	GetTypeOrVoid(stmt ast.Statement, idx index.Index) *typesystem.Type
	HasTypeAnnotation(stmt ast.Statement) bool
	GetGenericNature(stmt ast.Statement) (typesystem.Nature, bool)
}
