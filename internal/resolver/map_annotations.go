package resolver

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/index"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// entry bundles an annotation with the optional type hint propagated onto
// that same node, plus an optional generic-nature expectation.
type entry struct {
	annotation StatementAnnotation
	typeHint   *typesystem.Type
	nature     typesystem.Nature
	hasNature  bool
}

// MapAnnotations is the reference AnnotationMap implementation: a plain map
// keyed by AST node identity (every AST node is a pointer, so pointer
// identity is node identity). Used by tests and the CLI demo; a real
// compiler driver populates the same shape during resolution.
type MapAnnotations struct {
	entries map[ast.Statement]*entry
}

func NewMapAnnotations() *MapAnnotations {
	return &MapAnnotations{entries: map[ast.Statement]*entry{}}
}

func (m *MapAnnotations) get(stmt ast.Statement) *entry {
	if e, ok := m.entries[stmt]; ok {
		return e
	}
	return nil
}

func (m *MapAnnotations) ensure(stmt ast.Statement) *entry {
	e := m.entries[stmt]
	if e == nil {
		e = &entry{}
		m.entries[stmt] = e
	}
	return e
}

// Annotate records the resolved binding for stmt.
func (m *MapAnnotations) Annotate(stmt ast.Statement, ann StatementAnnotation) {
	m.ensure(stmt).annotation = ann
}

// SetTypeHint records the context-propagated target type for stmt.
func (m *MapAnnotations) SetTypeHint(stmt ast.Statement, t *typesystem.Type) {
	m.ensure(stmt).typeHint = t
}

// SetGenericNature records the generic-nature expectation for stmt.
func (m *MapAnnotations) SetGenericNature(stmt ast.Statement, n typesystem.Nature) {
	e := m.ensure(stmt)
	e.nature = n
	e.hasNature = true
}

func (m *MapAnnotations) Get(stmt ast.Statement) (StatementAnnotation, bool) {
	e := m.get(stmt)
	if e == nil || e.annotation == nil {
		return nil, false
	}
	return e.annotation, true
}

func (m *MapAnnotations) HasTypeAnnotation(stmt ast.Statement) bool {
	e := m.get(stmt)
	return e != nil && e.annotation != nil
}

func resolveTypeName(name string, idx index.Index) *typesystem.Type {
	if idx == nil || name == "" {
		return typesystem.Void
	}
	return idx.GetEffectiveTypeOrVoidByName(name)
}

func (m *MapAnnotations) GetType(stmt ast.Statement, idx index.Index) *typesystem.Type {
	e := m.get(stmt)
	if e == nil || e.annotation == nil {
		return nil
	}
	switch a := e.annotation.(type) {
	case Variable:
		return a.ResultingType
	case Value:
		return a.ResultingType
	case TypeAnnotation:
		return resolveTypeName(a.TypeName, idx)
	default:
		return nil
	}
}

func (m *MapAnnotations) GetTypeOrVoid(stmt ast.Statement, idx index.Index) *typesystem.Type {
	if t := m.GetType(stmt, idx); t != nil {
		return t
	}
	return typesystem.Void
}

func (m *MapAnnotations) GetTypeHint(stmt ast.Statement, idx index.Index) *typesystem.Type {
	e := m.get(stmt)
	if e == nil {
		return nil
	}
	return e.typeHint
}

func (m *MapAnnotations) GetGenericNature(stmt ast.Statement) (typesystem.Nature, bool) {
	e := m.get(stmt)
	if e == nil || !e.hasNature {
		return 0, false
	}
	return e.nature, true
}
