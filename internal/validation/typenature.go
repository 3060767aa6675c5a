package validation

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// validateTypeNature checks a node's actual type against the generic type
// nature its context expects (Int, Real, Num, ...). It runs unconditionally on
// every node after that node's local rule (or structural recursion) has
// run. The two checks are mutually exclusive: a node whose type hint is
// still an unresolved Generic never also gets a nature-mismatch diagnostic
// in the same pass.
func (v *Validator) validateTypeNature(stmt ast.Statement) {
	typeHint := v.ctx.Annotations.GetTypeHint(stmt, v.ctx.Index)
	if typeHint == nil {
		typeHint = v.ctx.Annotations.GetType(stmt, v.ctx.Index)
	}
	if typeHint == nil {
		return
	}

	if typeHint.Kind == typesystem.KindGeneric {
		v.ctx.push(diagnostic.NewUnresolvedGenericType(typeHint.GenericSymbol, typeHint.GenericNature.String(), stmt.Pos()))
		return
	}

	actualType := v.ctx.Annotations.GetType(stmt, v.ctx.Index)
	nature, hasNature := v.ctx.Annotations.GetGenericNature(stmt)
	if actualType == nil || !hasNature {
		return
	}

	// A numerical actual type always satisfies a Real expectation (an INT
	// literal binding to a REAL generic parameter is fine).
	if actualType.HasNature(nature, v.ctx.Index) || ((nature == typesystem.NatureReal || typeHint.IsFloat()) && actualType.IsNumerical()) {
		return
	}
	v.ctx.push(diagnostic.NewInvalidTypeNature(actualType.GetName(), nature.String(), stmt.Pos()))
}
