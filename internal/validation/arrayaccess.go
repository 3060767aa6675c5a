package validation

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// visitArrayAccess checks that an indexed reference actually names an
// array and that the index expressions are array-index-compatible.
func (v *Validator) visitArrayAccess(reference, access ast.Statement) {
	targetType := v.ctx.Annotations.GetTypeOrVoid(reference, v.ctx.Index)

	if targetType.Kind != typesystem.KindArray {
		v.ctx.push(diagnostic.NewIncompatibleArrayAccessVariable(targetType.GetName(), access.Pos()))
		return
	}

	if list, ok := access.(*ast.ExpressionList); ok {
		for i, expr := range list.Expressions {
			v.validateArrayAccess(expr, targetType.Dimensions, i)
		}
		return
	}
	v.validateArrayAccess(access, targetType.Dimensions, 0)
}

func (v *Validator) validateArrayAccess(access ast.Statement, dimensions []typesystem.Dimension, dimensionIndex int) {
	if lit, ok := access.(*ast.LiteralInteger); ok {
		if dimensionIndex < len(dimensions) {
			dim := dimensions[dimensionIndex]
			if dim.Resolved && (lit.Value < dim.Start || lit.Value > dim.End) {
				v.ctx.push(diagnostic.NewIncompatibleArrayAccessRange(dim, access.Pos()))
			}
		}
		return
	}

	typeInfo := v.ctx.Annotations.GetTypeOrVoid(access, v.ctx.Index)
	if !typeInfo.IsInt() {
		v.ctx.push(diagnostic.NewIncompatibleArrayAccessType(typeInfo.GetName(), access.Pos()))
	}
}
