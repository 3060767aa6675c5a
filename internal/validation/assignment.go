package validation

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/resolver"
	"github.com/stvalidate/stvalidate/internal/source"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// validateAssignment checks a left := right pairing: constant-target and
// l-value checks, then type compatibility. left is nil for an implicit
// call-parameter binding, in which case only the type-compatibility checks
// run -- the l-value/constant checks only make sense when there is a real
// left-hand expression written in source.
func (v *Validator) validateAssignment(right ast.Statement, left ast.Statement, location source.Range) {
	if left != nil {
		if ann, ok := v.ctx.Annotations.Get(left); ok {
			if va, ok := ann.(resolver.Variable); ok && va.Constant {
				v.ctx.push(diagnostic.NewCannotAssignToConstant(va.QualifiedName, left.Pos()))
			}
		}
		if !ast.CanBeAssignedTo(left) {
			v.ctx.push(diagnostic.NewReferenceExpected(left.Pos()))
		}
	}

	rightType := v.ctx.Annotations.GetType(right, v.ctx.Index)
	leftType := v.ctx.Annotations.GetTypeHint(right, v.ctx.Index)
	if rightType == nil || leftType == nil {
		return
	}

	// Auto-deref pointer normalization: ByRef inout parameters surface as
	// pointers but behave as values here.
	if leftType.Kind == typesystem.KindPointer && leftType.AutoDeref {
		leftType = v.ctx.Index.GetEffectiveTypeOrVoidByName(leftType.PointerInnerName)
	}

	pushedBefore := v.ctx.Sink.Count()
	if !leftType.IsCompatibleWith(rightType) || !v.isValidAssignment(leftType, rightType, right, location) {
		// A rejection that already pushed its own specific diagnostic
		// (syntax error, incompatible type size) gets no generic one.
		if v.ctx.Sink.Count() == pushedBefore {
			v.ctx.push(diagnostic.NewInvalidAssignment(rightType.GetName(), leftType.GetName(), location))
		}
		return
	}

	if !ast.IsLiteral(right) {
		v.validateAssignmentTypeSizes(leftType, rightType, location)
	}
}

// isValidAssignment is a disjunction-of-allowance / conjunction-of-
// disqualifiers check. The char/string-length-1 allowance short-circuits:
// when it applies, every other disqualifier is skipped (they would
// otherwise reject the very case this allowance exists for).
func (v *Validator) isValidAssignment(left, right *typesystem.Type, right_ ast.Statement, location source.Range) bool {
	if v.isValidStringToCharAssignment(left, right, right_, location) {
		return true
	}
	if v.isInvalidPointerAssignment(left, right, location) ||
		isInvalidCharAssignment(left, right) ||
		isAggregateToNonAggregateAssignment(left, right) ||
		isAggregateTypeMismatch(left, right) {
		return false
	}
	return true
}

// isValidStringToCharAssignment allows `char := 'x'` (a string literal of
// length exactly 1, measured without quote delimiters). A longer string
// literal on a char target is rejected with a dedicated syntax-error
// diagnostic rather than falling through to the generic invalid-assignment
// one.
func (v *Validator) isValidStringToCharAssignment(left, right *typesystem.Type, rightStmt ast.Statement, location source.Range) bool {
	if !left.IsCompatibleCharAndString(right) {
		return false
	}
	lit, ok := rightStmt.(*ast.LiteralString)
	if !ok {
		return false
	}
	if len(lit.Value) == 1 {
		return true
	}
	v.ctx.push(diagnostic.NewSyntaxError(
		"Value: '"+lit.Value+"' exceeds length for type: "+left.GetName(),
		location,
	))
	return false
}

func (v *Validator) isInvalidPointerAssignment(left, right *typesystem.Type, location source.Range) bool {
	if left.IsPointer() && right.IsPointer() {
		return !typesystem.IsSameTypeClass(left, right)
	}
	if right.IsPointer() && !left.IsPointer() && left.GetSizeInBits(v.ctx.Index) < typesystem.PointerSize {
		v.ctx.push(diagnostic.NewIncompatibleTypeSize(left.GetName(), left.GetSizeInBits(v.ctx.Index), "hold a", location))
		return true
	}
	if left.IsPointer() && !right.IsPointer() && right.GetSizeInBits(v.ctx.Index) < typesystem.PointerSize {
		v.ctx.push(diagnostic.NewIncompatibleTypeSize(right.GetName(), right.GetSizeInBits(v.ctx.Index), "to be stored in a", location))
		return true
	}
	return false
}

// isInvalidCharAssignment rejects CHAR := WCHAR (or vice versa).
func isInvalidCharAssignment(left, right *typesystem.Type) bool {
	return left.IsCharacter() && right.IsCharacter() && left.GetName() != right.GetName()
}

func isAggregateToNonAggregateAssignment(left, right *typesystem.Type) bool {
	return left.IsAggregate() != right.IsAggregate()
}

func isAggregateTypeMismatch(left, right *typesystem.Type) bool {
	return left.IsAggregate() && right.IsAggregate() && !typesystem.IsSameTypeClass(left, right)
}

func (v *Validator) validateAssignmentTypeSizes(left, right *typesystem.Type, location source.Range) {
	if left.GetSizeInBits(v.ctx.Index) < right.GetSizeInBits(v.ctx.Index) {
		v.ctx.push(diagnostic.NewImplicitDowncast(left.GetName(), right.GetName(), location))
	}
}
