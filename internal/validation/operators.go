package validation

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/index"
	"github.com/stvalidate/stvalidate/internal/source"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// visitBinaryExpression fans a comparison operator out to the checks its
// derived operators also imply: `<>` validates as `=`, `>=`/`<=` validate
// both the strict relational operator and `=`, every other operator
// validates once.
func (v *Validator) visitBinaryExpression(stmt ast.Statement, operator ast.Operator, left, right ast.Statement) {
	switch operator {
	case ast.NotEqual:
		v.validateBinaryExpression(stmt, ast.Equal, left, right)
	case ast.GreaterOrEqual:
		v.validateBinaryExpression(stmt, ast.Greater, left, right)
		v.validateBinaryExpression(stmt, ast.Equal, left, right)
	case ast.LessOrEqual:
		v.validateBinaryExpression(stmt, ast.Less, left, right)
		v.validateBinaryExpression(stmt, ast.Equal, left, right)
	default:
		v.validateBinaryExpression(stmt, operator, left, right)
	}
}

// validateBinaryExpression checks the missing-compare-function rule: two
// operands of the same non-numeric, non-pointer type
// compared with a relational operator must have a matching user-defined
// compare function in scope.
func (v *Validator) validateBinaryExpression(stmt ast.Statement, operator ast.Operator, left, right ast.Statement) {
	leftType := v.ctx.Annotations.GetTypeOrVoid(left, v.ctx.Index)
	rightType := v.ctx.Annotations.GetTypeOrVoid(right, v.ctx.Index)

	intrinsic := v.ctx.Index.FindIntrinsicType(leftType)
	isNumerical := intrinsic.IsNumerical()

	if leftType.Kind == rightType.Kind && !(isNumerical || leftType.IsPointer()) {
		if operator.IsComparisonOperator() && !v.compareFunctionExists(leftType.GetName(), operator) {
			expected := typesystem.GetEqualsFunctionNameFor(leftType.GetName(), operator.String())
			v.ctx.push(diagnostic.NewMissingCompareFunction(expected, leftType.GetName(), stmt.Pos()))
		}
	}
}

// compareFunctionExists checks for a POU named by convention for
// (typeName, operator), implemented with exactly two
// ByVal Input parameters of typeName and one Return parameter of BOOL.
func (v *Validator) compareFunctionExists(typeName string, operator ast.Operator) bool {
	name := typesystem.GetEqualsFunctionNameFor(typeName, operator.String())
	impl, ok := v.ctx.Index.FindPouImplementation(name)
	if !ok {
		return false
	}
	members := v.ctx.Index.GetPouMembers(impl.GetName())
	if len(members) != 3 {
		return false
	}
	in1, in2, ret := members[0], members[1], members[2]

	if in1.VariableType != index.In || in1.ArgumentType.ByRef ||
		in2.VariableType != index.In || in2.ArgumentType.ByRef ||
		ret.VariableType != index.ReturnVar {
		return false
	}

	resolve := func(n string) string {
		return v.ctx.Index.GetEffectiveTypeOrVoidByName(n).GetName()
	}
	return resolve(in1.DataTypeName) == typeName &&
		resolve(in2.DataTypeName) == typeName &&
		ret.DataTypeName == typesystem.BoolTypeName
}

// validateUnaryExpression checks the address-of operator: `&x` is only
// valid when x is reference-shaped.
func (v *Validator) validateUnaryExpression(operator ast.Operator, value ast.Statement, location source.Range) {
	if operator != ast.Address {
		return
	}
	switch value.(type) {
	case *ast.Reference, *ast.QualifiedReference, *ast.ArrayAccess:
		return
	default:
		v.ctx.push(diagnostic.NewInvalidOperation("Invalid address-of operation", location))
	}
}
