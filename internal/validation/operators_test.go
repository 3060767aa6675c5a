package validation

import (
	"testing"

	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/index"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

func defineStructType(f *fixture, name string) *typesystem.Type {
	st := &typesystem.Type{Kind: typesystem.KindStruct, Name: name, MemberNames: []string{"Field"}}
	f.idx.DefineType(st)
	return st
}

func defineCompareFunction(f *fixture, typeName, opName string) {
	name := typesystem.GetEqualsFunctionNameFor(typeName, opName)
	params := []*index.VariableIndexEntry{
		{Name: "A", DataTypeName: typeName, VariableType: index.In, ArgumentType: index.ArgumentType{ByRef: false, Kind: index.In}, LocationInParent: 0},
		{Name: "B", DataTypeName: typeName, VariableType: index.In, ArgumentType: index.ArgumentType{ByRef: false, Kind: index.In}, LocationInParent: 1},
		{Name: "Ret", DataTypeName: "BOOL", VariableType: index.ReturnVar, LocationInParent: 2},
	}
	f.idx.DefinePou(&index.Pou{Name: name}, params)
}

func TestValidateBinaryExpressionMissingCompareFunction(t *testing.T) {
	f := newFixture(t, "Main")
	st := defineStructType(f, "MyStruct")
	left := f.ref("X", st)
	right := f.ref("Y", st)

	f.v.visitBinaryExpression(&ast.BinaryExpression{}, ast.Equal, left, right)

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.MissingCompareFunction) {
		t.Fatalf("expected exactly one missing_compare_function, got %v", kinds)
	}
}

func TestValidateBinaryExpressionCompareFunctionPresent(t *testing.T) {
	f := newFixture(t, "Main")
	st := defineStructType(f, "MyStruct")
	defineCompareFunction(f, "MyStruct", "=")
	left := f.ref("X", st)
	right := f.ref("Y", st)

	f.v.visitBinaryExpression(&ast.BinaryExpression{}, ast.Equal, left, right)

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected a matching compare function to satisfy the check, got %v", f.diagnosticKinds())
	}
}

func TestValidateBinaryExpressionNumericOperandsSkipCompareCheck(t *testing.T) {
	f := newFixture(t, "Main")
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	left := f.ref("X", intType)
	right := f.ref("Y", intType)

	f.v.visitBinaryExpression(&ast.BinaryExpression{}, ast.Equal, left, right)

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected numeric operands to never require a compare function, got %v", f.diagnosticKinds())
	}
}

func TestValidateBinaryExpressionPointerOperandsSkipCompareCheck(t *testing.T) {
	f := newFixture(t, "Main")
	ptr := &typesystem.Type{Kind: typesystem.KindPointer, Name: "POINTER TO MyStruct", PointerInnerName: "MyStruct"}
	f.idx.DefineType(ptr)
	left := f.ref("X", ptr)
	right := f.ref("Y", ptr)

	f.v.visitBinaryExpression(&ast.BinaryExpression{}, ast.Equal, left, right)

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected pointer operands to never require a compare function, got %v", f.diagnosticKinds())
	}
}

func TestValidateBinaryExpressionNotEqualFansOutToEquals(t *testing.T) {
	f := newFixture(t, "Main")
	st := defineStructType(f, "MyStruct")
	left := f.ref("X", st)
	right := f.ref("Y", st)

	f.v.visitBinaryExpression(&ast.BinaryExpression{}, ast.NotEqual, left, right)

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.MissingCompareFunction) {
		t.Fatalf("expected <> to validate via the = compare function check, got %v", kinds)
	}
}

func TestValidateBinaryExpressionGreaterOrEqualFansOutTwice(t *testing.T) {
	f := newFixture(t, "Main")
	st := defineStructType(f, "MyStruct")
	left := f.ref("X", st)
	right := f.ref("Y", st)

	f.v.visitBinaryExpression(&ast.BinaryExpression{}, ast.GreaterOrEqual, left, right)

	kinds := f.diagnosticKinds()
	if len(kinds) != 2 || kinds[0] != string(diagnostic.MissingCompareFunction) || kinds[1] != string(diagnostic.MissingCompareFunction) {
		t.Fatalf("expected >= to require both a > and a = compare function, got %v", kinds)
	}
}

func TestValidateUnaryExpressionAddressOfReference(t *testing.T) {
	f := newFixture(t, "Main")
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	operand := f.ref("X", intType)

	f.v.validateUnaryExpression(ast.Address, operand, operand.Pos())

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected &X to validate cleanly, got %v", f.diagnosticKinds())
	}
}

func TestValidateUnaryExpressionAddressOfNonReference(t *testing.T) {
	f := newFixture(t, "Main")
	operand := intLit(1)

	f.v.validateUnaryExpression(ast.Address, operand, operand.Pos())

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.InvalidOperation) {
		t.Fatalf("expected exactly one invalid_operation, got %v", kinds)
	}
}

func TestValidateUnaryExpressionNonAddressOperatorIsNoOp(t *testing.T) {
	f := newFixture(t, "Main")
	operand := intLit(1)

	f.v.validateUnaryExpression(ast.Minus, operand, operand.Pos())

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected a non address-of operator to skip this check entirely, got %v", f.diagnosticKinds())
	}
}
