package validation

import (
	"testing"

	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

func TestValidateAssignmentConstantTarget(t *testing.T) {
	f := newFixture(t, "Main")
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")

	left := f.ref("MaxCount", intType, withConstant)
	right := f.hint(f.value(intLit(3), intType), intType)

	f.v.validateAssignment(right, left, left.Pos())

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.CannotAssignToConstant) {
		t.Fatalf("expected exactly one cannot_assign_to_constant, got %v", kinds)
	}
}

func TestValidateAssignmentNonReferenceTarget(t *testing.T) {
	f := newFixture(t, "Main")
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")

	left := f.value(intLit(1), intType) // a literal can never be assigned to
	right := f.hint(f.value(intLit(2), intType), intType)

	f.v.validateAssignment(right, left, left.Pos())

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.ReferenceExpected) {
		t.Fatalf("expected exactly one reference_expected, got %v", kinds)
	}
}

func TestValidateAssignmentImplicitDowncast(t *testing.T) {
	f := newFixture(t, "Main")
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	dintType := f.idx.GetEffectiveTypeOrVoidByName("DINT")

	left := f.ref("Small", intType)
	right := f.hint(f.ref("Big", dintType), intType)

	f.v.validateAssignment(right, left, left.Pos())

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.ImplicitDowncast) {
		t.Fatalf("expected exactly one implicit_downcast, got %v", kinds)
	}
}

func TestValidateAssignmentLiteralExemptFromDowncast(t *testing.T) {
	f := newFixture(t, "Main")
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	dintType := f.idx.GetEffectiveTypeOrVoidByName("DINT")

	left := f.ref("Small", intType)
	// A DINT-typed literal narrowing into INT: the types pass every
	// compatibility check, and only the literal exemption keeps the
	// downcast warning away.
	right := f.hint(f.value(intLit(100), dintType), intType)

	f.v.validateAssignment(right, left, left.Pos())

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected no implicit_downcast for a narrowing literal, got %v", f.diagnosticKinds())
	}
}

func TestValidateAssignmentStringToCharLength1(t *testing.T) {
	f := newFixture(t, "Main")
	charType := f.idx.GetEffectiveTypeOrVoidByName("CHAR")
	stringType := f.idx.GetEffectiveTypeOrVoidByName("STRING")

	left := f.ref("C", charType)
	right := f.hint(f.value(strLit("x"), stringType), charType)

	f.v.validateAssignment(right, left, left.Pos())

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected the 1-char string to assign cleanly, got %v", f.diagnosticKinds())
	}
}

func TestValidateAssignmentStringToCharTooLong(t *testing.T) {
	f := newFixture(t, "Main")
	charType := f.idx.GetEffectiveTypeOrVoidByName("CHAR")
	stringType := f.idx.GetEffectiveTypeOrVoidByName("STRING")

	left := f.ref("C", charType)
	right := f.hint(f.value(strLit("xy"), stringType), charType)

	f.v.validateAssignment(right, left, left.Pos())

	// The length check rejects with syntax_error directly; since that is a
	// specific diagnostic, no generic invalid_assignment follows it.
	kinds := f.diagnosticKinds()
	want := []string{string(diagnostic.SyntaxError)}
	if len(kinds) != len(want) || kinds[0] != want[0] {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
}

func TestValidateAssignmentPointerTooSmallTarget(t *testing.T) {
	f := newFixture(t, "Main")
	small := f.idx.GetEffectiveTypeOrVoidByName("SINT") // 8 bits, far under pointer width

	ptr := &typesystem.Type{Kind: typesystem.KindPointer, Name: "POINTER TO INT", PointerInnerName: "INT"}
	f.idx.DefineType(ptr)

	left := f.ref("P", ptr)
	right := f.hint(f.ref("Small", small), ptr)

	f.v.validateAssignment(right, left, left.Pos())

	// isInvalidPointerAssignment pushes incompatible_type_size directly;
	// since that is a specific diagnostic, validateAssignment pushes no
	// generic invalid_assignment on top of it.
	kinds := f.diagnosticKinds()
	want := []string{string(diagnostic.IncompatibleTypeSize)}
	if len(kinds) != len(want) || kinds[0] != want[0] {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
}

func TestValidateAssignmentAggregateKindMismatch(t *testing.T) {
	f := newFixture(t, "Main")
	arr := &typesystem.Type{Kind: typesystem.KindArray, Name: "ARRAY [0..9] OF INT", ArrayInnerName: "INT"}
	f.idx.DefineType(arr)
	str := f.idx.GetEffectiveTypeOrVoidByName("STRING")

	left := f.ref("A", arr)
	right := f.hint(f.ref("S", str), arr)

	f.v.validateAssignment(right, left, left.Pos())

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.InvalidAssignment) {
		t.Fatalf("expected exactly one invalid_assignment, got %v", kinds)
	}
}

func TestValidateAssignmentImplicitCallParameterHasNoLValueChecks(t *testing.T) {
	f := newFixture(t, "Main")
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")

	// left is nil, as it is for an implicit positional call-parameter
	// binding; even a non-l-value right-hand side must not trigger the
	// constant/reference checks that only apply to an explicit assignment
	// target.
	right := f.hint(f.value(intLit(5), intType), intType)
	f.v.validateAssignment(right, nil, right.Pos())

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected no diagnostics, got %v", f.diagnosticKinds())
	}
}
