package validation

import (
	"testing"

	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/index"
)

func TestValidateReferenceUnresolved(t *testing.T) {
	f := newFixture(t, "Main")
	r := &ast.Reference{Name: "Foo"}

	f.v.validateReference(r, "Foo")

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.UnresolvedReference) {
		t.Fatalf("expected exactly one unresolved_reference, got %v", kinds)
	}
}

func TestValidateReferencePublicVariableAlwaysVisible(t *testing.T) {
	f := newFixture(t, "Main")
	f.idx.DefinePou(&index.Pou{Name: "Main"}, nil)
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	r := f.ref("X", intType, withQualifiedName("Other.X")) // Private defaults to false

	f.v.validateReference(r, "X")

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected a public variable to be visible from anywhere, got %v", f.diagnosticKinds())
	}
}

func TestValidateReferencePrivateVariableSamePouVisible(t *testing.T) {
	f := newFixture(t, "Main")
	f.idx.DefinePou(&index.Pou{Name: "Main"}, nil)
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	r := f.ref("X", intType, withPrivate, withQualifiedName("Main.X"))

	f.v.validateReference(r, "X")

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected a private variable declared in the enclosing POU to be visible, got %v", f.diagnosticKinds())
	}
}

func TestValidateReferencePrivateVariableForeignPouRejected(t *testing.T) {
	f := newFixture(t, "Main")
	f.idx.DefinePou(&index.Pou{Name: "Main"}, nil) // Container empty, as for every ordinary Program/FunctionBlock/Function
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	r := f.ref("X", intType, withPrivate, withQualifiedName("Other.X"))

	f.v.validateReference(r, "X")

	kinds := f.diagnosticKinds()
	if len(kinds) != 1 || kinds[0] != string(diagnostic.IllegalAccess) {
		t.Fatalf("expected exactly one illegal_access, got %v", kinds)
	}
}

func TestValidateReferencePrivateVariableVisibleViaContainer(t *testing.T) {
	f := newFixture(t, "Main.DoSomething")
	f.idx.DefinePou(&index.Pou{Name: "Main.DoSomething", Kind: index.KindAction, Container: "Main"}, nil)
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	r := f.ref("X", intType, withPrivate, withQualifiedName("Main.X"))

	f.v.validateReference(r, "X")

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected a private variable declared in the containing POU to be visible from its action, got %v", f.diagnosticKinds())
	}
}

func TestValidateReferenceNoQualifierSkipsVisibilityCheck(t *testing.T) {
	f := newFixture(t, "")
	intType := f.idx.GetEffectiveTypeOrVoidByName("INT")
	r := f.ref("X", intType, withPrivate, withQualifiedName("Other.X"))

	f.v.validateReference(r, "X")

	if len(f.diagnosticKinds()) != 0 {
		t.Fatalf("expected an empty qualifier to skip the visibility check entirely, got %v", f.diagnosticKinds())
	}
}
