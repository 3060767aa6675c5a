package validation

import (
	"testing"

	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/constevaluator"
	"github.com/stvalidate/stvalidate/internal/index"
	"github.com/stvalidate/stvalidate/internal/resolver"
	"github.com/stvalidate/stvalidate/internal/source"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// fixture bundles the plumbing every test needs: an index to register types
// and POUs in, an annotation map to wire up manually (standing in for name
// resolution/type inference, which are out of scope), and a validator
// constructed over both.
type fixture struct {
	t       *testing.T
	idx     *index.StaticIndex
	ann     *resolver.MapAnnotations
	ctx     *ValidationContext
	v       *Validator
	counter int
}

func newFixture(t *testing.T, qualifier string) *fixture {
	t.Helper()
	idx := index.NewStaticIndex()
	ann := resolver.NewMapAnnotations()
	ctx := NewContext(idx, ann, constevaluator.NewLiteralEvaluator(), qualifier)
	return &fixture{t: t, idx: idx, ann: ann, ctx: ctx, v: New(ctx)}
}

func (f *fixture) diagnosticKinds() []string {
	var kinds []string
	for _, d := range f.ctx.Sink.All() {
		kinds = append(kinds, string(d.Kind))
	}
	return kinds
}

func (f *fixture) nextRange() source.Range {
	f.counter++
	return source.Range{Start: f.counter, End: f.counter + 1}
}

// ref builds a Reference node and annotates it as a Variable binding.
func (f *fixture) ref(name string, typ *typesystem.Type, opts ...func(*resolver.Variable)) *ast.Reference {
	r := &ast.Reference{Name: name}
	r.Range = f.nextRange()
	va := resolver.Variable{QualifiedName: name, ResultingType: typ, VariableType: index.Local}
	for _, o := range opts {
		o(&va)
	}
	f.ann.Annotate(r, va)
	return r
}

// value builds a plain value-producing node (no named binding) and
// annotates it with the given resulting type.
func (f *fixture) value(stmt ast.Statement, typ *typesystem.Type) ast.Statement {
	f.ann.Annotate(stmt, resolver.Value{ResultingType: typ})
	return stmt
}

// hint sets stmt's propagated type hint -- the target type context pushes
// down onto an expression (e.g. the declared type of the variable it
// initializes).
func (f *fixture) hint(stmt ast.Statement, typ *typesystem.Type) ast.Statement {
	f.ann.SetTypeHint(stmt, typ)
	return stmt
}

func withConstant(v *resolver.Variable) { v.Constant = true }
func withPrivate(v *resolver.Variable)   { v.Private = true }

func withQualifiedName(name string) func(*resolver.Variable) {
	return func(v *resolver.Variable) { v.QualifiedName = name }
}

func withVarType(vt index.VariableType) func(*resolver.Variable) {
	return func(v *resolver.Variable) { v.VariableType = vt }
}

func withArgType(at index.ArgumentType) func(*resolver.Variable) {
	return func(v *resolver.Variable) { v.ArgumentType = at }
}

func intLit(n int) *ast.LiteralInteger {
	return &ast.LiteralInteger{Value: int64(n)}
}

func strLit(s string) *ast.LiteralString {
	return &ast.LiteralString{Value: s}
}
