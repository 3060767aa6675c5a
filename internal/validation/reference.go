package validation

import (
	"strings"

	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/resolver"
)

// validateReference checks an identifier reference: an unannotated
// identifier is unresolved; a resolved private variable may only be
// referenced from within its own POU (or, for actions/methods, the POU
// that contains them).
func (v *Validator) validateReference(stmt ast.Statement, name string) {
	if !v.ctx.Annotations.HasTypeAnnotation(stmt) {
		v.ctx.push(diagnostic.NewUnresolvedReference(name, stmt.Pos()))
		return
	}

	ann, ok := v.ctx.Annotations.Get(stmt)
	if !ok {
		return
	}
	va, ok := ann.(resolver.Variable)
	if !ok || !va.Private {
		return
	}

	if v.ctx.Qualifier == "" {
		return
	}
	pou, found := v.ctx.findPouName(v.ctx.Qualifier)
	if !found {
		return
	}
	container := pou.GetContainer()
	if strings.HasPrefix(va.QualifiedName, pou.GetName()) || (container != "" && strings.HasPrefix(va.QualifiedName, container)) {
		return
	}
	v.ctx.push(diagnostic.NewIllegalAccess(va.QualifiedName, stmt.Pos()))
}
