package validation

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
	"github.com/stvalidate/stvalidate/internal/index"
)

// resolveOperatorName extracts the callee name from a CallStatement's
// operator expression -- a bare Reference, or the last element of a
// QualifiedReference (e.g. `MyFB.MyMethod(...)`).
func resolveOperatorName(operator ast.Statement) (string, bool) {
	switch o := operator.(type) {
	case *ast.Reference:
		return o.Name, true
	case *ast.QualifiedReference:
		if len(o.Elements) == 0 {
			return "", false
		}
		if ref, ok := o.Elements[len(o.Elements)-1].(*ast.Reference); ok {
			return ref.Name, true
		}
	}
	return "", false
}

// validateCall checks a call-statement's arguments against the resolved
// callee's parameter list: names, positions, by-ref bindings, mixing of
// implicit and explicit arguments, and missing IN_OUT bindings. Surplus
// arguments are not counted or reported.
func (v *Validator) validateCall(operator ast.Statement, parameters ast.Statement) {
	v.Visit(operator)

	name, ok := resolveOperatorName(operator)
	pou, found := (*index.Pou)(nil), false
	if ok {
		pou, found = v.ctx.findPouName(name)
	}

	if !found {
		// POU could not be found -- best-effort validation of the
		// passed parameters only.
		if parameters != nil {
			v.Visit(parameters)
		}
		return
	}

	declared := v.ctx.Index.GetDeclaredParameters(pou.GetName())
	passed := ast.FlattenExpressionList(parameters)

	passedIdx := map[int]bool{}
	implicitSoFar := true

	for i, p := range passed {
		if slot, valueExpr, isImplicit, ok := matchCallParameter(p, declared, i); ok {
			passedIdx[slot] = true

			if slot < len(declared) {
				v.validateCallByRef(declared[slot], p)
			}

			// Explicit parameter bindings (`name := value` / `name =>
			// value`) are validated when the traversal below visits the
			// inner Assignment/OutputAssignment node itself.
			if isImplicit {
				v.validateAssignment(valueExpr, nil, p.Pos())
			}

			if i == 0 {
				implicitSoFar = isImplicit
			} else if implicitSoFar != isImplicit {
				v.ctx.push(diagnostic.NewInvalidParameterType(p.Pos()))
			}
		}

		v.Visit(p)
	}

	if pou.RequiresInOutBinding() {
		for _, p := range declared {
			if p.VariableType == index.InOut && !passedIdx[int(p.LocationInParent)] {
				v.ctx.push(diagnostic.NewMissingInoutParameter(p.GetName(), operator.Pos()))
			}
		}
	}
}

// matchCallParameter resolves one passed argument to its declared slot.
// Implicit (positional) arguments bind to the i-th declared parameter;
// explicit arguments (`name := value` / `name => value`) bind by name. ok is
// false when an explicit argument names an unknown parameter.
func matchCallParameter(p ast.Statement, declared []*index.VariableIndexEntry, positional int) (slot int, value ast.Statement, isImplicit bool, ok bool) {
	switch a := p.(type) {
	case *ast.Assignment:
		if ref, isRef := a.Left.(*ast.Reference); isRef {
			if idx, found := findParamByName(declared, ref.Name); found {
				return idx, a.Right, false, true
			}
		}
		return 0, nil, false, false
	case *ast.OutputAssignment:
		if ref, isRef := a.Left.(*ast.Reference); isRef {
			if idx, found := findParamByName(declared, ref.Name); found {
				return idx, a.Right, false, true
			}
		}
		return 0, nil, false, false
	default:
		if positional >= len(declared) {
			return 0, nil, false, false
		}
		return positional, p, true, true
	}
}

func findParamByName(declared []*index.VariableIndexEntry, name string) (int, bool) {
	for _, p := range declared {
		if p.Name == name {
			return int(p.LocationInParent), true
		}
	}
	return 0, false
}

// validateCallByRef checks that an argument bound to an OUT or IN_OUT
// parameter is itself a writable reference, not a literal or computed value.
func (v *Validator) validateCallByRef(param *index.VariableIndexEntry, arg ast.Statement) {
	if param.VariableType != index.Out && param.VariableType != index.InOut {
		return
	}

	if ast.CanBeAssignedTo(arg) {
		return
	}

	if _, isEmpty := arg.(*ast.Empty); isEmpty && param.VariableType == index.Out {
		// `foo(bar => )` is legal: an empty output binding is allowed to
		// be discarded. InOut has no such allowance -- a caller must
		// supply storage for it.
		return
	}

	switch a := arg.(type) {
	case *ast.Assignment:
		v.validateCallByRef(param, a.Right)
		return
	case *ast.OutputAssignment:
		v.validateCallByRef(param, a.Right)
		return
	}

	v.ctx.push(diagnostic.NewInvalidArgumentType(param.GetName(), param.VariableType, arg.Pos()))
}
