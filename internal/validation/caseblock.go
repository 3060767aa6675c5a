package validation

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
)

// validateCaseStatement checks a CASE selector's conditions for constant-
// foldability and duplicate values. Every condition, body
// statement and the else block are visited regardless of whether the
// condition itself turned out to be semantically invalid or non-constant --
// diagnostics are additive, never a reason to skip children.
func (v *Validator) validateCaseStatement(selector ast.Statement, caseBlocks []ast.ConditionalBlock, elseBlock []ast.Statement) {
	v.Visit(selector)

	seen := map[int64]bool{}

	for _, block := range caseBlocks {
		condition := block.Condition

		switch condition.(type) {
		case *ast.Assignment, *ast.CallStatement:
			v.ctx.push(diagnostic.NewInvalidCaseCondition(condition.Pos()))
		}

		value, err := v.ctx.Evaluator.Evaluate(condition, v.ctx.Qualifier, v.ctx.Index)
		if err != nil {
			v.ctx.push(diagnostic.NewNonConstantCaseCondition(err.Error(), condition.Pos()))
		} else if lit, ok := value.(*ast.LiteralInteger); ok {
			if seen[lit.Value] {
				v.ctx.push(diagnostic.NewDuplicateCaseCondition(lit.Value, condition.Pos()))
			} else {
				seen[lit.Value] = true
			}
		}
		// Other value kinds (bools, non-constant-foldable expressions
		// that still evaluated without error) are silently dropped from
		// duplicate tracking -- extending this to non-integer constants
		// is left for later.

		v.Visit(condition)
		for _, s := range block.Body {
			v.Visit(s)
		}
	}

	for _, s := range elseBlock {
		v.Visit(s)
	}
}
