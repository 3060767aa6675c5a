// Package constevaluator provides the best-effort compile-time evaluator the
// validator uses to detect duplicate case labels. It is
// intentionally weak: it never shares state with the validator and its
// failure is always a diagnostic, never fatal.
package constevaluator

import (
	"fmt"

	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/index"
)

// EvalError is returned when stmt could not be reduced to a compile-time
// constant.
type EvalError struct {
	Reason string
}

func (e *EvalError) Error() string { return e.Reason }

// ConstEvaluator reduces an expression to a literal, when possible.
// A nil result with a nil error means "evaluated successfully to a
// non-literal constant value" (e.g. a constant of aggregate type) that
// duplicate-detection has no use for.
type ConstEvaluator interface {
	Evaluate(stmt ast.Statement, qualifier string, idx index.Index) (ast.Statement, error)
}

// LiteralEvaluator folds the handful of constant-expression shapes needed to
// detect duplicate CASE labels: integer and boolean literals, negation of an
// integer literal, and integer +/-/* combinations of literals. Anything else is
// reported as non-constant -- it does not attempt symbolic constant lookup,
// since that requires the full interpreter the driver (out of scope) owns.
type LiteralEvaluator struct{}

func NewLiteralEvaluator() *LiteralEvaluator { return &LiteralEvaluator{} }

func (LiteralEvaluator) Evaluate(stmt ast.Statement, qualifier string, idx index.Index) (ast.Statement, error) {
	switch s := stmt.(type) {
	case *ast.LiteralInteger:
		return s, nil
	case *ast.LiteralBool:
		return s, nil
	case *ast.UnaryExpression:
		if s.Operator == ast.Minus {
			inner, err := (LiteralEvaluator{}).Evaluate(s.Value, qualifier, idx)
			if err != nil {
				return nil, err
			}
			if lit, ok := inner.(*ast.LiteralInteger); ok {
				return &ast.LiteralInteger{Value: -lit.Value}, nil
			}
		}
		return nil, &EvalError{Reason: fmt.Sprintf("cannot evaluate unary %s as a constant", s.Operator)}
	case *ast.BinaryExpression:
		left, lerr := (LiteralEvaluator{}).Evaluate(s.Left, qualifier, idx)
		if lerr != nil {
			return nil, lerr
		}
		right, rerr := (LiteralEvaluator{}).Evaluate(s.Right, qualifier, idx)
		if rerr != nil {
			return nil, rerr
		}
		ll, lok := left.(*ast.LiteralInteger)
		rl, rok := right.(*ast.LiteralInteger)
		if !lok || !rok {
			return nil, &EvalError{Reason: "non-integer operands in constant expression"}
		}
		switch s.Operator {
		case ast.Plus:
			return &ast.LiteralInteger{Value: ll.Value + rl.Value}, nil
		case ast.Minus:
			return &ast.LiteralInteger{Value: ll.Value - rl.Value}, nil
		case ast.Multiply:
			return &ast.LiteralInteger{Value: ll.Value * rl.Value}, nil
		default:
			return nil, &EvalError{Reason: fmt.Sprintf("operator %s is not constant-foldable", s.Operator)}
		}
	default:
		return nil, &EvalError{Reason: "expression is not a constant"}
	}
}
