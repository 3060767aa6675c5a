package validation

import (
	"github.com/stvalidate/stvalidate/internal/ast"
	"github.com/stvalidate/stvalidate/internal/diagnostic"
)

// Validator is the visitor core. It holds no state of its own beyond the
// ValidationContext it was constructed with -- every rule is a pure function
// of (statement, context).
type Validator struct {
	ctx *ValidationContext
}

// New constructs a Validator over ctx. Since the Validator carries no state
// besides ctx, it may visit any number of trees; every traversal appends its
// diagnostics to ctx's sink.
func New(ctx *ValidationContext) *Validator {
	return &Validator{ctx: ctx}
}

// Visit is the single traversal entry point. It recurses depth-first: a
// node with both children and a rule of its own (binary/unary expressions,
// assignments, array accesses, qualified references) visits its children
// left to right before running that rule, and validateTypeNature runs
// unconditionally on exit from every node. There is no memoization;
// unknown/literal leaves have no rule body but still pass through
// type-nature validation.
func (v *Validator) Visit(stmt ast.Statement) {
	if stmt == nil {
		return
	}

	switch s := stmt.(type) {
	case *ast.LiteralArray:
		if s.Elements != nil {
			v.Visit(s.Elements)
		}
	case *ast.CastStatement:
		v.validateCastLiteral(s)
	case *ast.MultipliedStatement:
		v.Visit(s.Element)
	case *ast.QualifiedReference:
		for _, el := range s.Elements {
			v.Visit(el)
		}
		v.validateQualifiedReference(s.Elements)
	case *ast.Reference:
		v.validateReference(s, s.Name)
	case *ast.ArrayAccess:
		v.Visit(s.Reference)
		v.Visit(s.Access)
		v.visitArrayAccess(s.Reference, s.Access)
	case *ast.BinaryExpression:
		v.Visit(s.Left)
		v.Visit(s.Right)
		v.visitBinaryExpression(s, s.Operator, s.Left, s.Right)
	case *ast.UnaryExpression:
		v.Visit(s.Value)
		v.validateUnaryExpression(s.Operator, s.Value, s.Pos())
	case *ast.ExpressionList:
		for _, el := range s.Expressions {
			v.Visit(el)
		}
	case *ast.RangeStatement:
		v.Visit(s.Start)
		v.Visit(s.End)
	case *ast.Assignment:
		v.Visit(s.Left)
		v.Visit(s.Right)
		v.validateAssignment(s.Right, s.Left, s.Pos())
	case *ast.OutputAssignment:
		v.Visit(s.Left)
		v.Visit(s.Right)
		v.validateAssignment(s.Right, s.Left, s.Pos())
	case *ast.CallStatement:
		v.validateCall(s.Operator, s.Parameters)
	case *ast.IfStatement:
		for _, b := range s.Blocks {
			v.Visit(b.Condition)
			for _, st := range b.Body {
				v.Visit(st)
			}
		}
		for _, st := range s.ElseBlock {
			v.Visit(st)
		}
	case *ast.ForLoopStatement:
		v.Visit(s.Counter)
		v.Visit(s.Start)
		v.Visit(s.End)
		if s.ByStep != nil {
			v.Visit(s.ByStep)
		}
		for _, st := range s.Body {
			v.Visit(st)
		}
	case *ast.WhileLoopStatement:
		v.Visit(s.Condition)
		for _, st := range s.Body {
			v.Visit(st)
		}
	case *ast.RepeatLoopStatement:
		v.Visit(s.Condition)
		for _, st := range s.Body {
			v.Visit(st)
		}
	case *ast.CaseStatement:
		v.validateCaseStatement(s.Selector, s.CaseBlocks, s.ElseBlock)
	case *ast.CaseCondition:
		// Reaching here means a CaseCondition leaked outside of a
		// CaseStatement's CaseBlocks -- it's a marker node, not a real
		// statement shape.
		v.ctx.push(diagnostic.NewCaseConditionOutsideCaseStatement(s.Condition.Pos()))
		v.Visit(s.Condition)
	default:
		// Literal leaves (LiteralInteger, LiteralReal, ...), Exit,
		// Continue, Return, Empty, HardwareAccess, PointerAccess,
		// DirectAccess: no local rule body, fall through to type-nature
		// validation below.
	}

	v.validateTypeNature(stmt)
}
