package diagnostic

import (
	"fmt"
	"strconv"

	"github.com/stvalidate/stvalidate/internal/source"
	"github.com/stvalidate/stvalidate/internal/typesystem"
)

// One constructor per diagnostic kind -- rule sites never build a
// Diagnostic literal by hand.

func NewUnresolvedReference(name string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: UnresolvedReference, Primary: loc, Args: []string{name}}
}

func NewIllegalAccess(qualifiedName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IllegalAccess, Primary: loc, Args: []string{qualifiedName}}
}

func NewReferenceExpected(loc source.Range) Diagnostic {
	return Diagnostic{Kind: ReferenceExpected, Primary: loc}
}

func NewCannotAssignToConstant(qualifiedName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: CannotAssignToConstant, Primary: loc, Args: []string{qualifiedName}}
}

func NewInvalidAssignment(rightName, leftName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: InvalidAssignment, Primary: loc, Args: []string{rightName, leftName}}
}

func NewIncompatibleTypeSize(typeName string, bits int, verb string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IncompatibleTypeSize, Primary: loc, Args: []string{typeName, strconv.Itoa(bits), verb}}
}

func NewImplicitDowncast(leftName, rightName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: ImplicitDowncast, Primary: loc, Args: []string{leftName, rightName}}
}

func NewInvalidOperation(message string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: InvalidOperation, Primary: loc, Args: []string{message}}
}

func NewInvalidArgumentType(paramName string, varType fmt.Stringer, loc source.Range) Diagnostic {
	return Diagnostic{Kind: InvalidArgumentType, Primary: loc, Args: []string{paramName, varType.String()}}
}

func NewInvalidParameterType(loc source.Range) Diagnostic {
	return Diagnostic{Kind: InvalidParameterType, Primary: loc}
}

func NewMissingInoutParameter(name string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: MissingInoutParameter, Primary: loc, Args: []string{name}}
}

func NewLiteralExpected(loc source.Range) Diagnostic {
	return Diagnostic{Kind: LiteralExpected, Primary: loc}
}

func NewLiteralOutOfRange(value, typeName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: LiteralOutOfRange, Primary: loc, Args: []string{value, typeName}}
}

func NewIncompatibleLiteralCast(castTypeName, literalTypeName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IncompatibleLiteralCast, Primary: loc, Args: []string{castTypeName, literalTypeName}}
}

func NewIncompatibleDirectAccess(access string, bitWidth int, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IncompatibleDirectAccess, Primary: loc, Args: []string{access, strconv.Itoa(bitWidth)}}
}

func NewIncompatibleDirectAccessRange(access, typeName string, dim typesystem.Dimension, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IncompatibleDirectAccessRange, Primary: loc, Args: []string{access, typeName, dimString(dim)}}
}

func NewIncompatibleDirectAccessVariable(typeName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IncompatibleDirectAccessVariable, Primary: loc, Args: []string{typeName}}
}

func NewIncompatibleArrayAccessVariable(typeName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IncompatibleArrayAccessVariable, Primary: loc, Args: []string{typeName}}
}

func NewIncompatibleArrayAccessType(typeName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IncompatibleArrayAccessType, Primary: loc, Args: []string{typeName}}
}

func NewIncompatibleArrayAccessRange(dim typesystem.Dimension, loc source.Range) Diagnostic {
	return Diagnostic{Kind: IncompatibleArrayAccessRange, Primary: loc, Args: []string{dimString(dim)}}
}

func NewMissingCompareFunction(expectedName, typeName string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: MissingCompareFunction, Primary: loc, Args: []string{expectedName, typeName}}
}

func NewInvalidCaseCondition(loc source.Range) Diagnostic {
	return Diagnostic{Kind: InvalidCaseCondition, Primary: loc}
}

func NewNonConstantCaseCondition(reason string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: NonConstantCaseCondition, Primary: loc, Args: []string{reason}}
}

func NewDuplicateCaseCondition(value int64, loc source.Range) Diagnostic {
	return Diagnostic{Kind: DuplicateCaseCondition, Primary: loc, Args: []string{strconv.FormatInt(value, 10)}}
}

func NewCaseConditionOutsideCaseStatement(loc source.Range) Diagnostic {
	return Diagnostic{Kind: CaseConditionOutsideCaseStatement, Primary: loc}
}

func NewUnresolvedGenericType(symbol, nature string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: UnresolvedGenericType, Primary: loc, Args: []string{symbol, nature}}
}

func NewInvalidTypeNature(actual, nature string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: InvalidTypeNature, Primary: loc, Args: []string{actual, nature}}
}

func NewSyntaxError(message string, loc source.Range) Diagnostic {
	return Diagnostic{Kind: SyntaxError, Primary: loc, Args: []string{message}}
}

func dimString(d typesystem.Dimension) string {
	if !d.Resolved {
		return "[?]"
	}
	return "[" + strconv.FormatInt(d.Start, 10) + ".." + strconv.FormatInt(d.End, 10) + "]"
}
