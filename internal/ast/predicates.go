package ast

import "strconv"

// CanBeAssignedTo reports whether stmt is l-value-shaped: the left side of an
// assignment, or the bound argument of an Output/InOut call parameter.
func CanBeAssignedTo(stmt Statement) bool {
	switch stmt.(type) {
	case *Reference, *QualifiedReference, *ArrayAccess, *PointerAccess, *DirectAccess:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether stmt is a literal value. Used to exempt literals
// from the implicit-downcast warning (numeric literals are re-typed by
// annotation to fit their target, so narrowing a literal is never lossy).
func IsLiteral(stmt Statement) bool {
	switch stmt.(type) {
	case *LiteralInteger, *LiteralReal, *LiteralBool, *LiteralString, *LiteralArray,
		*LiteralNull, *LiteralDate, *LiteralDateAndTime, *LiteralTimeOfDay, *LiteralTime:
		return true
	default:
		return false
	}
}

// IsCastPrefixEligible reports whether stmt may legally appear as the target
// of a `T#value` cast: any literal (so `CHAR#'x'` and `REAL#1.5` validate
// too, not just integers), or a reference-shaped expression (so
// `MyType#someConst` can be validated as well).
func IsCastPrefixEligible(stmt Statement) bool {
	return IsLiteral(stmt) || CanBeAssignedTo(stmt)
}

// GetLiteralValue renders the literal's source text the way diagnostics
// quote it -- strings keep their surrounding quote characters since several
// rules measure raw quoted length.
func GetLiteralValue(stmt Statement) string {
	switch s := stmt.(type) {
	case *LiteralInteger:
		return strconv.FormatInt(s.Value, 10)
	case *LiteralReal:
		return strconv.FormatFloat(s.Value, 'g', -1, 64)
	case *LiteralBool:
		return strconv.FormatBool(s.Value)
	case *LiteralString:
		if s.IsWide {
			return `"` + s.Value + `"`
		}
		return "'" + s.Value + "'"
	default:
		return ""
	}
}

// GetLiteralActualSignedTypeName returns the elementary integer type name a
// bare integer literal should be treated as for cast-literal validation, when
// wantSigned selects between the signed and unsigned literal family. Returns
// ok=false for anything that isn't an integer literal -- the caller falls
// back to the type hint / inferred type.
func GetLiteralActualSignedTypeName(stmt Statement, wantSigned bool) (name string, ok bool) {
	lit, isInt := stmt.(*LiteralInteger)
	if !isInt {
		return "", false
	}
	if wantSigned {
		return signedNameForValue(lit.Value), true
	}
	return unsignedNameForValue(lit.Value), true
}

func signedNameForValue(v int64) string {
	switch {
	case v >= -128 && v <= 127:
		return "SINT"
	case v >= -32768 && v <= 32767:
		return "INT"
	case v >= -2147483648 && v <= 2147483647:
		return "DINT"
	default:
		return "LINT"
	}
}

func unsignedNameForValue(v int64) string {
	switch {
	case v >= 0 && v <= 255:
		return "USINT"
	case v >= 0 && v <= 65535:
		return "UINT"
	case v >= 0 && v <= 4294967295:
		return "UDINT"
	default:
		return "ULINT"
	}
}

// FlattenExpressionList expands the comma-separated parameter list of a call
// into its individual argument expressions; a bare non-list expression
// flattens to a single-element slice, and a nil list flattens to none.
func FlattenExpressionList(stmt Statement) []Statement {
	if stmt == nil {
		return nil
	}
	if list, ok := stmt.(*ExpressionList); ok {
		return list.Expressions
	}
	return []Statement{stmt}
}
