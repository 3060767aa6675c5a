// Package typesystem describes the closed set of representational type
// shapes the validator reasons about, and the
// predicate methods every rule site shares instead of duplicating ad-hoc
// kind checks.
package typesystem

// Kind tags the representational shape of a Type.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindString
	KindChar
	KindPointer
	KindArray
	KindStruct
	KindEnum
	KindSubRange
	KindAlias
	KindGeneric
	KindVoid
)

// Encoding distinguishes single-byte from wide character/string storage.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16
)

// Nature is the category constraint attached to a generic parameter.
type Nature int

const (
	NatureAny Nature = iota
	NatureMagnitude
	NatureNum
	NatureInt
	NatureReal
	NatureUnsigned
	NatureSigned
	NatureBit
	NatureString
	NatureChar
	NatureElementary
	NatureDerived
)

func (n Nature) String() string {
	switch n {
	case NatureAny:
		return "Any"
	case NatureMagnitude:
		return "Magnitude"
	case NatureNum:
		return "Num"
	case NatureInt:
		return "Int"
	case NatureReal:
		return "Real"
	case NatureUnsigned:
		return "Unsigned"
	case NatureSigned:
		return "Signed"
	case NatureBit:
		return "Bit"
	case NatureString:
		return "String"
	case NatureChar:
		return "Char"
	case NatureElementary:
		return "Elementary"
	case NatureDerived:
		return "Derived"
	default:
		return "Unknown"
	}
}

// PointerSize is the process-wide minimum bit width a plain integer must
// have to hold a pointer.
const PointerSize = 64

// BoolTypeName is the canonical BOOL type name user-defined compare
// functions must return.
const BoolTypeName = "BOOL"

// Dimension is an array dimension `[start..end]`. A dimension whose range
// could not be resolved (post-resolve failure) is represented by Resolved
// being false; callers must fail soft rather than panicking.
type Dimension struct {
	Start    int64
	End      int64
	Resolved bool
}

// Type is the flattened DataType + DataTypeInformation pair: a named,
// representationally-tagged type description. Fields not relevant to Kind
// are zero.
type Type struct {
	Kind Kind
	Name string

	// Integer
	Signed   bool
	SizeBits int

	// String / Char
	Encoding   Encoding
	StringSize int

	// Pointer
	PointerInnerName string
	AutoDeref        bool

	// Array
	ArrayInnerName string
	Dimensions     []Dimension

	// Struct
	MemberNames []string

	// Enum
	EnumBase string

	// SubRange
	SubrangeHostName string
	SubrangeMin      int64
	SubrangeMax      int64
	// SemanticSizeBits is the subrange's own declared width, distinct from
	// its host's width (GetSemanticSize vs GetSizeInBits).
	SemanticSizeBits int

	// Alias
	AliasTargetName string

	// Generic
	GenericSymbol string
	GenericNature Nature
}

// Void is the synthetic type used whenever a node's real type could not be
// resolved; the validator reports an unresolved-reference diagnostic and
// keeps walking with this sentinel rather than panicking on a nil type.
var Void = &Type{Kind: KindVoid, Name: "VOID"}

func (t *Type) GetName() string {
	if t == nil {
		return Void.Name
	}
	return t.Name
}

func (t *Type) IsInt() bool {
	return t != nil && t.Kind == KindInteger
}

func (t *Type) IsFloat() bool {
	return t != nil && t.Kind == KindFloat
}

func (t *Type) IsNumerical() bool {
	return t.IsInt() || t.IsFloat()
}

// IsPointer reports whether t is a pointer, regardless of whether it is an
// auto-deref ByRef parameter pointer or an ordinary one.
func (t *Type) IsPointer() bool {
	return t != nil && t.Kind == KindPointer
}

func (t *Type) IsCharacter() bool {
	return t != nil && t.Kind == KindChar
}

func (t *Type) IsString() bool {
	return t != nil && t.Kind == KindString
}

// IsAggregate reports whether t is an array, struct or string -- the types
// that may only be assigned to another aggregate of the same class (barring
// the char/string-length-1 special case).
func (t *Type) IsAggregate() bool {
	if t == nil {
		return false
	}
	return t.Kind == KindArray || t.Kind == KindStruct || t.Kind == KindString
}

func (t *Type) IsDateOrTimeType() bool {
	if t == nil {
		return false
	}
	switch t.Name {
	case "DATE", "TIME", "DATE_AND_TIME", "DT", "TIME_OF_DAY", "TOD", "LTIME", "LDATE", "LDT", "LTOD":
		return true
	default:
		return false
	}
}

func (t *Type) IsUnsignedInt() bool {
	return t.IsInt() && !t.Signed
}

// IsCompatibleCharAndString reports whether one side is CHAR/WCHAR and the
// other is STRING/WSTRING -- the only cross-kind pair the char/string-len-1
// assignment rule allows.
func (t *Type) IsCompatibleCharAndString(other *Type) bool {
	if t == nil || other == nil {
		return false
	}
	return (t.IsCharacter() && other.IsString()) || (t.IsString() && other.IsCharacter())
}

// GetSizeInBits returns the representational width of t, resolving through
// the intrinsic type for subranges/aliases via idx.
func (t *Type) GetSizeInBits(idx SizeIndex) int {
	if t == nil {
		return 0
	}
	if t.Kind == KindSubRange && idx != nil {
		if host := idx.FindIntrinsicType(t); host != nil {
			return host.GetSizeInBits(idx)
		}
	}
	if t.Kind == KindAlias && idx != nil {
		if eff := idx.GetEffectiveTypeOrVoidByName(t.AliasTargetName); eff != nil {
			return eff.GetSizeInBits(idx)
		}
	}
	if t.Kind == KindPointer {
		return PointerSize
	}
	return t.SizeBits
}

// GetSemanticSize returns a subrange's own declared width rather than its
// host's width; for every other kind this is the same as GetSizeInBits.
func (t *Type) GetSemanticSize(idx SizeIndex) int {
	if t == nil {
		return 0
	}
	if t.Kind == KindSubRange && t.SemanticSizeBits > 0 {
		return t.SemanticSizeBits
	}
	return t.GetSizeInBits(idx)
}

// SizeIndex is the minimal index surface GetSizeInBits/GetSemanticSize need;
// index.Index satisfies it.
type SizeIndex interface {
	FindIntrinsicType(t *Type) *Type
	GetEffectiveTypeOrVoidByName(name string) *Type
}

// IsCompatibleWith is a broad compatibility pre-filter: it rules out
// categories that could never be made to agree (e.g. a struct and an
// integer), leaving the narrower isValidAssignment disqualifiers to reject
// the remaining specific mismatches.
func (t *Type) IsCompatibleWith(other *Type) bool {
	if t == nil || other == nil {
		return false
	}
	if t.Kind == other.Kind {
		return true
	}
	if t.IsNumerical() && other.IsNumerical() {
		return true
	}
	if t.IsPointer() || other.IsPointer() {
		return true
	}
	if t.IsCompatibleCharAndString(other) {
		return true
	}
	if t.IsAggregate() && other.IsAggregate() {
		return true
	}
	// Enums widen to their base integer type and vice versa.
	if t.Kind == KindEnum && other.IsInt() {
		return true
	}
	if other.Kind == KindEnum && t.IsInt() {
		return true
	}
	return false
}

// IsSameTypeClass reports whether a and b represent the "same" type for the
// purposes of pointer and aggregate assignment: same Kind and same Name.
// Named aggregate/pointer types never unify structurally in ST, only by
// declared identity.
func IsSameTypeClass(a, b *Type) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind == b.Kind && a.Name == b.Name
}

// HasNature reports whether t satisfies the generic nature constraint n.
func (t *Type) HasNature(n Nature, idx SizeIndex) bool {
	if t == nil {
		return n == NatureAny
	}
	switch n {
	case NatureAny:
		return true
	case NatureMagnitude:
		return t.IsNumerical() || t.IsDateOrTimeType()
	case NatureNum:
		return t.IsNumerical()
	case NatureInt:
		return t.IsInt()
	case NatureReal:
		return t.IsFloat()
	case NatureUnsigned:
		return t.IsUnsignedInt()
	case NatureSigned:
		return t.IsInt() && t.Signed
	case NatureBit:
		switch t.Name {
		case "BOOL", "BYTE", "WORD", "DWORD", "LWORD":
			return true
		default:
			return false
		}
	case NatureString:
		return t.IsString()
	case NatureChar:
		return t.IsCharacter()
	case NatureElementary:
		return !t.IsAggregate() && t.Kind != KindStruct
	case NatureDerived:
		return t.Kind == KindSubRange || t.Kind == KindAlias || t.Kind == KindEnum
	default:
		return false
	}
}

// GetEqualsFunctionNameFor derives the expected user-defined comparison
// function name for operator op over a value of type typeName. ST has no
// operator-overload syntax of its own for non-numeric equality; by
// convention it looks up a function named "<TYPE>_<OP>" returning BOOL.
func GetEqualsFunctionNameFor(typeName string, opName string) string {
	return typeName + "_" + opName
}
