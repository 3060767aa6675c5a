// Package index describes the read-only symbol table the validator consults.
// The real index is built by name resolution, which is
// out of scope here; this package only defines the contract plus a small
// in-memory reference implementation used by tests and the CLI demo.
package index

import "github.com/stvalidate/stvalidate/internal/typesystem"

// VariableType is the declared role of a variable/parameter.
type VariableType int

const (
	In VariableType = iota
	Out
	InOut
	ReturnVar
	Local
	Global
	Temp
	External
)

func (v VariableType) String() string {
	switch v {
	case In:
		return "VAR_INPUT"
	case Out:
		return "VAR_OUTPUT"
	case InOut:
		return "VAR_IN_OUT"
	case ReturnVar:
		return "RETURN"
	case Local:
		return "VAR"
	case Global:
		return "VAR_GLOBAL"
	case Temp:
		return "VAR_TEMP"
	case External:
		return "VAR_EXTERNAL"
	default:
		return "?"
	}
}

// ArgumentType distinguishes by-value from by-reference parameter passing.
// ByRef parameters additionally carry the VariableType they bind as (Output
// and InOut parameters are always ByRef; Input is usually ByVal but may be
// declared ByRef explicitly).
type ArgumentType struct {
	ByRef bool
	Kind  VariableType
}

// VariableIndexEntry describes one declared variable or parameter slot.
type VariableIndexEntry struct {
	Name             string
	QualifiedName    string
	DataTypeName     string
	VariableType     VariableType
	ArgumentType     ArgumentType
	LocationInParent uint32
	IsConstant       bool
	IsPrivate        bool
}

func (v *VariableIndexEntry) GetName() string             { return v.Name }
func (v *VariableIndexEntry) GetVariableType() VariableType { return v.VariableType }

// PouKind distinguishes the POU variants.
type PouKind int

const (
	KindFunction PouKind = iota
	KindFunctionBlock
	KindProgram
	KindAction
	KindMethod
	KindClass
)

// Pou is one Program Organization Unit: a function, function block,
// program, action, method or class.
type Pou struct {
	Name string
	Kind PouKind
	// Container is the enclosing POU's name for actions/methods (used for
	// visibility checks); empty for top-level POUs.
	Container string
}

func (p *Pou) GetName() string      { return p.Name }
func (p *Pou) GetContainer() string { return p.Container }

// RequiresInOutBinding reports whether calling this POU requires every
// IN_OUT parameter to receive an explicit argument binding.
func (p *Pou) RequiresInOutBinding() bool {
	return p.Kind == KindFunctionBlock || p.Kind == KindProgram
}

// Index is the read-only symbol table surface the validator depends on.
type Index interface {
	FindPou(name string) (*Pou, bool)
	GetDeclaredParameters(pouName string) []*VariableIndexEntry
	FindPouImplementation(name string) (*Pou, bool)
	GetPouMembers(typeName string) []*VariableIndexEntry
	GetEffectiveTypeOrVoidByName(name string) *typesystem.Type
	FindIntrinsicType(t *typesystem.Type) *typesystem.Type
	FindElementaryPointerType(name string) *typesystem.Type
	GetTypeInformationOrVoid(name string) *typesystem.Type
}
