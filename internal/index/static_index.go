package index

import "github.com/stvalidate/stvalidate/internal/typesystem"

// StaticIndex is a minimal in-memory Index used by validator tests and by
// the `stvalidate` CLI demo. Production builds construct their Index from
// the real symbol table produced by name resolution.
type StaticIndex struct {
	Pous       map[string]*Pou
	Params     map[string][]*VariableIndexEntry
	Members    map[string][]*VariableIndexEntry
	Types      map[string]*typesystem.Type
	Intrinsics map[string]*typesystem.Type // keyed by subrange/alias type name
}

// NewStaticIndex creates an empty index pre-populated with the elementary ST
// types every program can reference.
func NewStaticIndex() *StaticIndex {
	idx := &StaticIndex{
		Pous:       map[string]*Pou{},
		Params:     map[string][]*VariableIndexEntry{},
		Members:    map[string][]*VariableIndexEntry{},
		Types:      map[string]*typesystem.Type{},
		Intrinsics: map[string]*typesystem.Type{},
	}
	for _, t := range elementaryTypes() {
		idx.Types[t.Name] = t
	}
	return idx
}

func elementaryTypes() []*typesystem.Type {
	intT := func(name string, bits int, signed bool) *typesystem.Type {
		return &typesystem.Type{Kind: typesystem.KindInteger, Name: name, SizeBits: bits, Signed: signed}
	}
	return []*typesystem.Type{
		intT("SINT", 8, true), intT("INT", 16, true), intT("DINT", 32, true), intT("LINT", 64, true),
		intT("USINT", 8, false), intT("UINT", 16, false), intT("UDINT", 32, false), intT("ULINT", 64, false),
		intT("BYTE", 8, false), intT("WORD", 16, false), intT("DWORD", 32, false), intT("LWORD", 64, false),
		intT("BOOL", 1, false),
		{Kind: typesystem.KindFloat, Name: "REAL", SizeBits: 32},
		{Kind: typesystem.KindFloat, Name: "LREAL", SizeBits: 64},
		{Kind: typesystem.KindChar, Name: "CHAR", Encoding: typesystem.UTF8, SizeBits: 8},
		{Kind: typesystem.KindChar, Name: "WCHAR", Encoding: typesystem.UTF16, SizeBits: 16},
		{Kind: typesystem.KindString, Name: "STRING", Encoding: typesystem.UTF8, StringSize: 255},
		{Kind: typesystem.KindString, Name: "WSTRING", Encoding: typesystem.UTF16, StringSize: 255},
		{Kind: typesystem.KindVoid, Name: "VOID"},
	}
}

func (s *StaticIndex) FindPou(name string) (*Pou, bool) {
	p, ok := s.Pous[name]
	return p, ok
}

func (s *StaticIndex) GetDeclaredParameters(pouName string) []*VariableIndexEntry {
	return s.Params[pouName]
}

func (s *StaticIndex) FindPouImplementation(name string) (*Pou, bool) {
	return s.FindPou(name)
}

func (s *StaticIndex) GetPouMembers(typeName string) []*VariableIndexEntry {
	return s.Members[typeName]
}

func (s *StaticIndex) GetEffectiveTypeOrVoidByName(name string) *typesystem.Type {
	if t, ok := s.Types[name]; ok {
		// unwrap aliases to their target; subranges are returned as-is
		// (FindIntrinsicType maps them to their host)
		for t.Kind == typesystem.KindAlias {
			next, ok := s.Types[t.AliasTargetName]
			if !ok {
				break
			}
			t = next
		}
		return t
	}
	return typesystem.Void
}

func (s *StaticIndex) FindIntrinsicType(t *typesystem.Type) *typesystem.Type {
	if t == nil {
		return typesystem.Void
	}
	if t.Kind == typesystem.KindSubRange {
		if host, ok := s.Types[t.SubrangeHostName]; ok {
			return host
		}
	}
	if t.Kind == typesystem.KindAlias {
		return s.GetEffectiveTypeOrVoidByName(t.AliasTargetName)
	}
	return t
}

func (s *StaticIndex) FindElementaryPointerType(name string) *typesystem.Type {
	if t, ok := s.Types[name]; ok && t.Kind == typesystem.KindPointer {
		return t
	}
	return nil
}

func (s *StaticIndex) GetTypeInformationOrVoid(name string) *typesystem.Type {
	if t, ok := s.Types[name]; ok {
		return t
	}
	return typesystem.Void
}

// DefineType registers a user/elementary type.
func (s *StaticIndex) DefineType(t *typesystem.Type) { s.Types[t.Name] = t }

// DefinePou registers a POU along with its declared parameter list (in
// declaration order; LocationInParent should match each entry's index).
func (s *StaticIndex) DefinePou(p *Pou, params []*VariableIndexEntry) {
	s.Pous[p.Name] = p
	s.Params[p.Name] = params
	s.Members[p.Name] = params
}
