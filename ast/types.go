package ast

import "encoding/json"

// ElementaryTypeName is an elementary type name node. The name itself is decoded
// through ElementaryType, so malformed spellings are rejected at parse time.
type ElementaryTypeName struct {
	NodeInfo
	Name ElementaryType `json:"name"`
	// StateMutability is only emitted for address types ("payable" on "address
	// payable").
	StateMutability  *StateMutability `json:"stateMutability,omitempty"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

func (*ElementaryTypeName) typeNameNode() {}

// ArrayTypeName is an array type name node. The length is absent for dynamic
// arrays.
type ArrayTypeName struct {
	NodeInfo
	BaseType         TypeName         `json:"baseType"`
	Length           Expression       `json:"length,omitempty"`
	TypeDescriptions TypeDescriptions `json:"typeDescriptions"`
}

func (*ArrayTypeName) typeNameNode() {}

func (a *ArrayTypeName) UnmarshalJSON(data []byte) error {
	type alias ArrayTypeName
	aux := &struct {
		BaseType json.RawMessage `json:"baseType"`
		Length   json.RawMessage `json:"length"`
		*alias
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if a.BaseType, err = decodeTypeName(aux.BaseType); err != nil {
		return err
	}
	if a.Length, err = decodeOptionalExpression(aux.Length); err != nil {
		return err
	}
	return nil
}

// Mapping is a mapping type name node.
type Mapping struct {
	NodeInfo
	KeyType           TypeName         `json:"keyType"`
	ValueType         TypeName         `json:"valueType"`
	KeyName           *string          `json:"keyName,omitempty"`
	KeyNameLocation   *string          `json:"keyNameLocation,omitempty"`
	ValueName         *string          `json:"valueName,omitempty"`
	ValueNameLocation *string          `json:"valueNameLocation,omitempty"`
	TypeDescriptions  TypeDescriptions `json:"typeDescriptions"`
}

func (*Mapping) typeNameNode() {}

func (m *Mapping) UnmarshalJSON(data []byte) error {
	type alias Mapping
	aux := &struct {
		KeyType   json.RawMessage `json:"keyType"`
		ValueType json.RawMessage `json:"valueType"`
		*alias
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if m.KeyType, err = decodeTypeName(aux.KeyType); err != nil {
		return err
	}
	if m.ValueType, err = decodeTypeName(aux.ValueType); err != nil {
		return err
	}
	return nil
}

// FunctionTypeName is a function type name node ("function(uint) external returns
// (bool)").
type FunctionTypeName struct {
	NodeInfo
	ParameterTypes       ParameterList    `json:"parameterTypes"`
	ReturnParameterTypes ParameterList    `json:"returnParameterTypes"`
	Visibility           Visibility       `json:"visibility"`
	StateMutability      StateMutability  `json:"stateMutability"`
	TypeDescriptions     TypeDescriptions `json:"typeDescriptions"`
}

func (*FunctionTypeName) typeNameNode() {}

// UserDefinedTypeName is a type name node referring to a contract, struct, enum, or
// user defined value type.
type UserDefinedTypeName struct {
	NodeInfo
	PathNode *IdentifierPath `json:"pathNode,omitempty"`
	// Name is the flat spelling older compilers emit instead of a path node.
	Name *string `json:"name,omitempty"`
	// ReferencedDeclaration is the id of the referenced definition node, a back
	// reference.
	ReferencedDeclaration *int64           `json:"referencedDeclaration,omitempty"`
	TypeDescriptions      TypeDescriptions `json:"typeDescriptions"`
}

func (*UserDefinedTypeName) typeNameNode() {}
