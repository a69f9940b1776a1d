package ast

import "encoding/json"

// ContractDefinition is a contract, library, or interface definition node.
type ContractDefinition struct {
	NodeInfo
	Name                    string                  `json:"name"`
	NameLocation            *string                 `json:"nameLocation,omitempty"`
	Kind                    ContractKind            `json:"contractKind"`
	Abstract                bool                    `json:"abstract"`
	FullyImplemented        bool                    `json:"fullyImplemented"`
	LinearizedBaseContracts []int64                 `json:"linearizedBaseContracts"`
	BaseContracts           []*InheritanceSpecifier `json:"baseContracts,omitempty"`
	CanonicalName           *string                 `json:"canonicalName,omitempty"`
	ContractDependencies    []int64                 `json:"contractDependencies,omitempty"`
	UsedErrors              []int64                 `json:"usedErrors,omitempty"`
	UsedEvents              []int64                 `json:"usedEvents,omitempty"`
	Scope                   *int64                  `json:"scope,omitempty"`
	Documentation           *Documentation          `json:"documentation,omitempty"`
	Nodes                   []Node                  `json:"nodes"`
}

// UnmarshalJSON decodes the contract definition, dispatching its member nodes on
// their discriminants.
func (c *ContractDefinition) UnmarshalJSON(data []byte) error {
	type alias ContractDefinition
	aux := &struct {
		// Some compiler versions spell these flags as 0/1.
		Abstract         looseBool         `json:"abstract"`
		FullyImplemented looseBool         `json:"fullyImplemented"`
		Nodes            []json.RawMessage `json:"nodes"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	c.Abstract = bool(aux.Abstract)
	c.FullyImplemented = bool(aux.FullyImplemented)

	nodes, err := decodeNodeList(aux.Nodes)
	if err != nil {
		return err
	}
	c.Nodes = nodes
	return nil
}

// FunctionDefinition is a function, constructor, receive, fallback, or free function
// definition node.
type FunctionDefinition struct {
	NodeInfo
	Name             string                `json:"name"`
	NameLocation     *string               `json:"nameLocation,omitempty"`
	Kind             FunctionKind          `json:"kind"`
	Virtual          bool                  `json:"virtual"`
	Visibility       Visibility            `json:"visibility"`
	StateMutability  StateMutability       `json:"stateMutability"`
	Parameters       ParameterList         `json:"parameters"`
	ReturnParameters ParameterList         `json:"returnParameters"`
	Modifiers        []*ModifierInvocation `json:"modifiers"`
	Body             *Block                `json:"body,omitempty"`
	Overrides        *OverrideSpecifier    `json:"overrides,omitempty"`
	BaseFunctions    []int64               `json:"baseFunctions,omitempty"`
	FunctionSelector *string               `json:"functionSelector,omitempty"`
	Implemented      bool                  `json:"implemented"`
	Scope            int64                 `json:"scope"`
	Documentation    *Documentation        `json:"documentation,omitempty"`
}

// ModifierDefinition is a modifier definition node.
type ModifierDefinition struct {
	NodeInfo
	Name          string             `json:"name"`
	NameLocation  *string            `json:"nameLocation,omitempty"`
	Virtual       bool               `json:"virtual"`
	Visibility    Visibility         `json:"visibility"`
	Parameters    ParameterList      `json:"parameters"`
	Body          *Block             `json:"body,omitempty"`
	Overrides     *OverrideSpecifier `json:"overrides,omitempty"`
	Scope         *int64             `json:"scope,omitempty"`
	Documentation *Documentation     `json:"documentation,omitempty"`
}

// VariableDeclaration is a state variable, parameter, or local variable declaration
// node.
type VariableDeclaration struct {
	NodeInfo
	Name             string             `json:"name"`
	NameLocation     *string            `json:"nameLocation,omitempty"`
	TypeName         TypeName           `json:"typeName,omitempty"`
	Visibility       Visibility         `json:"visibility"`
	StateMutability  *StateMutability   `json:"stateMutability,omitempty"`
	Mutability       *Mutability        `json:"mutability,omitempty"`
	StateVariable    *bool              `json:"stateVariable,omitempty"`
	StorageLocation  *StorageLocation   `json:"storageLocation,omitempty"`
	Constant         *bool              `json:"constant,omitempty"`
	Immutable        *bool              `json:"immutable,omitempty"`
	Indexed          *bool              `json:"indexed,omitempty"`
	Value            Expression         `json:"value,omitempty"`
	Overrides        *OverrideSpecifier `json:"overrides,omitempty"`
	Scope            *int64             `json:"scope,omitempty"`
	TypeDescriptions TypeDescriptions   `json:"typeDescriptions"`
	Documentation    *Documentation     `json:"documentation,omitempty"`
}

// UnmarshalJSON decodes the declaration, dispatching its type name and initializer.
func (v *VariableDeclaration) UnmarshalJSON(data []byte) error {
	type alias VariableDeclaration
	aux := &struct {
		TypeName json.RawMessage `json:"typeName"`
		Value    json.RawMessage `json:"value"`
		*alias
	}{alias: (*alias)(v)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if v.TypeName, err = decodeOptionalTypeName(aux.TypeName); err != nil {
		return err
	}
	if v.Value, err = decodeOptionalExpression(aux.Value); err != nil {
		return err
	}
	return nil
}

// StructDefinition is a struct definition node.
type StructDefinition struct {
	NodeInfo
	Name          string                 `json:"name"`
	NameLocation  *string                `json:"nameLocation,omitempty"`
	CanonicalName *string                `json:"canonicalName,omitempty"`
	Members       []*VariableDeclaration `json:"members"`
	Visibility    *Visibility            `json:"visibility,omitempty"`
	UsedInEvents  *bool                  `json:"usedInEvents,omitempty"`
	Scope         *int64                 `json:"scope,omitempty"`
	Documentation *Documentation         `json:"documentation,omitempty"`
}

// EnumDefinition is an enum definition node.
type EnumDefinition struct {
	NodeInfo
	Name          string         `json:"name"`
	NameLocation  *string        `json:"nameLocation,omitempty"`
	CanonicalName *string        `json:"canonicalName,omitempty"`
	Members       []*EnumValue   `json:"members"`
	Scope         *int64         `json:"scope,omitempty"`
	Documentation *Documentation `json:"documentation,omitempty"`
}

// EnumValue is a single member of an enum definition.
type EnumValue struct {
	NodeInfo
	Name         string `json:"name"`
	NameLocation string `json:"nameLocation"`
}

// ErrorDefinition is a custom error definition node.
type ErrorDefinition struct {
	NodeInfo
	Name          string         `json:"name"`
	NameLocation  *string        `json:"nameLocation,omitempty"`
	Parameters    ParameterList  `json:"parameters"`
	ErrorSelector *string        `json:"errorSelector,omitempty"`
	Scope         *int64         `json:"scope,omitempty"`
	Documentation *Documentation `json:"documentation,omitempty"`
}

// EventDefinition is an event definition node.
type EventDefinition struct {
	NodeInfo
	Name          string         `json:"name"`
	NameLocation  *string        `json:"nameLocation,omitempty"`
	Anonymous     bool           `json:"anonymous"`
	EventSelector *string        `json:"eventSelector,omitempty"`
	Parameters    ParameterList  `json:"parameters"`
	Scope         *int64         `json:"scope,omitempty"`
	Documentation *Documentation `json:"documentation,omitempty"`
}

// UserDefinedValueTypeDefinition is a user defined value type definition node
// ("type Price is uint128").
type UserDefinedValueTypeDefinition struct {
	NodeInfo
	Name           string   `json:"name"`
	NameLocation   *string  `json:"nameLocation,omitempty"`
	CanonicalName  *string  `json:"canonicalName,omitempty"`
	UnderlyingType TypeName `json:"underlyingType"`
}

// UnmarshalJSON decodes the definition, dispatching its underlying type name.
func (u *UserDefinedValueTypeDefinition) UnmarshalJSON(data []byte) error {
	type alias UserDefinedValueTypeDefinition
	aux := &struct {
		UnderlyingType json.RawMessage `json:"underlyingType"`
		*alias
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	u.UnderlyingType, err = decodeOptionalTypeName(aux.UnderlyingType)
	return err
}

// UsingForDirective is a "using X for Y" directive node.
type UsingForDirective struct {
	NodeInfo
	LibraryName *IdentifierPath      `json:"libraryName,omitempty"`
	TypeName    *UserDefinedTypeName `json:"typeName,omitempty"`
	Operations  []string             `json:"operations,omitempty"`
	Global      *bool                `json:"global,omitempty"`
	Scope       *int64               `json:"scope,omitempty"`
}

// ImportDirective is an import directive node.
type ImportDirective struct {
	NodeInfo
	AbsolutePath  string        `json:"absolutePath"`
	File          string        `json:"file"`
	NameLocation  *string       `json:"nameLocation,omitempty"`
	UnitAlias     *string       `json:"unitAlias,omitempty"`
	SymbolAliases []SymbolAlias `json:"symbolAliases,omitempty"`
	// SourceUnit is the id of the imported source unit node, a back reference.
	SourceUnit *int64 `json:"sourceUnit,omitempty"`
	Scope      *int64 `json:"scope,omitempty"`
}

// PragmaDirective is a pragma directive node. The compiler tokenizes the pragma text
// into a literal list (e.g. ["solidity", "^", "0.8", ".24"]).
type PragmaDirective struct {
	NodeInfo
	Literals []string `json:"literals"`
}

// ParameterList groups the ordered parameter declarations of a function, modifier,
// event, or error.
type ParameterList struct {
	NodeInfo
	Parameters []*VariableDeclaration `json:"parameters"`
}

// InheritanceSpecifier names one base contract of a contract definition, optionally
// with constructor arguments.
type InheritanceSpecifier struct {
	NodeInfo
	BaseName  IdentifierPath `json:"baseName"`
	Arguments []Expression   `json:"arguments,omitempty"`
}

// UnmarshalJSON decodes the specifier, dispatching its constructor arguments.
func (i *InheritanceSpecifier) UnmarshalJSON(data []byte) error {
	type alias InheritanceSpecifier
	aux := &struct {
		Arguments []json.RawMessage `json:"arguments"`
		*alias
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	arguments, err := decodeExpressionList(aux.Arguments)
	if err != nil {
		return err
	}
	i.Arguments = arguments
	return nil
}

// OverrideSpecifier is an "override" or "override(Base, ...)" specifier node.
type OverrideSpecifier struct {
	NodeInfo
	Overrides []*IdentifierPath `json:"overrides,omitempty"`
}

// ModifierInvocation is one entry of a function definition's modifier list, either a
// plain modifier invocation or a base constructor call.
type ModifierInvocation struct {
	NodeInfo
	Kind         *ModifierInvocationKind `json:"kind,omitempty"`
	ModifierName IdentifierPath          `json:"modifierName"`
	Arguments    []Expression            `json:"arguments,omitempty"`
}

// UnmarshalJSON decodes the invocation, dispatching its arguments.
func (m *ModifierInvocation) UnmarshalJSON(data []byte) error {
	type alias ModifierInvocation
	aux := &struct {
		Arguments []json.RawMessage `json:"arguments"`
		*alias
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	arguments, err := decodeExpressionList(aux.Arguments)
	if err != nil {
		return err
	}
	m.Arguments = arguments
	return nil
}
