package ast

import "encoding/json"

// expressionInfo holds the compiler-derived flags and type information common to
// every expression node.
type expressionInfo struct {
	IsConstant       bool                `json:"isConstant"`
	IsLValue         bool                `json:"isLValue"`
	IsPure           bool                `json:"isPure"`
	LValueRequested  bool                `json:"lValueRequested"`
	TypeDescriptions TypeDescriptions    `json:"typeDescriptions"`
	ArgumentTypes    []*TypeDescriptions `json:"argumentTypes,omitempty"`
}

// Assignment is an assignment expression node ("a = b", "a += b", ...).
type Assignment struct {
	NodeInfo
	Operator      string     `json:"operator"`
	LeftHandSide  Expression `json:"leftHandSide"`
	RightHandSide Expression `json:"rightHandSide"`
	expressionInfo
}

func (*Assignment) expressionNode() {}

func (a *Assignment) UnmarshalJSON(data []byte) error {
	type alias Assignment
	aux := &struct {
		LeftHandSide  json.RawMessage `json:"leftHandSide"`
		RightHandSide json.RawMessage `json:"rightHandSide"`
		*alias
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if a.LeftHandSide, err = decodeExpression(aux.LeftHandSide); err != nil {
		return err
	}
	if a.RightHandSide, err = decodeExpression(aux.RightHandSide); err != nil {
		return err
	}
	return nil
}

// BinaryOperation is a binary operation expression node.
type BinaryOperation struct {
	NodeInfo
	Operator        string     `json:"operator"`
	LeftExpression  Expression `json:"leftExpression"`
	RightExpression Expression `json:"rightExpression"`
	CommonType      CommonType `json:"commonType"`
	// Function is the id of the user-defined operator function, if the operator is
	// overloaded. A back reference.
	Function *int64 `json:"function,omitempty"`
	expressionInfo
}

func (*BinaryOperation) expressionNode() {}

func (b *BinaryOperation) UnmarshalJSON(data []byte) error {
	type alias BinaryOperation
	aux := &struct {
		LeftExpression  json.RawMessage `json:"leftExpression"`
		RightExpression json.RawMessage `json:"rightExpression"`
		*alias
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if b.LeftExpression, err = decodeExpression(aux.LeftExpression); err != nil {
		return err
	}
	if b.RightExpression, err = decodeExpression(aux.RightExpression); err != nil {
		return err
	}
	return nil
}

// UnaryOperation is a unary operation expression node.
type UnaryOperation struct {
	NodeInfo
	Operator      string     `json:"operator"`
	IsPrefix      bool       `json:"isPrefix"`
	SubExpression Expression `json:"subExpression"`
	Function      *int64     `json:"function,omitempty"`
	expressionInfo
}

func (*UnaryOperation) expressionNode() {}

func (u *UnaryOperation) UnmarshalJSON(data []byte) error {
	type alias UnaryOperation
	aux := &struct {
		SubExpression json.RawMessage `json:"subExpression"`
		// Some compiler versions spell the prefix flag "prefix". Encoding always
		// uses "isPrefix".
		Prefix *bool `json:"prefix"`
		*alias
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	if aux.Prefix != nil {
		u.IsPrefix = *aux.Prefix
	}

	var err error
	u.SubExpression, err = decodeExpression(aux.SubExpression)
	return err
}

// Conditional is a ternary conditional expression node.
type Conditional struct {
	NodeInfo
	Condition       Expression `json:"condition"`
	TrueExpression  Expression `json:"trueExpression"`
	FalseExpression Expression `json:"falseExpression"`
	expressionInfo
}

func (*Conditional) expressionNode() {}

func (c *Conditional) UnmarshalJSON(data []byte) error {
	type alias Conditional
	aux := &struct {
		Condition       json.RawMessage `json:"condition"`
		TrueExpression  json.RawMessage `json:"trueExpression"`
		FalseExpression json.RawMessage `json:"falseExpression"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if c.Condition, err = decodeExpression(aux.Condition); err != nil {
		return err
	}
	if c.TrueExpression, err = decodeExpression(aux.TrueExpression); err != nil {
		return err
	}
	if c.FalseExpression, err = decodeExpression(aux.FalseExpression); err != nil {
		return err
	}
	return nil
}

// FunctionCall is a function call, event emission target, struct constructor call, or
// type conversion expression node.
type FunctionCall struct {
	NodeInfo
	Expression    Expression   `json:"expression"`
	Arguments     []Expression `json:"arguments"`
	Names         []string     `json:"names"`
	NameLocations []string     `json:"nameLocations,omitempty"`
	Kind          string       `json:"kind"`
	TryCall       bool         `json:"tryCall"`
	expressionInfo
}

func (*FunctionCall) expressionNode() {}

func (f *FunctionCall) UnmarshalJSON(data []byte) error {
	type alias FunctionCall
	aux := &struct {
		Expression json.RawMessage   `json:"expression"`
		Arguments  []json.RawMessage `json:"arguments"`
		*alias
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if f.Expression, err = decodeExpression(aux.Expression); err != nil {
		return err
	}
	if f.Arguments, err = decodeExpressionList(aux.Arguments); err != nil {
		return err
	}
	return nil
}

// FunctionCallOptions is a call-option expression node ("f{value: 1, gas: g}").
type FunctionCallOptions struct {
	NodeInfo
	Expression    Expression   `json:"expression"`
	Names         []string     `json:"names"`
	NameLocations []string     `json:"nameLocations,omitempty"`
	Options       []Expression `json:"options"`
	expressionInfo
}

func (*FunctionCallOptions) expressionNode() {}

func (f *FunctionCallOptions) UnmarshalJSON(data []byte) error {
	type alias FunctionCallOptions
	aux := &struct {
		Expression json.RawMessage   `json:"expression"`
		Options    []json.RawMessage `json:"options"`
		*alias
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if f.Expression, err = decodeExpression(aux.Expression); err != nil {
		return err
	}
	if f.Options, err = decodeExpressionList(aux.Options); err != nil {
		return err
	}
	return nil
}

// IndexAccess is an index access expression node ("a[i]"). The index is absent for
// abstract type expressions like "uint[]".
type IndexAccess struct {
	NodeInfo
	BaseExpression  Expression `json:"baseExpression"`
	IndexExpression Expression `json:"indexExpression,omitempty"`
	expressionInfo
}

func (*IndexAccess) expressionNode() {}

func (i *IndexAccess) UnmarshalJSON(data []byte) error {
	type alias IndexAccess
	aux := &struct {
		BaseExpression  json.RawMessage `json:"baseExpression"`
		IndexExpression json.RawMessage `json:"indexExpression"`
		*alias
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if i.BaseExpression, err = decodeExpression(aux.BaseExpression); err != nil {
		return err
	}
	if i.IndexExpression, err = decodeOptionalExpression(aux.IndexExpression); err != nil {
		return err
	}
	return nil
}

// MemberAccess is a member access expression node ("a.b").
type MemberAccess struct {
	NodeInfo
	Expression     Expression `json:"expression"`
	MemberName     string     `json:"memberName"`
	MemberLocation *string    `json:"memberLocation,omitempty"`
	// ReferencedDeclaration is the id of the declaration the member resolves to, a
	// back reference. Absent for built-in members.
	ReferencedDeclaration *int64 `json:"referencedDeclaration,omitempty"`
	expressionInfo
}

func (*MemberAccess) expressionNode() {}

func (m *MemberAccess) UnmarshalJSON(data []byte) error {
	type alias MemberAccess
	aux := &struct {
		Expression json.RawMessage `json:"expression"`
		*alias
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	m.Expression, err = decodeExpression(aux.Expression)
	return err
}

// NewExpression is a "new T" expression node.
type NewExpression struct {
	NodeInfo
	TypeName TypeName `json:"typeName"`
	expressionInfo
}

func (*NewExpression) expressionNode() {}

func (n *NewExpression) UnmarshalJSON(data []byte) error {
	type alias NewExpression
	aux := &struct {
		TypeName json.RawMessage `json:"typeName"`
		*alias
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	n.TypeName, err = decodeTypeName(aux.TypeName)
	return err
}

// TupleExpression is a tuple or inline array expression node. Omitted components
// ("(, b)") decode to nil entries.
type TupleExpression struct {
	NodeInfo
	Components    []Expression `json:"components"`
	IsInlineArray bool         `json:"isInlineArray"`
	expressionInfo
}

func (*TupleExpression) expressionNode() {}

func (t *TupleExpression) UnmarshalJSON(data []byte) error {
	type alias TupleExpression
	aux := &struct {
		Components []json.RawMessage `json:"components"`
		*alias
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	components, err := decodeExpressionList(aux.Components)
	if err != nil {
		return err
	}
	t.Components = components
	return nil
}

// Literal is a literal expression node. The value is carried verbatim as the
// compiler's string rendering; see SubdenominatedValue for scaling helpers.
type Literal struct {
	NodeInfo
	Kind            LiteralKind `json:"kind"`
	Value           string      `json:"value"`
	HexValue        *string     `json:"hexValue,omitempty"`
	Subdenomination *string     `json:"subdenomination,omitempty"`
	FormattedValue  *string     `json:"formattedValue,omitempty"`
	expressionInfo
}

func (*Literal) expressionNode() {}

// Identifier is a name reference expression node.
type Identifier struct {
	NodeInfo
	Name string `json:"name"`
	// ReferencedDeclaration is the id of the declaration the name resolves to, a
	// back reference. Absent for built-in identifiers.
	ReferencedDeclaration  *int64  `json:"referencedDeclaration,omitempty"`
	OverloadedDeclarations []int64 `json:"overloadedDeclarations,omitempty"`
	expressionInfo
}

func (*Identifier) expressionNode() {}

// IdentifierPath is a possibly-qualified name node ("Base.Struct") used in type and
// inheritance positions.
type IdentifierPath struct {
	NodeInfo
	Name                  string   `json:"name"`
	NameLocations         []string `json:"nameLocations,omitempty"`
	ReferencedDeclaration *int64   `json:"referencedDeclaration,omitempty"`
}

func (*IdentifierPath) expressionNode() {}

// ElementaryTypeNameExpression is an elementary type name used in expression
// position, e.g. the target of a conversion like "uint256(x)".
type ElementaryTypeNameExpression struct {
	NodeInfo
	TypeName ElementaryTypeName `json:"typeName"`
	expressionInfo
}

func (*ElementaryTypeNameExpression) expressionNode() {}
