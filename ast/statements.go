package ast

import "encoding/json"

// Block is a braced statement list node.
type Block struct {
	NodeInfo
	Statements []Statement `json:"statements"`
}

func (*Block) statementNode() {}

// UnmarshalJSON decodes the block, dispatching each statement on its discriminant.
func (b *Block) UnmarshalJSON(data []byte) error {
	type alias Block
	aux := &struct {
		Statements []json.RawMessage `json:"statements"`
		*alias
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	statements, err := decodeStatementList(aux.Statements)
	if err != nil {
		return err
	}
	b.Statements = statements
	return nil
}

// UncheckedBlock is an "unchecked { ... }" block node.
type UncheckedBlock struct {
	NodeInfo
	Statements []Statement `json:"statements"`
}

func (*UncheckedBlock) statementNode() {}

func (b *UncheckedBlock) UnmarshalJSON(data []byte) error {
	type alias UncheckedBlock
	aux := &struct {
		Statements []json.RawMessage `json:"statements"`
		*alias
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	statements, err := decodeStatementList(aux.Statements)
	if err != nil {
		return err
	}
	b.Statements = statements
	return nil
}

// IfStatement is an if statement node with an optional else branch.
type IfStatement struct {
	NodeInfo
	Condition Expression `json:"condition"`
	TrueBody  Statement  `json:"trueBody"`
	FalseBody Statement  `json:"falseBody,omitempty"`
}

func (*IfStatement) statementNode() {}

func (i *IfStatement) UnmarshalJSON(data []byte) error {
	type alias IfStatement
	aux := &struct {
		Condition json.RawMessage `json:"condition"`
		TrueBody  json.RawMessage `json:"trueBody"`
		FalseBody json.RawMessage `json:"falseBody"`
		*alias
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if i.Condition, err = decodeExpression(aux.Condition); err != nil {
		return err
	}
	if i.TrueBody, err = decodeStatement(aux.TrueBody); err != nil {
		return err
	}
	if i.FalseBody, err = decodeOptionalStatement(aux.FalseBody); err != nil {
		return err
	}
	return nil
}

// ForStatement is a for loop node. All three header clauses are optional.
type ForStatement struct {
	NodeInfo
	InitializationExpression Statement  `json:"initializationExpression,omitempty"`
	Condition                Expression `json:"condition,omitempty"`
	LoopExpression           Statement  `json:"loopExpression,omitempty"`
	Body                     Statement  `json:"body"`
	IsSimpleCounterLoop      *bool      `json:"isSimpleCounterLoop,omitempty"`
}

func (*ForStatement) statementNode() {}

func (f *ForStatement) UnmarshalJSON(data []byte) error {
	type alias ForStatement
	aux := &struct {
		InitializationExpression json.RawMessage `json:"initializationExpression"`
		Condition                json.RawMessage `json:"condition"`
		LoopExpression           json.RawMessage `json:"loopExpression"`
		Body                     json.RawMessage `json:"body"`
		*alias
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if f.InitializationExpression, err = decodeOptionalStatement(aux.InitializationExpression); err != nil {
		return err
	}
	if f.Condition, err = decodeOptionalExpression(aux.Condition); err != nil {
		return err
	}
	if f.LoopExpression, err = decodeOptionalStatement(aux.LoopExpression); err != nil {
		return err
	}
	if f.Body, err = decodeStatement(aux.Body); err != nil {
		return err
	}
	return nil
}

// WhileStatement is a while loop node.
type WhileStatement struct {
	NodeInfo
	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func (*WhileStatement) statementNode() {}

func (w *WhileStatement) UnmarshalJSON(data []byte) error {
	type alias WhileStatement
	aux := &struct {
		Condition json.RawMessage `json:"condition"`
		Body      json.RawMessage `json:"body"`
		*alias
	}{alias: (*alias)(w)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if w.Condition, err = decodeExpression(aux.Condition); err != nil {
		return err
	}
	if w.Body, err = decodeStatement(aux.Body); err != nil {
		return err
	}
	return nil
}

// DoWhileStatement is a do-while loop node.
type DoWhileStatement struct {
	NodeInfo
	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func (*DoWhileStatement) statementNode() {}

func (d *DoWhileStatement) UnmarshalJSON(data []byte) error {
	type alias DoWhileStatement
	aux := &struct {
		Condition json.RawMessage `json:"condition"`
		Body      json.RawMessage `json:"body"`
		*alias
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if d.Condition, err = decodeExpression(aux.Condition); err != nil {
		return err
	}
	if d.Body, err = decodeStatement(aux.Body); err != nil {
		return err
	}
	return nil
}

// Return is a return statement node.
type Return struct {
	NodeInfo
	// FunctionReturnParameters is the id of the enclosing function's return
	// ParameterList node, a back reference.
	FunctionReturnParameters int64      `json:"functionReturnParameters"`
	Expression               Expression `json:"expression,omitempty"`
}

func (*Return) statementNode() {}

func (r *Return) UnmarshalJSON(data []byte) error {
	type alias Return
	aux := &struct {
		Expression json.RawMessage `json:"expression"`
		*alias
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	r.Expression, err = decodeOptionalExpression(aux.Expression)
	return err
}

// Break is a break statement node.
type Break struct {
	NodeInfo
}

func (*Break) statementNode() {}

// Continue is a continue statement node.
type Continue struct {
	NodeInfo
}

func (*Continue) statementNode() {}

// PlaceholderStatement is the "_" placeholder inside a modifier body.
type PlaceholderStatement struct {
	NodeInfo
}

func (*PlaceholderStatement) statementNode() {}

// EmitStatement is an emit statement node wrapping the emitted event call.
type EmitStatement struct {
	NodeInfo
	EventCall FunctionCall `json:"eventCall"`
}

func (*EmitStatement) statementNode() {}

// RevertStatement is a "revert CustomError(...)" statement node wrapping the error
// call.
type RevertStatement struct {
	NodeInfo
	ErrorCall FunctionCall `json:"errorCall"`
}

func (*RevertStatement) statementNode() {}

// TryStatement is a try/catch statement node.
type TryStatement struct {
	NodeInfo
	ExternalCall Expression        `json:"externalCall"`
	Clauses      []*TryCatchClause `json:"clauses"`
}

func (*TryStatement) statementNode() {}

func (t *TryStatement) UnmarshalJSON(data []byte) error {
	type alias TryStatement
	aux := &struct {
		ExternalCall json.RawMessage `json:"externalCall"`
		*alias
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	t.ExternalCall, err = decodeExpression(aux.ExternalCall)
	return err
}

// TryCatchClause is one success or catch clause of a try statement.
type TryCatchClause struct {
	NodeInfo
	Kind       string         `json:"kind,omitempty"`
	ErrorName  string         `json:"errorName"`
	Parameters *ParameterList `json:"parameters,omitempty"`
	Block      Block          `json:"block"`
}

// ExpressionStatement is a statement consisting of a single expression.
type ExpressionStatement struct {
	NodeInfo
	Expression Expression `json:"expression"`
}

func (*ExpressionStatement) statementNode() {}

func (e *ExpressionStatement) UnmarshalJSON(data []byte) error {
	type alias ExpressionStatement
	aux := &struct {
		Expression json.RawMessage `json:"expression"`
		*alias
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	e.Expression, err = decodeExpression(aux.Expression)
	return err
}

// VariableDeclarationStatement is a local variable declaration statement node,
// possibly declaring a tuple with omitted components.
type VariableDeclarationStatement struct {
	NodeInfo
	// Assignments lists the declared variables' ids in tuple position order, with
	// nil entries for omitted components.
	Assignments  []*int64               `json:"assignments"`
	Declarations []*VariableDeclaration `json:"declarations"`
	InitialValue Expression             `json:"initialValue,omitempty"`
}

func (*VariableDeclarationStatement) statementNode() {}

func (v *VariableDeclarationStatement) UnmarshalJSON(data []byte) error {
	type alias VariableDeclarationStatement
	aux := &struct {
		InitialValue json.RawMessage `json:"initialValue"`
		*alias
	}{alias: (*alias)(v)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	v.InitialValue, err = decodeOptionalExpression(aux.InitialValue)
	return err
}

// InlineAssembly is an inline assembly block node. The Yul operations are carried as
// raw JSON; this model does not decode the Yul AST.
type InlineAssembly struct {
	NodeInfo
	AST                json.RawMessage     `json:"AST,omitempty"`
	Operations         *string             `json:"operations,omitempty"`
	ExternalReferences []ExternalReference `json:"externalReferences,omitempty"`
	EVMVersion         *string             `json:"evmVersion,omitempty"`
	Flags              []string            `json:"flags,omitempty"`
	Documentation      *Documentation      `json:"documentation,omitempty"`
}

// UnmarshalJSON decodes the inline assembly block, compacting the raw Yul payload so
// the decoded value survives re-encoding unchanged.
func (a *InlineAssembly) UnmarshalJSON(data []byte) error {
	type alias InlineAssembly
	if err := json.Unmarshal(data, (*alias)(a)); err != nil {
		return err
	}

	if a.AST != nil {
		compacted, err := compactRawJSON(a.AST)
		if err != nil {
			return err
		}
		a.AST = compacted
	}
	return nil
}

func (*InlineAssembly) statementNode() {}
