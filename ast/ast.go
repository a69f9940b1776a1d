// Package ast models the Solidity compiler's AST output as a closed set of typed
// nodes. Decoding dispatches on each object's nodeType discriminant and produces a
// faithful structural mirror of the input; encoding is the structural inverse. No
// tree rewriting or normalization is performed, and cross-node references such as
// referencedDeclaration are kept as bare integer ids rather than resolved.
package ast

import (
	"encoding/json"
)

// Node is implemented by every AST node emitted by the compiler.
type Node interface {
	// GetID returns the compiler-assigned node identifier. The model treats it as
	// opaque and does not re-validate global uniqueness.
	GetID() int64

	// GetNodeType returns the node's discriminant string.
	GetNodeType() string

	// GetSourceLocation returns the source range the node was parsed from.
	GetSourceLocation() SourceLocation
}

// Expression is implemented by nodes that may appear in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by nodes that may appear in statement position.
type Statement interface {
	Node
	statementNode()
}

// TypeName is implemented by nodes that may appear in type-name position.
type TypeName interface {
	Node
	typeNameNode()
}

// NodeInfo holds the fields common to every AST node: the compiler-assigned id, the
// nodeType discriminant, and the source range. Node structs embed it.
type NodeInfo struct {
	ID       int64          `json:"id"`
	NodeType string         `json:"nodeType"`
	Src      SourceLocation `json:"src"`
}

// GetID implements the Node interface.
func (n NodeInfo) GetID() int64 {
	return n.ID
}

// GetNodeType implements the Node interface.
func (n NodeInfo) GetNodeType() string {
	return n.NodeType
}

// GetSourceLocation implements the Node interface.
func (n NodeInfo) GetSourceLocation() SourceLocation {
	return n.Src
}

// SourceUnit is the root node of a compiled source file's AST.
type SourceUnit struct {
	NodeInfo
	AbsolutePath    string             `json:"absolutePath"`
	ExportedSymbols map[string][]int64 `json:"exportedSymbols,omitempty"`
	License         *string            `json:"license,omitempty"`
	Nodes           []Node             `json:"nodes"`
}

// UnmarshalJSON decodes the source unit, dispatching each top-level child node on its
// discriminant.
func (s *SourceUnit) UnmarshalJSON(data []byte) error {
	type alias SourceUnit
	aux := &struct {
		Nodes []json.RawMessage `json:"nodes"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	nodes, err := decodeNodeList(aux.Nodes)
	if err != nil {
		return err
	}
	s.Nodes = nodes
	return nil
}

// ParseSourceUnit decodes a complete AST document rooted at a SourceUnit node.
func ParseSourceUnit(data []byte) (*SourceUnit, error) {
	node, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	sourceUnit, ok := node.(*SourceUnit)
	if !ok {
		return nil, &UnknownNodeTypeError{NodeType: node.GetNodeType(), Context: "source unit"}
	}
	return sourceUnit, nil
}

// DecodeNode decodes a single AST node object, dispatching on its nodeType
// discriminant. An unrecognized discriminant fails with UnknownNodeTypeError, and a
// matched node lacking one of its kind's required fields fails with MissingFieldError.
func DecodeNode(data json.RawMessage) (Node, error) {
	header := struct {
		NodeType *string `json:"nodeType"`
		ID       int64   `json:"id"`
	}{}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, err
	}
	if header.NodeType == nil {
		return nil, &MissingFieldError{Field: "nodeType", ID: header.ID}
	}
	nodeType := *header.NodeType

	var node Node
	switch nodeType {
	case "SourceUnit":
		node = new(SourceUnit)
	case "ContractDefinition":
		node = new(ContractDefinition)
	case "FunctionDefinition":
		node = new(FunctionDefinition)
	case "ModifierDefinition":
		node = new(ModifierDefinition)
	case "VariableDeclaration":
		node = new(VariableDeclaration)
	case "StructDefinition":
		node = new(StructDefinition)
	case "EnumDefinition":
		node = new(EnumDefinition)
	case "EnumValue":
		node = new(EnumValue)
	case "ErrorDefinition":
		node = new(ErrorDefinition)
	case "EventDefinition":
		node = new(EventDefinition)
	case "UserDefinedValueTypeDefinition":
		node = new(UserDefinedValueTypeDefinition)
	case "UsingForDirective":
		node = new(UsingForDirective)
	case "ImportDirective":
		node = new(ImportDirective)
	case "PragmaDirective":
		node = new(PragmaDirective)
	case "ParameterList":
		node = new(ParameterList)
	case "InheritanceSpecifier":
		node = new(InheritanceSpecifier)
	case "OverrideSpecifier":
		node = new(OverrideSpecifier)
	case "ModifierInvocation":
		node = new(ModifierInvocation)
	case "StructuredDocumentation":
		node = new(StructuredDocumentation)
	case "Block":
		node = new(Block)
	case "UncheckedBlock":
		node = new(UncheckedBlock)
	case "IfStatement":
		node = new(IfStatement)
	case "ForStatement":
		node = new(ForStatement)
	case "WhileStatement":
		node = new(WhileStatement)
	case "DoWhileStatement":
		node = new(DoWhileStatement)
	case "Return":
		node = new(Return)
	case "Break":
		node = new(Break)
	case "Continue":
		node = new(Continue)
	case "EmitStatement":
		node = new(EmitStatement)
	case "RevertStatement":
		node = new(RevertStatement)
	case "TryStatement":
		node = new(TryStatement)
	case "TryCatchClause":
		node = new(TryCatchClause)
	case "ExpressionStatement":
		node = new(ExpressionStatement)
	case "VariableDeclarationStatement":
		node = new(VariableDeclarationStatement)
	case "PlaceholderStatement":
		node = new(PlaceholderStatement)
	case "InlineAssembly":
		node = new(InlineAssembly)
	case "Assignment":
		node = new(Assignment)
	case "BinaryOperation":
		node = new(BinaryOperation)
	case "UnaryOperation":
		node = new(UnaryOperation)
	case "Conditional":
		node = new(Conditional)
	case "FunctionCall":
		node = new(FunctionCall)
	case "FunctionCallOptions":
		node = new(FunctionCallOptions)
	case "IndexAccess":
		node = new(IndexAccess)
	case "MemberAccess":
		node = new(MemberAccess)
	case "NewExpression":
		node = new(NewExpression)
	case "TupleExpression":
		node = new(TupleExpression)
	case "Literal":
		node = new(Literal)
	case "Identifier":
		node = new(Identifier)
	case "IdentifierPath":
		node = new(IdentifierPath)
	case "ElementaryTypeNameExpression":
		node = new(ElementaryTypeNameExpression)
	case "ElementaryTypeName":
		node = new(ElementaryTypeName)
	case "ArrayTypeName":
		node = new(ArrayTypeName)
	case "Mapping":
		node = new(Mapping)
	case "FunctionTypeName":
		node = new(FunctionTypeName)
	case "UserDefinedTypeName":
		node = new(UserDefinedTypeName)
	default:
		return nil, &UnknownNodeTypeError{NodeType: nodeType}
	}

	if err := checkRequiredFields(data, nodeType, header.ID); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, node); err != nil {
		return nil, err
	}
	return node, nil
}

// requiredNodeFields lists, per node kind, the fields the compiler always emits for
// that kind. The id and src fields are required for every kind and checked implicitly.
var requiredNodeFields = map[string][]string{
	"SourceUnit":                     {"absolutePath", "nodes"},
	"ContractDefinition":             {"name", "contractKind", "abstract", "fullyImplemented", "linearizedBaseContracts"},
	"FunctionDefinition":             {"name", "kind", "virtual", "visibility", "stateMutability", "parameters", "returnParameters", "modifiers", "scope", "implemented"},
	"ModifierDefinition":             {"name", "virtual", "visibility", "parameters"},
	"VariableDeclaration":            {"name", "visibility", "typeDescriptions"},
	"StructDefinition":               {"name", "members"},
	"EnumDefinition":                 {"name", "members"},
	"EnumValue":                      {"name", "nameLocation"},
	"ErrorDefinition":                {"name", "parameters"},
	"EventDefinition":                {"name", "anonymous", "parameters"},
	"UserDefinedValueTypeDefinition": {"name", "underlyingType"},
	"ImportDirective":                {"absolutePath", "file"},
	"PragmaDirective":                {"literals"},
	"ParameterList":                  {"parameters"},
	"InheritanceSpecifier":           {"baseName"},
	"ModifierInvocation":             {"modifierName"},
	"StructuredDocumentation":        {"text"},
	"Block":                          {"statements"},
	"UncheckedBlock":                 {"statements"},
	"IfStatement":                    {"condition", "trueBody"},
	"ForStatement":                   {"body"},
	"WhileStatement":                 {"condition", "body"},
	"DoWhileStatement":               {"condition", "body"},
	"Return":                         {"functionReturnParameters"},
	"EmitStatement":                  {"eventCall"},
	"RevertStatement":                {"errorCall"},
	"TryStatement":                   {"externalCall", "clauses"},
	"TryCatchClause":                 {"block"},
	"ExpressionStatement":            {"expression"},
	"VariableDeclarationStatement":   {"assignments", "declarations"},
	"Assignment":                     {"leftHandSide", "rightHandSide", "operator", "typeDescriptions"},
	"BinaryOperation":                {"leftExpression", "rightExpression", "operator", "commonType", "typeDescriptions"},
	"UnaryOperation":                 {"subExpression", "operator", "typeDescriptions"},
	"Conditional":                    {"condition", "trueExpression", "falseExpression", "typeDescriptions"},
	"FunctionCall":                   {"expression", "arguments", "names", "kind", "typeDescriptions"},
	"FunctionCallOptions":            {"expression", "names", "options", "typeDescriptions"},
	"IndexAccess":                    {"baseExpression", "typeDescriptions"},
	"MemberAccess":                   {"expression", "memberName", "typeDescriptions"},
	"NewExpression":                  {"typeName", "typeDescriptions"},
	"TupleExpression":                {"components", "typeDescriptions"},
	"Literal":                        {"kind", "value", "typeDescriptions"},
	"Identifier":                     {"name", "typeDescriptions"},
	"IdentifierPath":                 {"name"},
	"ElementaryTypeNameExpression":   {"typeName", "typeDescriptions"},
	"ElementaryTypeName":             {"name", "typeDescriptions"},
	"ArrayTypeName":                  {"baseType"},
	"Mapping":                        {"keyType", "valueType"},
	"FunctionTypeName":               {"visibility", "stateMutability"},
	"UserDefinedTypeName":            {"typeDescriptions"},
}

// checkRequiredFields verifies the presence of every field the matched node kind
// requires, reporting the first absence together with the enclosing node's id.
func checkRequiredFields(data json.RawMessage, nodeType string, id int64) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, name := range []string{"id", "src"} {
		if _, present := fields[name]; !present {
			return &MissingFieldError{NodeType: nodeType, Field: name, ID: id}
		}
	}
	for _, name := range requiredNodeFields[nodeType] {
		if _, present := fields[name]; !present {
			return &MissingFieldError{NodeType: nodeType, Field: name, ID: id}
		}
	}
	return nil
}

// isJSONNull reports whether a raw field value is absent or an explicit JSON null.
func isJSONNull(data json.RawMessage) bool {
	return len(data) == 0 || string(data) == "null"
}

// decodeNodeList decodes an ordered list of child nodes with full dispatch.
func decodeNodeList(raws []json.RawMessage) ([]Node, error) {
	if raws == nil {
		return nil, nil
	}
	nodes := make([]Node, 0, len(raws))
	for _, raw := range raws {
		node, err := DecodeNode(raw)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// decodeExpression decodes a node required to appear in expression position.
func decodeExpression(data json.RawMessage) (Expression, error) {
	node, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	expression, ok := node.(Expression)
	if !ok {
		return nil, &UnknownNodeTypeError{NodeType: node.GetNodeType(), Context: "expression"}
	}
	return expression, nil
}

// decodeOptionalExpression decodes an expression field that may be absent or null.
func decodeOptionalExpression(data json.RawMessage) (Expression, error) {
	if isJSONNull(data) {
		return nil, nil
	}
	return decodeExpression(data)
}

// decodeExpressionList decodes an ordered list of expressions. Null entries, which
// the compiler emits for omitted tuple components, decode to nil.
func decodeExpressionList(raws []json.RawMessage) ([]Expression, error) {
	if raws == nil {
		return nil, nil
	}
	expressions := make([]Expression, 0, len(raws))
	for _, raw := range raws {
		expression, err := decodeOptionalExpression(raw)
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expression)
	}
	return expressions, nil
}

// decodeStatement decodes a node required to appear in statement position.
func decodeStatement(data json.RawMessage) (Statement, error) {
	node, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	statement, ok := node.(Statement)
	if !ok {
		return nil, &UnknownNodeTypeError{NodeType: node.GetNodeType(), Context: "statement"}
	}
	return statement, nil
}

// decodeOptionalStatement decodes a statement field that may be absent or null.
func decodeOptionalStatement(data json.RawMessage) (Statement, error) {
	if isJSONNull(data) {
		return nil, nil
	}
	return decodeStatement(data)
}

// decodeStatementList decodes an ordered list of statements.
func decodeStatementList(raws []json.RawMessage) ([]Statement, error) {
	if raws == nil {
		return nil, nil
	}
	statements := make([]Statement, 0, len(raws))
	for _, raw := range raws {
		statement, err := decodeStatement(raw)
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	return statements, nil
}

// decodeTypeName decodes a node required to appear in type-name position.
func decodeTypeName(data json.RawMessage) (TypeName, error) {
	node, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	typeName, ok := node.(TypeName)
	if !ok {
		return nil, &UnknownNodeTypeError{NodeType: node.GetNodeType(), Context: "type name"}
	}
	return typeName, nil
}

// decodeOptionalTypeName decodes a type-name field that may be absent or null.
func decodeOptionalTypeName(data json.RawMessage) (TypeName, error) {
	if isJSONNull(data) {
		return nil, nil
	}
	return decodeTypeName(data)
}

// decodeTypeNameList decodes an ordered list of type names.
func decodeTypeNameList(raws []json.RawMessage) ([]TypeName, error) {
	if raws == nil {
		return nil, nil
	}
	typeNames := make([]TypeName, 0, len(raws))
	for _, raw := range raws {
		typeName, err := decodeTypeName(raw)
		if err != nil {
			return nil, err
		}
		typeNames = append(typeNames, typeName)
	}
	return typeNames, nil
}
