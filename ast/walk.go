package ast

import (
	"golang.org/x/exp/slices"
)

// Visitor is the callback invoked by Walk for every node visited. Returning false
// prunes the node's subtree.
type Visitor func(Node) bool

// Walk traverses the tree rooted at node in source order, depth first, invoking
// visit for each node before its children.
func Walk(node Node, visit Visitor) {
	if node == nil || !visit(node) {
		return
	}
	for _, child := range children(node) {
		Walk(child, visit)
	}
}

// Index is a flat id-ordered view of an AST, supporting node lookup by id.
type Index struct {
	nodes []Node
	ids   []int64
}

// BuildIndex walks the tree rooted at node and indexes every visited node by id.
func BuildIndex(node Node) *Index {
	index := &Index{}
	Walk(node, func(n Node) bool {
		index.nodes = append(index.nodes, n)
		return true
	})
	slices.SortStableFunc(index.nodes, func(a, b Node) int {
		switch {
		case a.GetID() < b.GetID():
			return -1
		case a.GetID() > b.GetID():
			return 1
		default:
			return 0
		}
	})
	index.ids = make([]int64, len(index.nodes))
	for i, n := range index.nodes {
		index.ids[i] = n.GetID()
	}
	return index
}

// ByID returns the node with the given id, or nil if the id does not occur in the
// indexed tree. Back references such as referencedDeclaration resolve through it.
func (x *Index) ByID(id int64) Node {
	i, found := slices.BinarySearch(x.ids, id)
	if !found {
		return nil
	}
	return x.nodes[i]
}

// Len returns the number of indexed nodes.
func (x *Index) Len() int {
	return len(x.nodes)
}

// children returns a node's direct child nodes in source order. Nil entries from
// omitted tuple components and absent optionals are skipped.
func children(node Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if n != nil {
				out = append(out, n)
			}
		}
	}
	addExpressions := func(expressions []Expression) {
		for _, e := range expressions {
			if e != nil {
				out = append(out, e)
			}
		}
	}
	addStatements := func(statements []Statement) {
		for _, s := range statements {
			if s != nil {
				out = append(out, s)
			}
		}
	}
	addParameters := func(list *ParameterList) {
		out = append(out, list)
	}

	switch n := node.(type) {
	case *SourceUnit:
		add(n.Nodes...)
	case *ContractDefinition:
		for _, base := range n.BaseContracts {
			add(base)
		}
		if n.Documentation != nil && n.Documentation.Structured != nil {
			add(n.Documentation.Structured)
		}
		add(n.Nodes...)
	case *FunctionDefinition:
		if n.Documentation != nil && n.Documentation.Structured != nil {
			add(n.Documentation.Structured)
		}
		if n.Overrides != nil {
			add(n.Overrides)
		}
		addParameters(&n.Parameters)
		addParameters(&n.ReturnParameters)
		for _, m := range n.Modifiers {
			add(m)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *ModifierDefinition:
		if n.Documentation != nil && n.Documentation.Structured != nil {
			add(n.Documentation.Structured)
		}
		if n.Overrides != nil {
			add(n.Overrides)
		}
		addParameters(&n.Parameters)
		if n.Body != nil {
			add(n.Body)
		}
	case *VariableDeclaration:
		if n.TypeName != nil {
			add(n.TypeName)
		}
		if n.Overrides != nil {
			add(n.Overrides)
		}
		if n.Value != nil {
			add(n.Value)
		}
		if n.Documentation != nil && n.Documentation.Structured != nil {
			add(n.Documentation.Structured)
		}
	case *StructDefinition:
		for _, m := range n.Members {
			add(m)
		}
	case *EnumDefinition:
		for _, m := range n.Members {
			add(m)
		}
	case *ErrorDefinition:
		if n.Documentation != nil && n.Documentation.Structured != nil {
			add(n.Documentation.Structured)
		}
		addParameters(&n.Parameters)
	case *EventDefinition:
		if n.Documentation != nil && n.Documentation.Structured != nil {
			add(n.Documentation.Structured)
		}
		addParameters(&n.Parameters)
	case *UserDefinedValueTypeDefinition:
		if n.UnderlyingType != nil {
			add(n.UnderlyingType)
		}
	case *UsingForDirective:
		if n.LibraryName != nil {
			add(n.LibraryName)
		}
		if n.TypeName != nil {
			add(n.TypeName)
		}
	case *ParameterList:
		for _, p := range n.Parameters {
			add(p)
		}
	case *InheritanceSpecifier:
		add(&n.BaseName)
		addExpressions(n.Arguments)
	case *OverrideSpecifier:
		for _, o := range n.Overrides {
			add(o)
		}
	case *ModifierInvocation:
		add(&n.ModifierName)
		addExpressions(n.Arguments)
	case *Block:
		addStatements(n.Statements)
	case *UncheckedBlock:
		addStatements(n.Statements)
	case *IfStatement:
		add(n.Condition, n.TrueBody)
		if n.FalseBody != nil {
			add(n.FalseBody)
		}
	case *ForStatement:
		if n.InitializationExpression != nil {
			add(n.InitializationExpression)
		}
		if n.Condition != nil {
			add(n.Condition)
		}
		if n.LoopExpression != nil {
			add(n.LoopExpression)
		}
		add(n.Body)
	case *WhileStatement:
		add(n.Condition, n.Body)
	case *DoWhileStatement:
		add(n.Body, n.Condition)
	case *Return:
		if n.Expression != nil {
			add(n.Expression)
		}
	case *EmitStatement:
		add(&n.EventCall)
	case *RevertStatement:
		add(&n.ErrorCall)
	case *TryStatement:
		add(n.ExternalCall)
		for _, clause := range n.Clauses {
			add(clause)
		}
	case *TryCatchClause:
		if n.Parameters != nil {
			add(n.Parameters)
		}
		add(&n.Block)
	case *ExpressionStatement:
		add(n.Expression)
	case *VariableDeclarationStatement:
		for _, d := range n.Declarations {
			if d != nil {
				add(d)
			}
		}
		if n.InitialValue != nil {
			add(n.InitialValue)
		}
	case *Assignment:
		add(n.LeftHandSide, n.RightHandSide)
	case *BinaryOperation:
		add(n.LeftExpression, n.RightExpression)
	case *UnaryOperation:
		add(n.SubExpression)
	case *Conditional:
		add(n.Condition, n.TrueExpression, n.FalseExpression)
	case *FunctionCall:
		add(n.Expression)
		addExpressions(n.Arguments)
	case *FunctionCallOptions:
		add(n.Expression)
		addExpressions(n.Options)
	case *IndexAccess:
		add(n.BaseExpression)
		if n.IndexExpression != nil {
			add(n.IndexExpression)
		}
	case *MemberAccess:
		add(n.Expression)
	case *NewExpression:
		if n.TypeName != nil {
			add(n.TypeName)
		}
	case *TupleExpression:
		addExpressions(n.Components)
	case *ElementaryTypeNameExpression:
		add(&n.TypeName)
	case *ArrayTypeName:
		if n.BaseType != nil {
			add(n.BaseType)
		}
		if n.Length != nil {
			add(n.Length)
		}
	case *Mapping:
		if n.KeyType != nil {
			add(n.KeyType)
		}
		if n.ValueType != nil {
			add(n.ValueType)
		}
	case *FunctionTypeName:
		addParameters(&n.ParameterTypes)
		addParameters(&n.ReturnParameterTypes)
	case *UserDefinedTypeName:
		if n.PathNode != nil {
			add(n.PathNode)
		}
	}
	return out
}
