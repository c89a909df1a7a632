package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_STMT
	BAD_EXPR

	// High-level constructs
	MODULE
	IDENT

	// Functions
	FUNCTION_DEF
	PARAM

	// Statements
	ANN_ASSIGN
	ASSIGN_STMT
	AUG_ASSIGN
	IF_STMT
	FOR_STMT
	BREAK_STMT
	PASS_STMT
	RETURN_STMT
	ASSERT_STMT
	EXPR_STMT

	// Expressions
	NUMBER_LIT
	STRING_LIT
	BOOL_LIT
	ATTRIBUTE_EXPR
	SUBSCRIPT_EXPR
	CALL_EXPR
	KEYWORD_ARG
	LIST_LIT
	DICT_LIT
	BINARY_EXPR
	COMPARE_EXPR
	BOOL_OP_EXPR
	UNARY_EXPR
)
