package ast

// Module represents one parsed Viper source file.
// Example: storage declarations, event declarations and function
// definitions at the top level, in source order.
type Module struct {
	Pos    Position
	EndPos Position
	Body   []Stmt
}

// Position tracks location information for error reporting and for the
// literal-fidelity lookups the translator performs against raw source.
type Position struct {
	Filename string
	Offset   int
	Line     int // 1-based
	Column   int // 1-based
}

// Ident represents any identifier: variable names, type names,
// decorator names, reserved names like "self".
type Ident struct {
	Pos    Position
	EndPos Position
	Name   string
}

// BadStmt represents a statement that failed to parse.
type BadStmt struct {
	Bad BadNode
}

// BadExpr represents an expression that failed to parse.
type BadExpr struct {
	Bad BadNode
}

// BadNode contains error information for failed parsing.
type BadNode struct {
	Pos     Position
	EndPos  Position
	Message string
}

// FunctionDef represents a function definition with its decorators.
// Example: "@public\n@payable\ndef deposit():"
type FunctionDef struct {
	Pos        Position
	EndPos     Position
	Decorators []Ident
	Name       Ident
	Params     []*Param
	Returns    Expr // nil when no "->" annotation is present
	Body       []Stmt
}

// Param represents one function parameter with an optional type
// annotation. Example: "_value: num256"
type Param struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Annotation Expr // nil when unannotated
}

// AnnAssign represents a type-annotated declaration.
// Example: "balances: num256[address]", "x: num = 5"
type AnnAssign struct {
	Pos        Position
	EndPos     Position
	Target     Ident
	Annotation Expr
	Value      Expr // nil when the declaration carries no initializer
}

// Assign represents a plain assignment. Example: "self.owner = msg.sender"
type Assign struct {
	Pos    Position
	EndPos Position
	Target Expr
	Value  Expr
}

// AugAssign represents an augmented assignment. Example: "z += y"
type AugAssign struct {
	Pos    Position
	EndPos Position
	Target Expr
	Op     string // binary operator without the trailing '='
	Value  Expr
}

// If represents a conditional; an "elif" chain nests as a single-item
// Orelse holding another If.
type If struct {
	Pos    Position
	EndPos Position
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

// For represents a loop. Example: "for i in range(10):"
type For struct {
	Pos    Position
	EndPos Position
	Target Ident
	Iter   Expr
	Body   []Stmt
}

// Break represents a bare "break".
type Break struct {
	Pos    Position
	EndPos Position
}

// Pass represents a bare "pass".
type Pass struct {
	Pos    Position
	EndPos Position
}

// Return represents "return" with an optional value.
type Return struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare return
}

// Assert represents "assert expr" with an optional message expression,
// which the translator ignores.
type Assert struct {
	Pos    Position
	EndPos Position
	Test   Expr
	Msg    Expr
}

// ExprStmt represents an expression used as a statement.
// Example: "log.Transfer(_from, _to, _value)", "throw"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// NumberLit represents an integer, hexadecimal or decimal literal. The
// lexeme is kept verbatim (including any "0x" prefix); Neg is set by
// the negative-literal folding pass, never by the scanner.
type NumberLit struct {
	Pos     Position
	EndPos  Position
	Lexeme  string
	IsFloat bool
	Neg     bool
}

// StringLit represents a string literal with escapes resolved.
type StringLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// BoolLit represents "True" or "False".
type BoolLit struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// Attribute represents attribute access. Example: "msg.sender",
// "self.balances"
type Attribute struct {
	Pos    Position
	EndPos Position
	Value  Expr
	Attr   string
}

// Subscript represents indexing. Example: "balances[_sender]",
// "num256[address]" in type position
type Subscript struct {
	Pos    Position
	EndPos Position
	Value  Expr
	Index  Expr
}

// Call represents a call. Keyword arguments are preserved so the
// translator can reject them explicitly.
type Call struct {
	Pos      Position
	EndPos   Position
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

// Keyword represents a single "name=value" call argument.
type Keyword struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// ListLit represents a list literal. Example: "[1, 2, 3]"
type ListLit struct {
	Pos    Position
	EndPos Position
	Elts   []Expr
}

// DictLit represents a dict literal, used only in type position for
// struct types and event parameter lists.
// Example: "{_from: indexed(address), _value: num256}"
type DictLit struct {
	Pos    Position
	EndPos Position
	Keys   []Expr
	Values []Expr
}

// BinaryExpr represents arithmetic and bitwise binary operations.
// Example: "x + 10", "a << 2"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// CompareExpr represents a comparison. Chained comparisons keep their
// full op/comparator lists so the translator can reject them.
// Example: "x <= 10", "n in self.allowed"
type CompareExpr struct {
	Pos         Position
	EndPos      Position
	Left        Expr
	Ops         []string
	Comparators []Expr
}

// BoolOpExpr represents "and"/"or" with exactly two operands; longer
// chains parse as a left-nested tree.
type BoolOpExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr represents prefix operators. Example: "not done", "-x"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}
