package ast

type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr() {}

func (*Ident) isExpr() {}

func (*NumberLit) isExpr() {}

func (*StringLit) isExpr() {}

func (*BoolLit) isExpr() {}

func (*Attribute) isExpr() {}

func (*Subscript) isExpr() {}

func (*Call) isExpr() {}

func (*ListLit) isExpr() {}

func (*DictLit) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*CompareExpr) isExpr() {}

func (*BoolOpExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}
