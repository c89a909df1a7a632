package ast

type Stmt interface {
	Node
	isStmt()
}

func (*BadStmt) isStmt()     {}
func (*FunctionDef) isStmt() {}
func (*AnnAssign) isStmt()   {}
func (*Assign) isStmt()      {}
func (*AugAssign) isStmt()   {}
func (*If) isStmt()          {}
func (*For) isStmt()         {}
func (*Break) isStmt()       {}
func (*Pass) isStmt()        {}
func (*Return) isStmt()      {}
func (*Assert) isStmt()      {}
func (*ExprStmt) isStmt()    {}
