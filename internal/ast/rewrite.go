package ast

// FoldNegativeLiterals rewrites every arithmetic negation of a number
// literal into the literal itself with its sign flipped, in place. The
// literal keeps its own source position so that later hex-literal
// recovery still points at the digits, not at the minus sign.
func FoldNegativeLiterals(m *Module) {
	m.Body = foldStmts(m.Body)
}

func foldStmts(body []Stmt) []Stmt {
	for i, stmt := range body {
		body[i] = foldStmt(stmt)
	}
	return body
}

func foldStmt(stmt Stmt) Stmt {
	switch n := stmt.(type) {
	case *FunctionDef:
		n.Body = foldStmts(n.Body)
	case *AnnAssign:
		n.Annotation = foldExpr(n.Annotation)
		n.Value = foldExpr(n.Value)
	case *Assign:
		n.Target = foldExpr(n.Target)
		n.Value = foldExpr(n.Value)
	case *AugAssign:
		n.Target = foldExpr(n.Target)
		n.Value = foldExpr(n.Value)
	case *If:
		n.Test = foldExpr(n.Test)
		n.Body = foldStmts(n.Body)
		n.Orelse = foldStmts(n.Orelse)
	case *For:
		n.Iter = foldExpr(n.Iter)
		n.Body = foldStmts(n.Body)
	case *Return:
		n.Value = foldExpr(n.Value)
	case *Assert:
		n.Test = foldExpr(n.Test)
		n.Msg = foldExpr(n.Msg)
	case *ExprStmt:
		n.Value = foldExpr(n.Value)
	}
	return stmt
}

func foldExpr(expr Expr) Expr {
	if expr == nil {
		return nil
	}

	switch n := expr.(type) {
	case *UnaryExpr:
		n.Value = foldExpr(n.Value)
		if lit, ok := n.Value.(*NumberLit); ok && n.Op == "-" {
			lit.Neg = !lit.Neg
			return lit
		}
	case *Attribute:
		n.Value = foldExpr(n.Value)
	case *Subscript:
		n.Value = foldExpr(n.Value)
		n.Index = foldExpr(n.Index)
	case *Call:
		n.Func = foldExpr(n.Func)
		for i, arg := range n.Args {
			n.Args[i] = foldExpr(arg)
		}
		for _, kw := range n.Keywords {
			kw.Value = foldExpr(kw.Value)
		}
	case *ListLit:
		for i, elt := range n.Elts {
			n.Elts[i] = foldExpr(elt)
		}
	case *DictLit:
		for i := range n.Keys {
			n.Keys[i] = foldExpr(n.Keys[i])
			n.Values[i] = foldExpr(n.Values[i])
		}
	case *BinaryExpr:
		n.Left = foldExpr(n.Left)
		n.Right = foldExpr(n.Right)
	case *CompareExpr:
		n.Left = foldExpr(n.Left)
		for i, cmp := range n.Comparators {
			n.Comparators[i] = foldExpr(cmp)
		}
	case *BoolOpExpr:
		n.Left = foldExpr(n.Left)
		n.Right = foldExpr(n.Right)
	}
	return expr
}
