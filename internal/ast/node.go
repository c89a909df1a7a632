package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (m *Module) NodePos() Position    { return m.Pos }
func (m *Module) NodeEndPos() Position { return m.EndPos }
func (*Module) NodeType() NodeType     { return MODULE }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (bs *BadStmt) NodePos() Position    { return bs.Bad.Pos }
func (bs *BadStmt) NodeEndPos() Position { return bs.Bad.EndPos }
func (*BadStmt) NodeType() NodeType      { return BAD_STMT }

func (be *BadExpr) NodePos() Position    { return be.Bad.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.Bad.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }

func (f *FunctionDef) NodePos() Position    { return f.Pos }
func (f *FunctionDef) NodeEndPos() Position { return f.EndPos }
func (*FunctionDef) NodeType() NodeType     { return FUNCTION_DEF }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (a *AnnAssign) NodePos() Position    { return a.Pos }
func (a *AnnAssign) NodeEndPos() Position { return a.EndPos }
func (*AnnAssign) NodeType() NodeType     { return ANN_ASSIGN }

func (a *Assign) NodePos() Position    { return a.Pos }
func (a *Assign) NodeEndPos() Position { return a.EndPos }
func (*Assign) NodeType() NodeType     { return ASSIGN_STMT }

func (a *AugAssign) NodePos() Position    { return a.Pos }
func (a *AugAssign) NodeEndPos() Position { return a.EndPos }
func (*AugAssign) NodeType() NodeType     { return AUG_ASSIGN }

func (i *If) NodePos() Position    { return i.Pos }
func (i *If) NodeEndPos() Position { return i.EndPos }
func (*If) NodeType() NodeType     { return IF_STMT }

func (f *For) NodePos() Position    { return f.Pos }
func (f *For) NodeEndPos() Position { return f.EndPos }
func (*For) NodeType() NodeType     { return FOR_STMT }

func (b *Break) NodePos() Position    { return b.Pos }
func (b *Break) NodeEndPos() Position { return b.EndPos }
func (*Break) NodeType() NodeType     { return BREAK_STMT }

func (p *Pass) NodePos() Position    { return p.Pos }
func (p *Pass) NodeEndPos() Position { return p.EndPos }
func (*Pass) NodeType() NodeType     { return PASS_STMT }

func (r *Return) NodePos() Position    { return r.Pos }
func (r *Return) NodeEndPos() Position { return r.EndPos }
func (*Return) NodeType() NodeType     { return RETURN_STMT }

func (a *Assert) NodePos() Position    { return a.Pos }
func (a *Assert) NodeEndPos() Position { return a.EndPos }
func (*Assert) NodeType() NodeType     { return ASSERT_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (n *NumberLit) NodePos() Position    { return n.Pos }
func (n *NumberLit) NodeEndPos() Position { return n.EndPos }
func (*NumberLit) NodeType() NodeType     { return NUMBER_LIT }

func (s *StringLit) NodePos() Position    { return s.Pos }
func (s *StringLit) NodeEndPos() Position { return s.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING_LIT }

func (b *BoolLit) NodePos() Position    { return b.Pos }
func (b *BoolLit) NodeEndPos() Position { return b.EndPos }
func (*BoolLit) NodeType() NodeType     { return BOOL_LIT }

func (a *Attribute) NodePos() Position    { return a.Pos }
func (a *Attribute) NodeEndPos() Position { return a.EndPos }
func (*Attribute) NodeType() NodeType     { return ATTRIBUTE_EXPR }

func (s *Subscript) NodePos() Position    { return s.Pos }
func (s *Subscript) NodeEndPos() Position { return s.EndPos }
func (*Subscript) NodeType() NodeType     { return SUBSCRIPT_EXPR }

func (c *Call) NodePos() Position    { return c.Pos }
func (c *Call) NodeEndPos() Position { return c.EndPos }
func (*Call) NodeType() NodeType     { return CALL_EXPR }

func (k *Keyword) NodePos() Position    { return k.Pos }
func (k *Keyword) NodeEndPos() Position { return k.EndPos }
func (*Keyword) NodeType() NodeType     { return KEYWORD_ARG }

func (l *ListLit) NodePos() Position    { return l.Pos }
func (l *ListLit) NodeEndPos() Position { return l.EndPos }
func (*ListLit) NodeType() NodeType     { return LIST_LIT }

func (d *DictLit) NodePos() Position    { return d.Pos }
func (d *DictLit) NodeEndPos() Position { return d.EndPos }
func (*DictLit) NodeType() NodeType     { return DICT_LIT }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (c *CompareExpr) NodePos() Position    { return c.Pos }
func (c *CompareExpr) NodeEndPos() Position { return c.EndPos }
func (*CompareExpr) NodeType() NodeType     { return COMPARE_EXPR }

func (b *BoolOpExpr) NodePos() Position    { return b.Pos }
func (b *BoolOpExpr) NodeEndPos() Position { return b.EndPos }
func (*BoolOpExpr) NodeType() NodeType     { return BOOL_OP_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }
