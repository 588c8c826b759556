package pink

type Node interface {
	Pos() Position
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

// LiteralExpr holds a constant: float64, string, rune, bool, or nil.
type LiteralExpr struct {
	Value    any
	position Position
}

func (e *LiteralExpr) exprNode()     {}
func (e *LiteralExpr) Pos() Position { return e.position }

type GroupingExpr struct {
	Inner    Expression
	position Position
}

func (e *GroupingExpr) exprNode()     {}
func (e *GroupingExpr) Pos() Position { return e.position }

type UnaryExpr struct {
	Operator Token
	Right    Expression
	position Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.position }

type BinaryExpr struct {
	Left     Expression
	Operator Token
	Right    Expression
	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

type VariableExpr struct {
	Name     Token
	position Position
}

func (e *VariableExpr) exprNode()     {}
func (e *VariableExpr) Pos() Position { return e.position }

type AssignExpr struct {
	Name     Token
	Value    Expression
	position Position
}

func (e *AssignExpr) exprNode()     {}
func (e *AssignExpr) Pos() Position { return e.position }

type CallExpr struct {
	Callee    Expression
	Paren     Token
	Arguments []Expression
	position  Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }

// IndexExpr selects one element, or gathers several when Index is a *RangeExpr.
type IndexExpr struct {
	Target   Expression
	Index    Expression
	position Position
}

func (e *IndexExpr) exprNode()     {}
func (e *IndexExpr) Pos() Position { return e.position }

type ArrayLiteral struct {
	Elements []Expression
	position Position
}

func (e *ArrayLiteral) exprNode()     {}
func (e *ArrayLiteral) Pos() Position { return e.position }

type RangeExpr struct {
	Start    Expression
	End      Expression
	Step     Expression
	position Position
}

func (e *RangeExpr) exprNode()     {}
func (e *RangeExpr) Pos() Position { return e.position }

type SelectExpr struct {
	Condition Expression
	Then      Expression
	Else      Expression
	position  Position
}

func (e *SelectExpr) exprNode()     {}
func (e *SelectExpr) Pos() Position { return e.position }

type InExpr struct {
	Left     Expression
	Right    Expression
	position Position
}

func (e *InExpr) exprNode()     {}
func (e *InExpr) Pos() Position { return e.position }

// FunctionExpr is an anonymous function; evaluating it creates a closure.
type FunctionExpr struct {
	Params   []Token
	Body     []Statement
	position Position
}

func (e *FunctionExpr) exprNode()     {}
func (e *FunctionExpr) Pos() Position { return e.position }
