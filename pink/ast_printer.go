package pink

import (
	"fmt"
	"strings"
)

// FormatAST renders statements as parenthesized S-expressions, one top-level
// statement per line.
func FormatAST(statements []Statement) string {
	var b strings.Builder
	for _, stmt := range statements {
		writeStatement(&b, stmt)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatExpression renders a single expression as an S-expression.
func FormatExpression(expr Expression) string {
	var b strings.Builder
	writeExpression(&b, expr)
	return b.String()
}

func writeStatement(b *strings.Builder, stmt Statement) {
	switch s := stmt.(type) {
	case *ExprStmt:
		writeExpression(b, s.Expr)
	case *PrintStmt:
		if s.Newline {
			writeList(b, "println", s.Expr)
		} else {
			writeList(b, "print", s.Expr)
		}
	case *VarStmt:
		b.WriteString("(let ")
		b.WriteString(s.Name.Lexeme)
		if s.Initializer != nil {
			b.WriteByte(' ')
			writeExpression(b, s.Initializer)
		}
		b.WriteByte(')')
	case *BlockStmt:
		b.WriteString("(block")
		writeBody(b, s.Statements)
		b.WriteByte(')')
	case *IfStmt:
		b.WriteString("(if ")
		writeExpression(b, s.Condition)
		b.WriteByte(' ')
		writeStatement(b, s.Then)
		if s.Else != nil {
			b.WriteByte(' ')
			writeStatement(b, s.Else)
		}
		b.WriteByte(')')
	case *WhileStmt:
		b.WriteString("(while ")
		writeExpression(b, s.Condition)
		b.WriteByte(' ')
		writeStatement(b, s.Body)
		b.WriteByte(')')
	case *ForStmt:
		b.WriteString("(for ")
		if s.Initializer != nil {
			writeStatement(b, s.Initializer)
		} else {
			b.WriteByte('_')
		}
		b.WriteByte(' ')
		writeExpression(b, s.Condition)
		b.WriteByte(' ')
		writeExpression(b, s.Increment)
		b.WriteByte(' ')
		writeStatement(b, s.Body)
		b.WriteByte(')')
	case *BreakStmt:
		b.WriteString("(break)")
	case *ContinueStmt:
		b.WriteString("(continue)")
	case *ReturnStmt:
		if s.Value == nil {
			b.WriteString("(return)")
		} else {
			writeList(b, "return", s.Value)
		}
	case *FunctionStmt:
		fmt.Fprintf(b, "(function %s %s", s.Name.Lexeme, paramList(s.Params))
		writeBody(b, s.Body)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "(unknown %T)", stmt)
	}
}

func writeExpression(b *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case *LiteralExpr:
		b.WriteString(formatLiteral(e.Value))
	case *GroupingExpr:
		writeList(b, "group", e.Inner)
	case *UnaryExpr:
		writeList(b, e.Operator.Lexeme, e.Right)
	case *BinaryExpr:
		writeList(b, e.Operator.Lexeme, e.Left, e.Right)
	case *VariableExpr:
		b.WriteString(e.Name.Lexeme)
	case *AssignExpr:
		fmt.Fprintf(b, "(= %s ", e.Name.Lexeme)
		writeExpression(b, e.Value)
		b.WriteByte(')')
	case *CallExpr:
		writeList(b, "call", append([]Expression{e.Callee}, e.Arguments...)...)
	case *IndexExpr:
		writeList(b, "index", e.Target, e.Index)
	case *ArrayLiteral:
		writeList(b, "list", e.Elements...)
	case *RangeExpr:
		if e.Step != nil {
			b.WriteString("(.. ")
			writeExpression(b, e.Start)
			b.WriteByte(' ')
			writeExpression(b, e.End)
			b.WriteString(" step ")
			writeExpression(b, e.Step)
			b.WriteByte(')')
		} else {
			writeList(b, "..", e.Start, e.End)
		}
	case *SelectExpr:
		writeList(b, "select", e.Condition, e.Then, e.Else)
	case *InExpr:
		writeList(b, "in", e.Left, e.Right)
	case *FunctionExpr:
		fmt.Fprintf(b, "(function %s", paramList(e.Params))
		writeBody(b, e.Body)
		b.WriteByte(')')
	case nil:
		b.WriteByte('_')
	default:
		fmt.Fprintf(b, "(unknown %T)", expr)
	}
}

func writeList(b *strings.Builder, head string, exprs ...Expression) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, expr := range exprs {
		b.WriteByte(' ')
		writeExpression(b, expr)
	}
	b.WriteByte(')')
}

func writeBody(b *strings.Builder, body []Statement) {
	for _, stmt := range body {
		b.WriteByte(' ')
		writeStatement(b, stmt)
	}
}

func paramList(params []Token) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return "(" + strings.Join(names, " ") + ")"
}

func formatLiteral(v any) string {
	switch lit := v.(type) {
	case nil:
		return "null"
	case float64:
		return formatNumber(lit)
	case string:
		return fmt.Sprintf("%q", lit)
	case rune:
		return fmt.Sprintf("%q", lit)
	case bool:
		if lit {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(lit)
	}
}
