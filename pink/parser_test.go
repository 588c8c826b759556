package pink

import (
	"errors"
	"strings"
	"testing"
)

func parseExpression(t *testing.T, source string) string {
	t.Helper()
	stmts, err := ParseSource(source)
	if err != nil {
		t.Fatalf("parse %q failed: %v", source, err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement for %q, got %d", source, len(stmts))
	}
	stmt, ok := stmts[0].(*ExprStmt)
	if !ok {
		t.Fatalf("expected expression statement for %q, got %T", source, stmts[0])
	}
	return FormatExpression(stmt.Expr)
}

func TestParsePrecedence(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"-2 * 3", "(* (- 2) 3)"},
		{"a or b and c", "(and (or a b) c)"},
		{"not a and b", "(not (and a b))"},
		{"!a and b", "(and (! a) b)"},
		{"a == b < c", "(== a (< b c))"},
		{`"n=" & 1 + 2`, `(& "n=" (+ 1 2))`},
		{"x in [1; 2]", "(in x (list 1 2))"},
		{"a == b in xs", "(in (== a b) xs)"},
		{"1..10 step 2", "(.. 1 10 step 2)"},
		{"1 + 1..2 * 3", "(.. (+ 1 1) (* 2 3))"},
		{"a = b := 1", "(= a (= b 1))"},
		{"x |> f(y)", "(call f x y)"},
		{"x |> f |> g(1)", "(call g (call f x) 1)"},
		{"xs[1..2](3)", "(call (index xs (.. 1 2)) 3)"},
		{"select a then 1 else 2", "(select a 1 2)"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"function(x) = x * 2", "(function (x) (return (* x 2)))"},
		{"'c'", "'c'"},
	}
	for _, tc := range cases {
		if got := parseExpression(t, tc.source); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.source, tc.want, got)
		}
	}
}

func TestParseStatements(t *testing.T) {
	source := `let total = 0
function sq(x) = x * x
procedure show(v) { println v }
if total > 1 then print 1; else print 2
while total < 3 do total = total + 1
for (let i = 0; i < 3; i = i + 1) { continue }
for (;;) break`

	stmts, err := ParseSource(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := `(let total 0)
(function sq (x) (return (* x x)))
(function show (v) (println v))
(if (> total 1) (print 1) (print 2))
(while (< total 3) (= total (+ total 1)))
(for (let i 0) (< i 3) (= i (+ i 1)) (block (continue)))
(for _ _ _ (break))
`
	if got := FormatAST(stmts); got != want {
		t.Fatalf("unexpected AST:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseReturnValueMustStartOnSameLine(t *testing.T) {
	stmts, err := ParseSource("function f() {\n  return\n  1\n}\nfunction g() { return 2 }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	f := stmts[0].(*FunctionStmt)
	if len(f.Body) != 2 {
		t.Fatalf("expected bare return plus expression, got %d statements", len(f.Body))
	}
	if ret := f.Body[0].(*ReturnStmt); ret.Value != nil {
		t.Fatalf("expected bare return, got %s", FormatExpression(ret.Value))
	}
	g := stmts[1].(*FunctionStmt)
	if ret := g.Body[0].(*ReturnStmt); ret.Value == nil {
		t.Fatalf("expected return value on the same line")
	}
}

func TestParseCollectsMultipleErrors(t *testing.T) {
	_, err := ParseSource("let = 1\nlet y = ;\nprint 3")
	if err == nil {
		t.Fatalf("expected parse errors")
	}
	var errs SyntaxErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected SyntaxErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), err)
	}
	if errs[0].Pos.Line != 1 || errs[0].Message != "Expect variable name." {
		t.Fatalf("unexpected first error: %v", errs[0])
	}
	if !strings.HasPrefix(errs[1].Error(), "[line 2] Error at ';': Expect expression.") {
		t.Fatalf("unexpected second error: %v", errs[1])
	}
}

func TestParseErrorCases(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"1 = 2", "Invalid assignment target."},
		{"if a print 1", "Expect 'then' after if condition."},
		{"while a print 1", "Expect 'do' after while condition."},
		{"[1, 2]", "Expect ']' after list elements."},
		{"f(1", "Expect ')' after arguments."},
		{"{ print 1", "Expect '}' after block."},
		{"1..2..3", "Range expressions cannot be chained."},
		{"print", "Error at end: Expect expression."},
	}
	for _, tc := range cases {
		_, err := ParseSource(tc.source)
		if err == nil {
			t.Fatalf("%q: expected parse error", tc.source)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%q: expected error containing %q, got %v", tc.source, tc.want, err)
		}
	}
}

func TestParseRejectsTooManyArguments(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	_, err := ParseSource("f(" + strings.Join(args, ", ") + ")")
	if err == nil || !strings.Contains(err.Error(), "Can't have more than 255 arguments.") {
		t.Fatalf("expected argument limit error, got %v", err)
	}
}
