// Package pink implements the Pinkerton scripting language: a scanner, a
// precedence-climbing parser, and a tree-walking interpreter. The language
// supports:
//   - Variables via `let name = expr` and assignment with `=` or `:=`.
//   - Numbers (all double precision), strings, chars, booleans, null and lists.
//   - `if ... then ... else`, `while ... do`, C-style `for (init; cond; incr)`,
//     `break`, `continue` and `return`.
//   - Named and anonymous functions, `function f(x) { ... }` or
//     `function f(x) = expr`, closing over their defining scope.
//   - List literals `[a; b; c]`, ranges `a..b step s`, gathering index
//     `xs[1..3]`, membership `x in xs` and the pipeline `x |> f(y)`.
//   - A native library of math, conversion, string, list and
//     higher-order functions.
//
// Comments begin with `$` and run to end of line. Keyword spellings and the
// comment character are configurable through Config.
package pink
