// Package calcy evaluates simple algebraic expressions over a choice of
// numeric types.
//
// An expression is numbers, variables, the binary operators + - * / ^, and
// parentheses. Terms written next to each other are multiplied, so "2(x+1)"
// is "2*(x+1)". A bare letter is always a one-letter variable, so "ab" is
// "a*b"; longer names are quoted, as in "\"ab\"c". There are no unary
// operators.
//
// Callers that keep the previous result as a variable, like the calcy command
// does under the name ans, make it available as "\"ans\"" in later input.
//
// Evaluation is generic over a Domain, which supplies parsing and arithmetic
// for one numeric type: floats, unsigned integers, arbitrary-precision floats,
// or exact decimals. Tokenize, BuildTree, and Expr.Eval are the stages of
// evaluation; Solve runs all three.
package calcy
