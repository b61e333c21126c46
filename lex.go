package calcy

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression. Literal tokens carry their value
// already parsed by the domain that tokenized them.
type Token[T any] struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Text is the source text of the token: the digits of a literal, the name
	// of a variable without quotes, or the operator or bracket.
	Text string
	// Value is the parsed literal for TokenNum tokens.
	Value T
	// Pos is the 1-based rune position of the token in the source. An
	// implicit multiplication has the position of the token after it.
	Pos int
}

func (t Token[T]) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a numeric literal.
	TokenNum
	// TokenName is a variable name.
	TokenName
	// TokenOp is one of the binary operators.
	TokenOp
	// TokenOpen is an open bracket.
	TokenOpen
	// TokenClose is a close bracket.
	TokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

type lexToken struct {
	text string
	kind TokenKind
	pos  int
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return lexToken{}, err
		}
		tok := lexToken{pos: l.rune}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = TokenNum
			return tok, nil
		case unicode.IsLetter(r):
			// Bare letters are one-letter names, so "ab" is a times b.
			tok.text = string(r)
			tok.kind = TokenName
			return tok, nil
		case r == '"':
			if err := l.scanQuoted(tok.pos); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = TokenName
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = TokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = TokenOp
			return tok, nil
		default:
			return tok, &TokenError{Col: tok.pos, Char: r}
		}
	}
}

// scanNum scans a run of digits and points. Whether the run is a valid literal
// is up to the domain.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ('0' > r || r > '9') && r != '.' {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// scanQuoted scans a quoted name after its opening quote at position open.
func (l *lexer) scanQuoted(open int) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &TokenError{Col: open, Char: '"'}
			}
			return err
		}
		switch {
		case r == '"':
			if l.buf.Len() == 0 {
				return &TokenError{Col: l.rune, Char: r}
			}
			return nil
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		default:
			return &TokenError{Col: l.rune, Char: r}
		}
	}
}

// Tokenize scans src into tokens, parsing literals with d. An operator must
// follow a literal, a name, or a close bracket; there are no unary operators.
// Juxtaposed terms get an explicit multiplication token between them, so
// "2(x)y" tokenizes the same as "2*(x)*y". Brackets are not checked for
// balance here; BuildTree does that.
func Tokenize[T any](d Domain[T], src string) ([]Token[T], error) {
	scan := lex(strings.NewReader(src))
	var toks []Token[T]
	for {
		lt, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		operand := false
		if len(toks) > 0 {
			switch toks[len(toks)-1].Kind {
			case TokenNum, TokenName, TokenClose:
				operand = true
			}
		}
		switch lt.kind {
		case TokenOp:
			if !operand {
				return nil, &TokenError{Col: lt.pos, Char: rune(lt.text[0])}
			}
		case TokenNum, TokenName, TokenOpen:
			if operand {
				toks = append(toks, Token[T]{Kind: TokenOp, Text: "*", Pos: lt.pos})
			}
		}
		tok := Token[T]{Kind: lt.kind, Text: lt.text, Pos: lt.pos}
		if lt.kind == TokenNum {
			v, err := d.Parse(lt.text)
			if err != nil {
				return nil, &ValueError{Col: lt.pos, Text: lt.text, Type: d.Name(), Err: err}
			}
			tok.Value = v
		}
		toks = append(toks, tok)
	}
}
