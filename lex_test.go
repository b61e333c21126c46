package calcy

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	type tok = Token[float64]
	mul := func(pos int) tok { return tok{Kind: TokenOp, Text: "*", Pos: pos} }
	cases := []struct {
		src    string
		tokens []tok
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []tok{{Kind: TokenNum, Text: "0", Value: 0, Pos: 1}}},
		{"9876543210", []tok{{Kind: TokenNum, Text: "9876543210", Value: 9876543210, Pos: 1}}},
		{" 1.5 ", []tok{{Kind: TokenNum, Text: "1.5", Value: 1.5, Pos: 2}}},
		{".5", []tok{{Kind: TokenNum, Text: ".5", Value: 0.5, Pos: 1}}},
		{"2+2", []tok{
			{Kind: TokenNum, Text: "2", Value: 2, Pos: 1},
			{Kind: TokenOp, Text: "+", Pos: 2},
			{Kind: TokenNum, Text: "2", Value: 2, Pos: 3},
		}},
		{"1 2", []tok{
			{Kind: TokenNum, Text: "1", Value: 1, Pos: 1},
			mul(3),
			{Kind: TokenNum, Text: "2", Value: 2, Pos: 3},
		}},
		// names
		{"a", []tok{{Kind: TokenName, Text: "a", Pos: 1}}},
		{"ab", []tok{
			{Kind: TokenName, Text: "a", Pos: 1},
			mul(2),
			{Kind: TokenName, Text: "b", Pos: 2},
		}},
		{`"abc""bcd"`, []tok{
			{Kind: TokenName, Text: "abc", Pos: 1},
			mul(6),
			{Kind: TokenName, Text: "bcd", Pos: 6},
		}},
		{`"ab"+"bc"`, []tok{
			{Kind: TokenName, Text: "ab", Pos: 1},
			{Kind: TokenOp, Text: "+", Pos: 5},
			{Kind: TokenName, Text: "bc", Pos: 6},
		}},
		{`"x_1"`, []tok{{Kind: TokenName, Text: "x_1", Pos: 1}}},
		{"a2", []tok{
			{Kind: TokenName, Text: "a", Pos: 1},
			mul(2),
			{Kind: TokenNum, Text: "2", Value: 2, Pos: 2},
		}},
		{"2a", []tok{
			{Kind: TokenNum, Text: "2", Value: 2, Pos: 1},
			mul(2),
			{Kind: TokenName, Text: "a", Pos: 2},
		}},
		// brackets
		{"2(3)", []tok{
			{Kind: TokenNum, Text: "2", Value: 2, Pos: 1},
			mul(2),
			{Kind: TokenOpen, Text: "(", Pos: 2},
			{Kind: TokenNum, Text: "3", Value: 3, Pos: 3},
			{Kind: TokenClose, Text: ")", Pos: 4},
		}},
		{"(1)(2)", []tok{
			{Kind: TokenOpen, Text: "(", Pos: 1},
			{Kind: TokenNum, Text: "1", Value: 1, Pos: 2},
			{Kind: TokenClose, Text: ")", Pos: 3},
			mul(4),
			{Kind: TokenOpen, Text: "(", Pos: 4},
			{Kind: TokenNum, Text: "2", Value: 2, Pos: 5},
			{Kind: TokenClose, Text: ")", Pos: 6},
		}},
		{"(x)y", []tok{
			{Kind: TokenOpen, Text: "(", Pos: 1},
			{Kind: TokenName, Text: "x", Pos: 2},
			{Kind: TokenClose, Text: ")", Pos: 3},
			mul(4),
			{Kind: TokenName, Text: "y", Pos: 4},
		}},
		// unbalanced brackets are left for BuildTree
		{")(", []tok{
			{Kind: TokenClose, Text: ")", Pos: 1},
			mul(2),
			{Kind: TokenOpen, Text: "(", Pos: 2},
		}},
		// a trailing operator is left for BuildTree
		{"6/", []tok{
			{Kind: TokenNum, Text: "6", Value: 6, Pos: 1},
			{Kind: TokenOp, Text: "/", Pos: 2},
		}},
	}
	for _, c := range cases {
		got, err := Tokenize[float64](Float[float64]{}, c.src)
		if err != nil {
			t.Errorf("tokenizing %q: unexpected error %v", c.src, err)
			continue
		}
		if len(got) != len(c.tokens) {
			t.Errorf("tokenizing %q: want %v, got %v", c.src, c.tokens, got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("tokenizing %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src  string
		col  int
		char rune
	}{
		{"+1", 1, '+'},
		{"-1", 1, '-'},
		{"1@2", 2, '@'},
		{"(-1)", 2, '-'},
		{"1++2", 3, '+'},
		{"50--2", 4, '-'},
		{"25&+1", 3, '&'},
		{"afk#sdmf", 4, '#'},
		{`"ab`, 1, '"'},
		{`""`, 2, '"'},
		{`"a b"`, 3, ' '},
		{"2*$", 3, '$'},
	}
	for _, c := range cases {
		_, err := Tokenize[float64](Float[float64]{}, c.src)
		var terr *TokenError
		if !errors.As(err, &terr) {
			t.Errorf("tokenizing %q: want *TokenError, got %#v", c.src, err)
			continue
		}
		if terr.Col != c.col || terr.Char != c.char {
			t.Errorf("tokenizing %q: want %q at %d, got %q at %d", c.src, c.char, c.col, terr.Char, terr.Col)
		}
		if terr.Pos() != terr.Col {
			t.Errorf("tokenizing %q: Pos() is %d, not Col %d", c.src, terr.Pos(), terr.Col)
		}
	}
}

func TestTokenizeValueErrors(t *testing.T) {
	cases := []struct {
		src  string
		col  int
		text string
	}{
		{"1.2.3", 1, "1.2.3"},
		{"1+.", 3, "."},
		{"2*..5", 3, "..5"},
	}
	for _, c := range cases {
		_, err := Tokenize[float64](Float[float64]{}, c.src)
		var verr *ValueError
		if !errors.As(err, &verr) {
			t.Errorf("tokenizing %q: want *ValueError, got %#v", c.src, err)
			continue
		}
		if verr.Col != c.col || verr.Text != c.text || verr.Type != "f64" {
			t.Errorf("tokenizing %q: wrong error %+v", c.src, verr)
		}
	}
	_, err := Tokenize[uint8](Unsigned[uint8]{}, "256")
	var verr *ValueError
	if !errors.As(err, &verr) || verr.Type != "u8" {
		t.Errorf("tokenizing 256 as u8: want *ValueError for u8, got %#v", err)
	}
}
