package lexer

import "testing"

func scanSource(source string) ([]Token, []LexError) {
	l := New(source)
	return l.ScanTokens()
}

func tokensToKinds(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func checkTokenKinds(t *testing.T, tokens []Token, expected []TokenKind) {
	t.Helper()
	got := tokensToKinds(tokens)
	if len(got) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(got), got)
	}
	for i, k := range expected {
		if got[i] != k {
			t.Errorf("token %d: expected %s, got %s", i, k, got[i])
		}
	}
}

func TestLexer_SingleCharTokens(t *testing.T) {
	tokens, errs := scanSource("{ } ; ( ) * + - , . :")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{
		LeftBrace, RightBrace, Semicolon, LeftParen, RightParen,
		Star, Plus, Minus, Comma, Dot, Colon, EOF,
	})
}

func TestLexer_TwoCharOperators(t *testing.T) {
	tokens, errs := scanSource("! != = == < <= > >=")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{
		Bang, BangEqual, Equal, EqualEqual, Less, LessEqual, Greater, GreaterEqual, EOF,
	})
}

func TestLexer_Keywords(t *testing.T) {
	source := "variable constant if else for while or and true false begin end mod subroutine lambda return prototype from public private"
	tokens, errs := scanSource(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{
		Variable, Constant, If, Else, For, While, Or, And, True, False,
		Begin, End, Mod, Subroutine, Lambda, Return, Prototype, From,
		Public, Private, EOF,
	})
}

func TestLexer_Identifiers(t *testing.T) {
	tokens, errs := scanSource("fib n_1 _private")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{Identifier, Identifier, Identifier, EOF})
	if tokens[0].Lexeme != "fib" {
		t.Errorf("expected lexeme fib, got %s", tokens[0].Lexeme)
	}
}

func TestLexer_Numbers(t *testing.T) {
	tokens, errs := scanSource("42 3.14 0.5")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{Number, Number, Number, EOF})
	if tokens[1].Lexeme != "3.14" {
		t.Errorf("expected lexeme 3.14, got %s", tokens[1].Lexeme)
	}
}

func TestLexer_NumbersHaveNoUnderscoresOrScientificNotation(t *testing.T) {
	// "1_000" lexes as Number(1) then Identifier(_000); "1e5" lexes as
	// Number(1) then Identifier(e5) -- Wick numbers are plain digit runs.
	tokens, _ := scanSource("1_000")
	checkTokenKinds(t, tokens, []TokenKind{Number, Identifier, EOF})

	tokens, _ = scanSource("1e5")
	checkTokenKinds(t, tokens, []TokenKind{Number, Identifier, EOF})
}

func TestLexer_StringLiteral(t *testing.T) {
	tokens, errs := scanSource(`"hello world"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{String, EOF})
	if tokens[0].Literal != "hello world" {
		t.Errorf("expected literal %q, got %q", "hello world", tokens[0].Literal)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	tokens, errs := scanSource(`"hello`)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{String, EOF})
}

func TestLexer_Comments(t *testing.T) {
	tokens, errs := scanSource("variable x = 1; // trailing comment\n/: block\ncomment :/ variable y = 2;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{
		Variable, Identifier, Equal, Number, Semicolon,
		Variable, Identifier, Equal, Number, Semicolon, EOF,
	})
}

func TestLexer_UnknownCharacter(t *testing.T) {
	tokens, errs := scanSource("variable x = 1 ~ 2;")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	checkTokenKinds(t, tokens, []TokenKind{
		Variable, Identifier, Equal, Number, Error, Number, Semicolon, EOF,
	})
}

func TestLexer_PositionsAreOneBasedAtLexemeStart(t *testing.T) {
	tokens, _ := scanSource("variable\n  x = 1;")
	// "variable" -> line 1, col 1
	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("expected (1,1), got (%d,%d)", tokens[0].Line, tokens[0].Column)
	}
	// "x" is on line 2, after two spaces -> col 3
	if tokens[1].Line != 2 || tokens[1].Column != 3 {
		t.Errorf("expected (2,3), got (%d,%d)", tokens[1].Line, tokens[1].Column)
	}
}
