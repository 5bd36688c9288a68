package switches

import (
	"unicode"
	"unicode/utf8"

	"github.com/tekwizely/go-parsing/lexer"
)

// Runes
//
const (
	runeSlash     = '/'
	runeDash      = '-'
	runeColon     = ':'
	runeBackSlash = '\\'
	runeDQuote    = '"'
	runeLSmart    = '“' // '“'
	runeRSmart    = '”' // '”'
)

// isQuoteOpen matches the quote characters that may open a quoted string.
//
func isQuoteOpen(r rune) bool {
	return r == runeDQuote || r == runeLSmart
}

// isQuoteClose matches the quote characters that may close a quoted string.
//
func isQuoteClose(r rune) bool {
	return r == runeDQuote || r == runeRSmart
}

// isQuote matches any quote character, open or close.
//
func isQuote(r rune) bool {
	return r == runeDQuote || r == runeLSmart || r == runeRSmart
}

// isCommandRune matches the characters permitted in a command name.
// ASCII lowercase and dash only - this is a deliberate restriction.
//
func isCommandRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || r == runeDash
}

// isWordRune matches the characters permitted in a colonstring key.
//
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isColonValueRune matches the characters permitted in an unquoted colonstring value.
//
func isColonValueRune(r rune) bool {
	return r != runeColon && !isQuote(r) && !unicode.IsSpace(r)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// tryPeekRune tries to peek the next rune
//
func tryPeekRune(l *lexer.Lexer) (rune, bool) {
	if l.CanPeek(1) {
		return l.Peek(1), true
	}
	return utf8.RuneError, false
}

func peekRuneEquals(l *lexer.Lexer, r rune) bool {
	return l.CanPeek(1) && l.Peek(1) == r
}

// peekSpaceOrEOF answers whether the current position is a token boundary.
//
func peekSpaceOrEOF(l *lexer.Lexer) bool {
	return !l.CanPeek(1) || isSpace(l.Peek(1))
}
