package switches

import "github.com/tekwizely/go-parsing/lexer"

type runeFn func(rune) bool

// matchRune attempts to match the next rune to one specified, returning success or failure.
//
func matchRune(l *lexer.Lexer, runes ...rune) bool {
	if p, ok := tryPeekRune(l); ok {
		for _, r := range runes {
			if r == p {
				l.Next()
				return true
			}
		}
	}
	return false
}

// matchOne attempts to match one of the specified predicate, returning success or failure.
//
func matchOne(l *lexer.Lexer, fn runeFn) bool {
	if l.CanPeek(1) && fn(l.Peek(1)) {
		l.Next()
		return true
	}
	return false
}

// matchOneOrMore attempts to match one or more of the specified predicate, returning success or failure.
//
func matchOneOrMore(l *lexer.Lexer, fn runeFn) bool {
	b := false
	for l.CanPeek(1) && fn(l.Peek(1)) {
		l.Next()
		b = true
	}
	return b
}
