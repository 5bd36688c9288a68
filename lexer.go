package switches

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"
)

// lexFn is a lexer fn that takes a context
//
type lexFn func(*lexContext, *lexer.Lexer) lexFn

// lexContext tracks the active lexer fn and fronts the token stream.
// Stream errors are trapped on err rather than passed through: the parser
// layer does not surface non-EOF errors from its token source, so
// diagnostics must travel out-of-band.
//
type lexContext struct {
	fn  lexFn
	src token.Nexter
	err error
}

// Next implements token.Nexter, capturing the first error from the stream
// and presenting EOF in its place. Callers drain the stream, then check err.
//
func (ctx *lexContext) Next() (token.Token, error) {
	if ctx.err != nil {
		return nil, io.EOF
	}
	t, err := ctx.src.Next()
	if err != nil && err != io.EOF {
		ctx.err = err
		return nil, io.EOF
	}
	return t, err
}

// lex delegates incoming lexer calls to the configured fn
//
func (ctx *lexContext) lex(l *lexer.Lexer) lexer.Fn {
	fn := ctx.fn
	// EOF ?
	//
	if fn == nil {
		return nil
	}
	ctx.fn = fn(ctx, l)
	return ctx.lex
}

// lexSwitchString initiates the lexer against a switch string.
//
func lexSwitchString(input string) *lexContext {
	ctx := &lexContext{fn: lexMain}
	ctx.src = lexer.LexString(input, ctx.lex)
	return ctx
}

// lexHunkHead initiates the lexer against the head of a colonstring remainder.
//
func lexHunkHead(input string) *lexContext {
	ctx := &lexContext{fn: lexHunk}
	ctx.src = lexer.LexString(input, ctx.lex)
	return ctx
}

// lexMain is the primary lexer entry point for switch strings
//
func lexMain(_ *lexContext, l *lexer.Lexer) lexFn {
	// EOF
	//
	if !l.CanPeek(1) {
		return nil
	}
	switch {
	// Whitespace run
	//
	case matchOneOrMore(l, isSpace):
		l.Clear() // Discard
	// '/command', or a bogus '/...' run
	//
	case peekRuneEquals(l, runeSlash):
		return lexSlash
	// Quoted or bare literal
	//
	default:
		return lexLiteral
	}
	return lexMain
}

// lexSlash matches: [ '/' [-a-z]+ (ws|EOF) ]
// A slash followed by anything else is a hard error: either a malformed
// command name or a slash with no command at all.
//
func lexSlash(_ *lexContext, l *lexer.Lexer) lexFn {
	matchRune(l, runeSlash)
	l.Clear() // Discard the slash
	m := l.Marker()
	if matchOneOrMore(l, isCommandRune) && peekSpaceOrEOF(l) {
		l.EmitToken(tokenCommand)
		return lexMain
	}
	m.Apply()
	if peekSpaceOrEOF(l) {
		l.EmitError("bogus input: / with no command!")
		return nil
	}
	matchOneOrMore(l, isNotSpace)
	l.EmitError(fmt.Sprintf("bogus /command: /%s", l.PeekToken()))
	return nil
}

// lexLiteral matches a quoted string or a bare word, each followed by a
// token boundary. A quoted run that fails to terminate cleanly is re-matched
// as a bare word.
//
func lexLiteral(_ *lexContext, l *lexer.Lexer) lexFn {
	// Quoted literal
	//
	if l.CanPeek(1) && isQuoteOpen(l.Peek(1)) {
		m := l.Marker()
		if matchQuoted(l) && peekSpaceOrEOF(l) {
			l.EmitToken(tokenQuoted)
			return lexMain
		}
		m.Apply()
	}
	// Bare literal
	//
	if matchOneOrMore(l, isNotSpace) {
		if strings.ContainsRune(l.PeekToken(), runeSlash) {
			l.EmitError("unquoted arguments may not contain slash")
			return nil
		}
		l.EmitToken(tokenLiteral)
		return lexMain
	}
	l.EmitError("incomprehensible input")
	return nil
}

// matchQuoted matches a quoted run delimited by straight or smart double
// quotes. Either opening glyph may pair with either closing glyph. Inside,
// a backslash escapes any quote character; raw control characters and
// unescaped quote characters end the match as a failure, as does EOF before
// a closing quote. The body must be non-empty.
// On failure the lexer is left where matching stopped - callers wanting to
// rewind must hold a marker.
//
func matchQuoted(l *lexer.Lexer) bool {
	if !matchOne(l, isQuoteOpen) {
		return false
	}
	body := false
	for l.CanPeek(1) {
		r := l.Peek(1)
		switch {
		// Escaped quote - '\' + any quote character
		//
		case r == runeBackSlash && l.CanPeek(2) && isQuote(l.Peek(2)):
			l.Next()
			l.Next()
			body = true
		// Closing quote
		//
		case isQuoteClose(r):
			if !body {
				return false
			}
			l.Next()
			return true
		// Unescaped quote or control character
		//
		case isQuote(r) || unicode.IsControl(r):
			return false
		default:
			l.Next()
			body = true
		}
	}
	return false
}

// unquote strips the delimiting quotes from a run matched by matchQuoted and
// resolves backslash-escaped quote characters. Both parsers funnel their
// quoted values through here so quoting semantics stay consistent.
//
func unquote(s string) string {
	_, openW := utf8.DecodeRuneInString(s)
	_, closeW := utf8.DecodeLastRuneInString(s)
	s = s[openW : len(s)-closeW]
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if r == runeBackSlash {
			if q, qw := utf8.DecodeRuneInString(s[i+w:]); isQuote(q) {
				b.WriteRune(q)
				i += w + qw
				continue
			}
		}
		b.WriteRune(r)
		i += w
	}
	return b.String()
}

// lexHunk matches the head of [ word (':' value)+ (ws|EOF) ], emitting the
// key. Emits nothing if the input does not start with a keyed hunk.
//
func lexHunk(_ *lexContext, l *lexer.Lexer) lexFn {
	if !matchOneOrMore(l, isWordRune) || !peekRuneEquals(l, runeColon) {
		return nil
	}
	l.EmitToken(tokenHunkKey)
	return lexHunkValues
}

// lexHunkValues matches the ':'-led values of a hunk, one token per value.
// tokenHunkEnd is emitted only when the value run ends on a clean token
// boundary - a dangling colon or a stray trailing character fails the
// whole hunk. The whole value run is lexed in a single invocation: the
// lexer never calls back in once input is exhausted, so the end token must
// go out before we return.
//
func lexHunkValues(_ *lexContext, l *lexer.Lexer) lexFn {
	for matchRune(l, runeColon) {
		l.Clear() // Discard the colon
		// Quoted value
		//
		if l.CanPeek(1) && isQuoteOpen(l.Peek(1)) {
			m := l.Marker()
			if matchQuoted(l) {
				l.EmitToken(tokenHunkQuoted)
				continue
			}
			m.Apply()
		}
		// Bare value
		//
		if matchOneOrMore(l, isColonValueRune) {
			l.EmitToken(tokenHunkValue)
			continue
		}
		// ':' with no value
		//
		return nil
	}
	if peekSpaceOrEOF(l) {
		l.EmitType(tokenHunkEnd)
	}
	return nil
}
