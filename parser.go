package switches

import (
	"fmt"
	"io"

	"github.com/tekwizely/go-parsing/parser"
)

// parseFn
//
type parseFn func(*parseContext, *parser.Parser) parseFn

// parseContext
//
type parseContext struct {
	switches SwitchList
	fn       parseFn
}

// parse delegates incoming parser calls to the configured fn
//
func (ctx *parseContext) parse(p *parser.Parser) parser.Fn {
	fn := ctx.fn
	// EOF?
	//
	if fn == nil {
		return nil
	}
	ctx.fn = fn(ctx, p)
	return ctx.parse
}

// ParseSwitches parses a switch string into a SwitchList.
//
// Empty or whitespace-only input yields an empty list and no error. On error
// the list is nil; the error text is user-facing diagnostic only and must
// not be matched for control flow.
func ParseSwitches(input string) (list SwitchList, err error) {
	// Grouping errors are raised as panics; surface them as plain errors
	//
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			list, err = nil, e
		}
	}()
	l := lexSwitchString(input)
	ctx := &parseContext{switches: make(SwitchList, 0), fn: parseSwitch}
	if _, err = parser.Parse(l, ctx.parse).Next(); err != nil && err != io.EOF { // No emits
		return nil, err
	}
	// Lexer diagnostics are trapped on the context, not the parse stream
	//
	if l.err != nil {
		return nil, l.err
	}
	return ctx.switches, nil
}

// parseSwitch groups the token stream into switches: a command token starts
// a new switch, literal tokens append to the most recently started one.
//
func parseSwitch(ctx *parseContext, p *parser.Parser) parseFn {
	if !p.CanPeek(1) {
		return nil
	}
	switch p.PeekType(1) {
	case tokenCommand:
		ctx.switches = append(ctx.switches, Switch{p.Next().Value()})
	case tokenQuoted, tokenLiteral:
		if len(ctx.switches) == 0 {
			panic(parseError(p, "text with no switch"))
		}
		t := p.Next()
		value := t.Value()
		if t.Type() == tokenQuoted {
			value = unquote(value)
		}
		last := len(ctx.switches) - 1
		ctx.switches[last] = append(ctx.switches[last], value)
	default:
		panic(parseError(p, "incomprehensible input"))
	}
	p.Clear()
	return parseSwitch
}

// parseError
//
func parseError(p *parser.Parser, msg string) error {
	// If a token is available, use it for line/column
	//
	if p.CanPeek(1) {
		t := p.Peek(1)
		return fmt.Errorf("%d.%d: %s", t.Line(), t.Column(), msg)
	}
	return fmt.Errorf("<eof>: %s", msg)
}
