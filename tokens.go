package switches

import (
	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"
)

// We define our lexer tokens starting from the pre-defined START token
//
const (
	tokenCommand token.Type = lexer.TStart + iota

	tokenLiteral
	tokenQuoted

	tokenHunkKey
	tokenHunkValue
	tokenHunkQuoted
	tokenHunkEnd
)
