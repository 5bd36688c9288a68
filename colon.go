package switches

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNoProgress is returned when a colonstring parse stops making forward
// progress - unmatched text with no fallback configured, or a fallback that
// failed to consume anything.
var ErrNoProgress = errors.New("colonstrings: no progress")

// FallbackFn consumes a leading span of the remaining text and returns the
// hunk to record for it. Implementations must shorten *rest; a fallback that
// consumes nothing trips the no-progress guard.
type FallbackFn func(rest *string) Hunk

// ColonOptions configures ParseColonStrings.
// Configure at most one of Fallback or Literal; Fallback wins if both are set.
type ColonOptions struct {
	// Fallback is invoked on the unconsumed remainder whenever no
	// 'key:value' pattern matches at the current position.
	Fallback FallbackFn

	// Literal, if non-empty, installs a default fallback that consumes the
	// first whitespace-delimited word and records [Literal, word].
	Literal string
}

// ParseColonStrings greedily parses 'key:value(:value)*' hunks from text,
// quoting per the switch-string rules. Spans that match no hunk go to the
// configured fallback; with neither a fallback nor a literal tag configured,
// such a span makes no progress and the parse aborts with ErrNoProgress.
//
// Empty or whitespace-only input yields an empty, non-nil HunkList. A
// panicking fallback propagates to the caller uncaught.
func ParseColonStrings(input string, opts ColonOptions) (HunkList, error) {
	fallback := opts.Fallback
	if fallback == nil && opts.Literal != "" {
		fallback = literalFallback(opts.Literal)
	}
	hunks := make(HunkList, 0)
	rest := input
	last := ""
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return hunks, nil
		}
		// Abort rather than loop on zero progress
		//
		if rest == last {
			return nil, ErrNoProgress
		}
		last = rest
		if hunk, width, ok := matchHunk(rest); ok {
			hunks = append(hunks, hunk)
			rest = rest[width:]
			continue
		}
		if fallback != nil {
			if hunk := fallback(&rest); hunk != nil {
				hunks = append(hunks, hunk)
			}
		}
	}
}

// literalFallback consumes the first whitespace-delimited word and tags it.
//
func literalFallback(tag string) FallbackFn {
	return func(rest *string) Hunk {
		word := *rest
		if i := strings.IndexFunc(word, unicode.IsSpace); i >= 0 {
			word = word[:i]
			*rest = (*rest)[i:]
		} else {
			*rest = ""
		}
		return Hunk{tag, word}
	}
}

// matchHunk attempts to match one 'key(:value)+' hunk anchored at the start
// of rest, returning the hunk and the number of bytes consumed.
//
func matchHunk(rest string) (Hunk, int, bool) {
	l := lexHunkHead(rest)
	var (
		hunk  Hunk
		width int
		end   bool
	)
	for {
		t, err := l.Next()
		if err != nil {
			break // io.EOF - the hunk lexer emits no errors
		}
		switch t.Type() {
		case tokenHunkKey:
			hunk = Hunk{t.Value()}
			width = len(t.Value())
		case tokenHunkValue:
			hunk = append(hunk, t.Value())
			width += 1 + len(t.Value()) // ':' + value
		case tokenHunkQuoted:
			hunk = append(hunk, unquote(t.Value()))
			width += 1 + len(t.Value())
		case tokenHunkEnd:
			end = true
		}
	}
	if !end || len(hunk) < 2 {
		return nil, 0, false
	}
	return hunk, width, true
}
