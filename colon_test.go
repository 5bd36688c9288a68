package switches

import (
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColonStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  ColonOptions
		want  HunkList
	}{
		{
			name:  "empty input",
			input: "",
			opts:  ColonOptions{},
			want:  HunkList{},
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			opts:  ColonOptions{},
			want:  HunkList{},
		},
		{
			name:  "single hunk",
			input: "foo:bar",
			opts:  ColonOptions{},
			want:  HunkList{{"foo", "bar"}},
		},
		{
			name:  "multiple values",
			input: "foo:bar:baz:quux",
			opts:  ColonOptions{},
			want:  HunkList{{"foo", "bar", "baz", "quux"}},
		},
		{
			name:  "trailing whitespace after hunk",
			input: "foo:bar ",
			opts:  ColonOptions{},
			want:  HunkList{{"foo", "bar"}},
		},
		{
			name:  "quoted value at end of input",
			input: `foo:"a b"`,
			opts:  ColonOptions{},
			want:  HunkList{{"foo", "a b"}},
		},
		{
			name:  "literal fallback tags loose words",
			input: `foo:bar baz quux:"Trail Mix"`,
			opts:  ColonOptions{Literal: "other"},
			want:  HunkList{{"foo", "bar"}, {"other", "baz"}, {"quux", "Trail Mix"}},
		},
		{
			name:  "only loose words",
			input: "one two",
			opts:  ColonOptions{Literal: "word"},
			want:  HunkList{{"word", "one"}, {"word", "two"}},
		},
		{
			name:  "smart quoted value",
			input: "note:“left right”",
			opts:  ColonOptions{},
			want:  HunkList{{"note", "left right"}},
		},
		{
			name:  "escaped quote in value",
			input: `note:"say \" it"`,
			opts:  ColonOptions{},
			want:  HunkList{{"note", `say " it`}},
		},
		{
			name:  "quoted and bare values mixed",
			input: `set:"a b":c`,
			opts:  ColonOptions{},
			want:  HunkList{{"set", "a b", "c"}},
		},
		{
			name:  "non-ascii quoted value",
			input: "tag:“naïve”",
			opts:  ColonOptions{},
			want:  HunkList{{"tag", "naïve"}},
		},
		{
			name:  "underscore and digits in key",
			input: "a_1:x",
			opts:  ColonOptions{},
			want:  HunkList{{"a_1", "x"}},
		},
		{
			name:  "dangling colon goes to fallback",
			input: "foo:bar: next:1",
			opts:  ColonOptions{Literal: "other"},
			want:  HunkList{{"other", "foo:bar:"}, {"next", "1"}},
		},
		{
			name:  "unclosed quote goes to fallback",
			input: `foo:"oops next:1`,
			opts:  ColonOptions{Literal: "other"},
			want:  HunkList{{"other", `foo:"oops`}, {"next", "1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColonStrings(tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColonStringsCustomFallback(t *testing.T) {
	shout := func(rest *string) Hunk {
		word := *rest
		if i := strings.IndexFunc(word, unicode.IsSpace); i >= 0 {
			word = word[:i]
			*rest = (*rest)[i:]
		} else {
			*rest = ""
		}
		return Hunk{"!", strings.ToUpper(word)}
	}
	got, err := ParseColonStrings("foo:1 shazam bar:2", ColonOptions{Fallback: shout})
	require.NoError(t, err)
	assert.Equal(t, HunkList{{"foo", "1"}, {"!", "SHAZAM"}, {"bar", "2"}}, got)
}

func TestParseColonStringsNoFallbackNoProgress(t *testing.T) {
	got, err := ParseColonStrings("foo:bar ???", ColonOptions{})
	require.ErrorIs(t, err, ErrNoProgress)
	assert.Nil(t, got)
}

// A fallback that consumes nothing must trip the guard, not hang.
//
func TestParseColonStringsStalledFallback(t *testing.T) {
	stalled := func(rest *string) Hunk {
		return Hunk{"noop", *rest}
	}
	done := make(chan error, 1)
	go func() {
		_, err := ParseColonStrings("foo:bar nope", ColonOptions{Fallback: stalled})
		done <- err
	}()
	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrNoProgress)
	case <-time.After(5 * time.Second):
		t.Fatal("colonstring parse did not terminate")
	}
}

func TestHunkAccessors(t *testing.T) {
	h := Hunk{"foo", "bar", "baz"}
	assert.Equal(t, "foo", h.Key())
	assert.Equal(t, []string{"bar", "baz"}, h.Values())
}
