// Package switches parses command-style switch strings and search-bar-style
// colonstrings into ordered lists of string units.
//
// A switch string looks like:
//
//	/coffee /milk soy /brand "Blind Tiger"
//
// and parses into one Switch per '/command', each carrying its trailing
// arguments. A colonstring looks like:
//
//	foo:bar quux:"Trail Mix"
//
// and parses into one Hunk per key:value run, with non-matching spans handed
// to a caller-supplied fallback.
//
// Quoting is identical in both grammars: double-quoted runs delimited by
// ASCII '"' or the smart-quote glyphs '“'/'”', with backslash-escaped quote
// characters allowed inside.
package switches

// Switch is one parsed '/command arg...' unit.
// The first element is the command name, the rest are its arguments.
type Switch []string

// Name returns the command name.
func (s Switch) Name() string {
	return s[0]
}

// Args returns the arguments, in input order.
func (s Switch) Args() []string {
	return s[1:]
}

// SwitchList is an ordered list of switches, in input order.
type SwitchList []Switch

// Hunk is one parsed 'key:value...' unit, or one fallback-produced unit.
// The first element is the key, the rest are its values.
type Hunk []string

// Key returns the hunk key.
func (h Hunk) Key() string {
	return h[0]
}

// Values returns the values, in input order.
func (h Hunk) Values() []string {
	return h[1:]
}

// HunkList is an ordered list of hunks, in input order.
type HunkList []Hunk
