package switches

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeNamesHunks(t *testing.T) {
	hunks := HunkList{{"URGENCY", "high"}}
	hunks.CanonicalizeNames(map[string]string{"urgency": "priority"})
	assert.Equal(t, HunkList{{"priority", "high"}}, hunks)
}

func TestCanonicalizeNamesSwitches(t *testing.T) {
	list := SwitchList{
		{"COFFEE", "black"},
		{"Milk", "soy"},
	}
	list.CanonicalizeNames(map[string]string{"coffee": "espresso"})
	assert.Equal(t, SwitchList{
		{"espresso", "black"},
		{"milk", "soy"},
	}, list)
}

func TestCanonicalizeNamesIdempotent(t *testing.T) {
	aliases := map[string]string{"urgency": "priority"}
	once := HunkList{{"URGENCY", "high"}, {"Note", "x"}}
	once.CanonicalizeNames(aliases)
	twice := HunkList{{"URGENCY", "high"}, {"Note", "x"}}
	twice.CanonicalizeNames(aliases)
	twice.CanonicalizeNames(aliases)
	assert.Equal(t, once, twice)
}

// Full case folding, not ASCII lowercasing: 'ß' folds to "ss".
//
func TestCanonicalizeNamesUnicodeFold(t *testing.T) {
	hunks := HunkList{{"Straße", "x"}}
	hunks.CanonicalizeNames(nil)
	assert.Equal(t, HunkList{{"strasse", "x"}}, hunks)

	aliased := HunkList{{"GRÖSSE", "y"}}
	aliased.CanonicalizeNames(map[string]string{"grösse": "size"})
	assert.Equal(t, HunkList{{"size", "y"}}, aliased)
}

func TestCanonicalizeNamesDegenerateEntries(t *testing.T) {
	hunks := HunkList{{}, {""}, {"OK", "v"}}
	hunks.CanonicalizeNames(map[string]string{})
	assert.Equal(t, HunkList{{}, {""}, {"ok", "v"}}, hunks)
}
