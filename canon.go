package switches

import "golang.org/x/text/cases"

// CanonicalizeNames rewrites each switch name in place to its fold-cased
// form, or to the alias mapped by the fold-cased form when one exists.
// Arguments are never touched and the rewrite never fails.
func (l SwitchList) CanonicalizeNames(aliases map[string]string) {
	for _, s := range l {
		canonicalizeName(s, aliases)
	}
}

// CanonicalizeNames rewrites each hunk key in place, as for SwitchList.
func (l HunkList) CanonicalizeNames(aliases map[string]string) {
	for _, h := range l {
		canonicalizeName(h, aliases)
	}
}

// canonicalizeName rewrites element 0 with full Unicode case-folding plus
// alias substitution. The caser is built per call: x/text casers are
// stateful and must not be shared between goroutines.
//
func canonicalizeName(entry []string, aliases map[string]string) {
	if len(entry) == 0 {
		return
	}
	name := cases.Fold().String(entry[0])
	if canon, ok := aliases[name]; ok {
		name = canon
	}
	entry[0] = name
}
