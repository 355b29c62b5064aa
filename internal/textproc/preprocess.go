// Package textproc implements the regex-driven rewrite passes that work
// around systematic weaknesses of the Alpino tokenizing transducer:
// enumeration marking before interpretation, and quote/paren/dateline/dash
// fix-ups plus final sentence/token splitting afterward.
package textproc

import (
	"fmt"
	"regexp"
)

// firstEnumerationMarker matches "1. ... 2." so it can be rewritten to
// "1# ... 2.", disguising the first element of an enumeration from the
// transducer (which otherwise treats "1." as a sentence terminator).
var firstEnumerationMarker = regexp.MustCompile(`(\s?1)\.(\s.*?\W2\.)`)

// Preprocess marks enumerations ("1. foo, 2. bar en 3. baz") so the
// transducer preserves them instead of splitting sentences at each
// numbered item. It is idempotent: a second application of Preprocess to
// its own output is a no-op, because the leading pattern requires an
// unmarked "1.".
func Preprocess(text string) string {
	marked, changed := replaceIfMatched(firstEnumerationMarker, text, "$1#$2")
	if !changed {
		return text
	}

	for prev, next := 1, 2; ; prev, next = prev+1, next+1 {
		pattern := regexp.MustCompile(fmt.Sprintf(`(%d#\s.*?\W%d)\.(\s)`, prev, next))
		updated, ok := replaceIfMatched(pattern, marked, "$1#$2")
		if !ok {
			break
		}
		marked = updated
	}

	return marked
}

// replaceIfMatched applies re.ReplaceAllString and reports whether the
// result differs from text, which is cheaper than a second regexp match
// just to answer "did a substitution occur".
func replaceIfMatched(re *regexp.Regexp, text, repl string) (string, bool) {
	out := re.ReplaceAllString(text, repl)
	return out, out != text
}
