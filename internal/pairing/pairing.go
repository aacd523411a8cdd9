// Package pairing holds the pure lookup tables behind bracket and quote
// auto-pairing. Insert consults them to auto-close openers and skip over
// typed closers, Backspace to delete an adjacent pair atomically, and Enter
// to decide whether to open an indented block.
package pairing

var closers = map[rune]rune{
	'{':  '}',
	'(':  ')',
	'[':  ']',
	'\'': '\'',
	'"':  '"',
	'`':  '`',
}

var openers = map[rune]rune{
	'}':  '{',
	')':  '(',
	']':  '[',
	'\'': '\'',
	'"':  '"',
	'`':  '`',
}

// Closeable returns the matching closer for an opener. Quote characters pair
// with themselves.
func Closeable(c rune) (rune, bool) {
	closer, ok := closers[c]
	return closer, ok
}

// Openeable is the inverse lookup from a closer to its opener.
func Openeable(c rune) (rune, bool) {
	opener, ok := openers[c]
	return opener, ok
}

// IsBracePair reports whether a and b form {}, () or []. Quotes do not
// count: only brace pairs open a block on Enter.
func IsBracePair(a, b rune) bool {
	switch a {
	case '{', '(', '[':
		return closers[a] == b
	}
	return false
}

// IsPair reports whether a and b form a brace pair or a matching pair of
// identical quote characters.
func IsPair(a, b rune) bool {
	if IsBracePair(a, b) {
		return true
	}
	switch a {
	case '\'', '"', '`':
		return a == b
	}
	return false
}
