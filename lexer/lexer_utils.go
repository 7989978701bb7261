/*
File    : snlc/lexer/lexer_utils.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package lexer

import "unicode"

const (
	nextLine        = ''
	leftToRightMark = '‎'
	rightToLeftMark = '‏'
	lineSeparator   = ' '
	paraSeparator   = ' '
)

// isWhitespace reports whether r is Pattern_White_Space: the usual ASCII
// suspects plus a handful of Unicode bidi/line-separator marks, and
// nothing else (no-break space and the other Unicode space separators are
// not whitespace here).
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		nextLine, leftToRightMark, rightToLeftMark, lineSeparator, paraSeparator:
		return true
	}
	return false
}

// isIDStart reports whether r may begin an identifier: '_' or any rune
// unicode.IsLetter accepts. This approximates XID_Start with the stdlib;
// letter numbers (category Nl) are not accepted.
func isIDStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIDContinue reports whether r may continue an identifier begun by
// isIDStart: '_', a letter, or a decimal digit. This approximates
// XID_Continue with the stdlib; combining marks and connector punctuation
// other than '_' are not accepted.
func isIDContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isASCIIDigit reports whether r is an ASCII decimal digit.
func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
