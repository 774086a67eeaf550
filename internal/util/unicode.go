package util

import (
	"strings"
	"unicode"
)

// RTLTable holds the right-to-left blocks of modern scripts:
//
//	U+0590..U+083F  Hebrew, Arabic, Syriac, Arabic Supplement, Thaana, N'Ko, Samaritan
//	U+08A0..U+08FF  Arabic Extended-A
//	U+FB1D..U+FDFF  Hebrew and Arabic presentation forms A
//	U+FE70..U+FEFF  Arabic presentation forms B
var RTLTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0590, Hi: 0x083F, Stride: 1},
		{Lo: 0x08A0, Hi: 0x08FF, Stride: 1},
		{Lo: 0xFB1D, Hi: 0xFDFF, Stride: 1},
		{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1},
	},
}

// IsRTL reports whether r falls in one of the RTL blocks.
func IsRTL(r rune) bool {
	return unicode.Is(RTLTable, r)
}

// CountRTL counts the code points of text that fall in RTLTable.
func CountRTL(text string) int {
	count := 0
	for _, r := range text {
		if IsRTL(r) {
			count++
		}
	}
	return count
}

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// IsSpace matches the JavaScript \s class: unicode.IsSpace plus the byte
// order mark, minus NEL (U+0085).
func IsSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// TrimSpace removes leading and trailing whitespace as defined by IsSpace.
func TrimSpace(text string) string {
	return strings.TrimFunc(text, IsSpace)
}
