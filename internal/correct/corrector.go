// Package correct turns the raw text a recognition engine emits for one
// cell into a validated digit 1-9, or reports that no digit was read.
package correct

import "strings"

// corrections maps characters the engine commonly misreads to the digit
// they almost certainly were. A puzzle never contains the symbol zero, so
// "0" and "O" inside a non-blank cell are read as a misrecognized 9.
// Callers with a genuine 0-9 domain must not reuse this table.
var corrections = map[rune]int{
	'l': 1, 'I': 1, 'i': 1, '|': 1, '!': 1, ']': 1, '/': 1,
	'Z': 2, 'z': 2,
	'A': 4,
	'S': 5, 's': 5,
	'G': 6, 'b': 6,
	'T': 7, '?': 7,
	'B': 8, '&': 8,
	'g': 9, 'q': 9, 'O': 9, 'o': 9, '0': 9,
}

// Digit maps raw recognized text to a digit 1-9. Strategies run in strict
// priority order, first success wins:
//
//  1. the trimmed text is exactly one digit 1-9;
//  2. the first digit 1-9 anywhere in the trimmed text;
//  3. the first character with a known misread correction.
//
// Returns ok=false for empty input or when no strategy matches.
func Digit(text string) (int, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, false
	}

	runes := []rune(t)
	if len(runes) == 1 && runes[0] >= '1' && runes[0] <= '9' {
		return int(runes[0] - '0'), true
	}

	for _, r := range runes {
		if r >= '1' && r <= '9' {
			return int(r - '0'), true
		}
	}

	for _, r := range runes {
		if d, ok := corrections[r]; ok {
			return d, true
		}
	}

	return 0, false
}
