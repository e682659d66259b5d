package storyboard

import (
	"strings"
	"unicode"
)

// maxLineChars is the widest a display line may be before it is broken
// on word boundaries.
const maxLineChars = 32

// FormatLyrics strips blank lines and breaks long lines into display
// lines, applying RTL handling to Persian text.
func FormatLyrics(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		out = append(out, BreakLine(stripped, maxLineChars)...)
	}
	return out
}

// BreakLine splits a line into chunks of at most maxChars runes, breaking
// on word boundaries, and applies RTL handling to each chunk.
func BreakLine(line string, maxChars int) []string {
	if len([]rune(line)) <= maxChars {
		return []string{ApplyRTL(line)}
	}

	var lines []string
	var bucket []string
	bucketLen := 0
	for _, word := range strings.Fields(line) {
		wordLen := len([]rune(word))
		// Account for the separating spaces already in the bucket.
		if bucketLen+len(bucket)+wordLen > maxChars && len(bucket) > 0 {
			lines = append(lines, ApplyRTL(strings.Join(bucket, " ")))
			bucket = []string{word}
			bucketLen = wordLen
		} else {
			bucket = append(bucket, word)
			bucketLen += wordLen
		}
	}
	if len(bucket) > 0 {
		lines = append(lines, ApplyRTL(strings.Join(bucket, " ")))
	}
	return lines
}

// IsPersian reports whether the line contains Arabic-block characters
// (U+0600 through U+06FF).
func IsPersian(line string) bool {
	for _, r := range line {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// ApplyRTL reverses the rune order of Persian lines so a renderer that
// draws strictly left-to-right displays them in reading order. Non-Persian
// lines pass through untouched.
func ApplyRTL(line string) string {
	if !IsPersian(line) {
		return line
	}
	runes := []rune(line)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// WordCount counts whitespace-separated words.
func WordCount(line string) int {
	return len(strings.FieldsFunc(line, unicode.IsSpace))
}
