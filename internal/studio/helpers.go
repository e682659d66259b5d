package studio

import "fmt"

// truncate cuts a string to maxLen runes and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// nextOption returns the element after current in options, wrapping
// around. Unknown values restart at the first option.
func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// formatHeap renders a byte count as a short MB figure for the footer.
func formatHeap(bytes uint64) string {
	mb := float64(bytes) / (1024 * 1024)
	if mb >= 100 {
		return fmt.Sprintf("%.0fMB", mb)
	}
	return fmt.Sprintf("%.1fMB", mb)
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
