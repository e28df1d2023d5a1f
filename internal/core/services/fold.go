package services

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldFunc maps a string onto its case-folded form. The same function
// is applied to both the line and the pattern before comparison.
type FoldFunc func(string) string

// ASCIIFold lowercases A-Z and leaves every other byte untouched.
func ASCIIFold(s string) string {
	i := 0
	for i < len(s) && (s[i] < 'A' || s[i] > 'Z') {
		i++
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// UnicodeFold applies full Unicode case folding.
func UnicodeFold(s string) string {
	// A Caser holds state, so one is made per call.
	return cases.Fold().String(s)
}

// CaseInsensitiveContains reports whether the folded needle is a
// contiguous substring of the folded haystack. An empty needle matches
// every haystack.
func CaseInsensitiveContains(haystack, needle string, fold FoldFunc) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold(haystack), fold(needle))
}
