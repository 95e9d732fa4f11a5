// Package classifier implements keyword-dictionary text classification.
// A text matches a category when any keyword of that category occurs as a
// case-insensitive contiguous substring of the text. No tokenization, word
// boundaries, or ranking are involved.
package classifier

import (
	"strings"
)

// Unclassified is the sentinel label for texts no category matched.
const Unclassified = "unclassified"

// labelSeparator joins matched category names into a single label.
const labelSeparator = ", "

// Category pairs a label with the keywords that trigger it.
type Category struct {
	Name     string
	Keywords []string
}

// Classify returns the label for text against the given categories: the
// names of all matched categories joined with ", " in the given order, or
// Unclassified when nothing matched. It is pure and deterministic; callers
// may pass the same snapshot any number of times.
func Classify(text string, categories []Category) string {
	lower := strings.ToLower(text)

	var matched []string
	for _, cat := range categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matched = append(matched, cat.Name)
				break
			}
		}
	}

	if len(matched) == 0 {
		return Unclassified
	}
	return strings.Join(matched, labelSeparator)
}

// IsClassified reports whether a label produced by Classify names at least
// one category.
func IsClassified(label string) bool {
	return label != Unclassified
}

// HasCategory reports whether a label produced by Classify contains the
// named category.
func HasCategory(label, category string) bool {
	if label == Unclassified {
		return false
	}
	for _, name := range strings.Split(label, labelSeparator) {
		if name == category {
			return true
		}
	}
	return false
}

// ParseKeywords splits raw newline-separated keyword input into a clean
// keyword set: surrounding whitespace trimmed, empty lines discarded,
// duplicates removed keeping first occurrence.
func ParseKeywords(raw string) []string {
	seen := make(map[string]struct{})
	var keywords []string
	for _, line := range strings.Split(raw, "\n") {
		kw := strings.TrimSpace(line)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}
	return keywords
}
