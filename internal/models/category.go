package models

// Category pairs a classification label with the keyword set that triggers
// it. Keywords match case-insensitively as contiguous substrings; the order
// of keywords within a category carries no meaning.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}
