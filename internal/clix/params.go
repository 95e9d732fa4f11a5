package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseKeywords reads the comma-separated "keywords" flag, trimming each
// entry and dropping empties.
func ParseKeywords(flags *pflag.FlagSet) ([]string, error) {
	raw, _ := flags.GetString("keywords")
	var keywords []string
	if raw != "" {
		for _, kw := range strings.Split(raw, ",") {
			trimmed := strings.TrimSpace(kw)
			if trimmed != "" {
				keywords = append(keywords, trimmed)
			}
		}
	}
	return keywords, nil
}

// ParseFilter reads the "filter" flag and normalizes the empty value to
// "all".
func ParseFilter(flags *pflag.FlagSet) (string, error) {
	filter, _ := flags.GetString("filter")
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return "all", nil
	}
	return filter, nil
}

// ParsePreviewRows reads the "preview" flag; negative values are rejected.
func ParsePreviewRows(flags *pflag.FlagSet) (int, error) {
	n, _ := flags.GetInt("preview")
	if n < 0 {
		return 0, fmt.Errorf("preview rows cannot be negative: %d", n)
	}
	return n, nil
}
