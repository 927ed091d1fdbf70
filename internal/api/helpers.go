package api

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	domainerrors "github.com/storefrontapp/storefront-server/internal/errors"
)

// splitCSV parses a comma-separated list parameter into trimmed,
// order-preserved values. Empty segments are dropped.
func splitCSV(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// parseLimit parses the limit parameter as a base-10 integer. Absent,
// invalid, or negative values mean "no explicit limit".
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// checkLocale rejects locales that are not well-formed BCP 47 tags
// before any network call is made.
func checkLocale(locale string) error {
	if _, err := language.Parse(locale); err != nil {
		return domainerrors.Validationf("Invalid locale: %s", locale)
	}
	return nil
}
