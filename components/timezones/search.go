package timezones

import (
	"cmp"
	"slices"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
)

// Search returns zones containing query, case-insensitively. Prefix matches
// rank ahead of other matches; ties sort by name.
func Search(zones []string, query string, limit int, cfg Config) []string {
	cfg = cfg.normalized()
	limit = cfg.limit(limit)
	if limit == 0 {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if cfg.EmptySearch != EmptySearchTop {
			return nil
		}
		return slices.Clone(zones[:min(limit, len(zones))])
	}

	type match struct {
		zone   string
		prefix bool
	}
	var matches []match
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		if strings.Contains(lower, query) {
			matches = append(matches, match{zone: zone, prefix: strings.HasPrefix(lower, query)})
		}
	}

	slices.SortStableFunc(matches, func(a, b match) int {
		if a.prefix != b.prefix {
			if a.prefix {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.zone, b.zone)
	})

	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		out = append(out, m.zone)
	}
	return out
}

// Choices converts zones into select choices labelled by the zone name.
func Choices(zones []string) []helpers.Choice {
	out := make([]helpers.Choice, 0, len(zones))
	for _, zone := range zones {
		out = append(out, helpers.Choice{Value: zone, Text: zone})
	}
	return out
}

// SearchChoices is Search followed by Choices.
func SearchChoices(zones []string, query string, limit int, cfg Config) []helpers.Choice {
	return Choices(Search(zones, query, limit, cfg))
}
