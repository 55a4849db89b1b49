package service

import (
	"sort"
	"strings"

	"swapbook/internal/domain/entity"
)

// FeedParams are the browse filters. Zero values mean "no filter",
// except City, which callers normally pin to the session city.
type FeedParams struct {
	Search   string
	Category string
	Type     string
	City     string
}

// Feed derives the visible subset of listings: all predicates apply
// conjunctively, then featured listings are moved first while the
// input order (creation descending) is preserved among equals. The
// input slice is not modified. Listing counts are small, so the feed
// is recomputed from scratch on every call.
func Feed(listings []*entity.Listing, params FeedParams) []*entity.Listing {
	search := strings.ToLower(params.Search)

	result := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if params.City != "" && l.City != params.City {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(l.Text), search) {
			continue
		}
		if params.Category != "" && params.Category != entity.CategoryAll && l.Category != params.Category {
			continue
		}
		if params.Type != "" && !l.HasType(params.Type) {
			continue
		}
		result = append(result, l)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Featured && !result[j].Featured
	})

	return result
}
