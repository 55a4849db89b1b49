package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateBackfillsMissingFields(t *testing.T) {
	l := &Listing{ID: "1", Text: "Old record", City: "X"}

	changed := l.Migrate()

	assert.True(t, changed)
	assert.Equal(t, CategoryOther, l.Category)
	assert.Equal(t, ListingTypes(), l.Types)
	assert.False(t, l.Featured)
	assert.False(t, l.RequestedFeatured)
}

func TestMigrateLeavesCompleteRecordsAlone(t *testing.T) {
	l := &Listing{
		ID:       "1",
		Text:     "Current record",
		Category: "Livros",
		Types:    []string{TypeTrade},
	}

	assert.False(t, l.Migrate())
	assert.Equal(t, "Livros", l.Category)
	assert.Equal(t, []string{TypeTrade}, l.Types)
}

func TestMigrateListings(t *testing.T) {
	listings := []*Listing{
		{ID: "1", Category: "Livros", Types: []string{TypeSell}},
		{ID: "2"},
	}

	assert.True(t, MigrateListings(listings))
	assert.Equal(t, "Livros", listings[0].Category)
	assert.Equal(t, CategoryOther, listings[1].Category)
	assert.False(t, MigrateListings(listings))
}
