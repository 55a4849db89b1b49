package entity

// ListingSchemaVersion is the current shape of the locally cached
// listing set. Version 1 predates the category, types and featured
// fields; loading an older cache runs the migration once and bumps
// the stored version.
const ListingSchemaVersion = 2

// Migrate backfills fields missing from records written by older
// versions of the cache format. Reports whether anything changed.
func (l *Listing) Migrate() bool {
	changed := false
	if l.Category == "" {
		l.Category = CategoryOther
		changed = true
	}
	if len(l.Types) == 0 {
		l.Types = ListingTypes()
		changed = true
	}
	return changed
}

func MigrateListings(listings []*Listing) bool {
	changed := false
	for _, l := range listings {
		if l.Migrate() {
			changed = true
		}
	}
	return changed
}
