package goggle

// Sources holds the four parsed inputs that feed one goggle file.
type Sources struct {
	// All is every entry from the full bookmark collection.
	All []BookmarkEntry
	// Starred is every entry from the starred-only bookmark collection.
	Starred []BookmarkEntry
	// Unsafe is the list of domains flagged as unsafe.
	Unsafe []string
	// PotentiallyUnsafe is the list of domains flagged as potentially unsafe.
	PotentiallyUnsafe []string
}

// Compose assembles the goggle rule set: the metadata header followed by one
// rule line per source entry. Generation order is fixed -- full-collection
// path boosts, full-collection site boosts, starred path boosts, starred
// site boosts, discards, downranks -- and the rule set collapses duplicate
// lines to their first occurrence.
func Compose(header []string, src Sources) *RuleSet {
	rs := NewRuleSet()

	for _, line := range header {
		rs.Add(line)
	}
	for _, e := range src.All {
		rs.Add(BoostRule(e.PathRule, BoostAllPath, e.Site))
	}
	for _, e := range src.All {
		rs.Add(BoostRule("", BoostAllSite, e.Site))
	}
	for _, e := range src.Starred {
		rs.Add(BoostRule(e.PathRule, BoostStarredPath, e.Site))
	}
	for _, e := range src.Starred {
		rs.Add(BoostRule("", BoostStarredSite, e.Site))
	}
	for _, d := range src.Unsafe {
		rs.Add(DiscardRule(d))
	}
	for _, d := range src.PotentiallyUnsafe {
		rs.Add(DownrankRule(DownrankWeight, d))
	}

	return rs
}
