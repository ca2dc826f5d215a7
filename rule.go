package goggle

import "fmt"

// Goggle rule weights. Starred entries always outrank the full collection at
// both the path-specific and site-wide tiers, and a path-specific rule always
// outweighs its site-wide counterpart for the same tier.
const (
	BoostAllPath     = 4
	BoostAllSite     = 2
	BoostStarredPath = 5
	BoostStarredSite = 3
	DownrankWeight   = 5
)

// BoostRule renders a boost directive for a site, optionally restricted to a
// path rule. An empty pathRule boosts the whole site.
func BoostRule(pathRule string, weight int, site string) string {
	return fmt.Sprintf("%s$boost=%d,site=%s", pathRule, weight, site)
}

// DiscardRule renders a directive that removes a site from results entirely.
func DiscardRule(domain string) string {
	return "$discard,site=" + domain
}

// DownrankRule renders a directive that pushes a site down in the results.
func DownrankRule(weight int, domain string) string {
	return fmt.Sprintf("$downrank=%d,site=%s", weight, domain)
}
