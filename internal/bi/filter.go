package bi

import (
	"database/sql"

	"github.com/funnelgen/funnelgen-manager/internal/entity"
)

// MatchesFilter reports whether the order satisfies every set filter
// dimension. Timing plays no part here; an order that matches can still be
// dropped later when it has no transactions inside the window.
func MatchesFilter(of *entity.OrderFact, f *entity.OrderFilter) bool {
	if f == nil {
		return true
	}
	if f.ProductID != nil && !matchesProduct(of, *f.ProductID) {
		return false
	}
	if f.FunnelID != nil && (!of.FunnelID.Valid || of.FunnelID.Int64 != *f.FunnelID) {
		return false
	}
	if !matchesNullString(of.UTMSource, f.UTMSource) {
		return false
	}
	if !matchesNullString(of.UTMMedium, f.UTMMedium) {
		return false
	}
	if !matchesNullString(of.UTMCampaign, f.UTMCampaign) {
		return false
	}
	if !matchesNullString(of.UTMTerm, f.UTMTerm) {
		return false
	}
	if !matchesNullString(of.UTMContent, f.UTMContent) {
		return false
	}
	if !matchesNullString(of.CustomerCountry, f.CustomerCountry) {
		return false
	}
	if f.HasSubscription != nil && of.HasSubscription != *f.HasSubscription {
		return false
	}
	return true
}

// matchesProduct matches the main product or any bump offer slot.
func matchesProduct(of *entity.OrderFact, productID int64) bool {
	if of.MainProductID.Valid && of.MainProductID.Int64 == productID {
		return true
	}
	for _, id := range of.BumpProductIDs() {
		if id == productID {
			return true
		}
	}
	return false
}

func matchesNullString(v sql.NullString, want *string) bool {
	if want == nil {
		return true
	}
	return v.Valid && v.String == *want
}
