package bi

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funnelgen/funnelgen-manager/internal/entity"
)

func ptrInt64(v int64) *int64    { return &v }
func ptrString(v string) *string { return &v }
func ptrBool(v bool) *bool       { return &v }

func testOrderFact() *entity.OrderFact {
	return &entity.OrderFact{
		ID:              1,
		AccountID:       42,
		OrderID:         "ord-1",
		FunnelID:        sql.NullInt64{Int64: 7, Valid: true},
		MainProductID:   sql.NullInt64{Int64: 100, Valid: true},
		Bump1ProductID:  sql.NullInt64{Int64: 200, Valid: true},
		Bump2ProductID:  sql.NullInt64{Int64: 300, Valid: true},
		HasSubscription: true,
		CustomerCountry: sql.NullString{String: "US", Valid: true},
		UTMSource:       sql.NullString{String: "google", Valid: true},
		UTMMedium:       sql.NullString{String: "cpc", Valid: true},
		UTMCampaign:     sql.NullString{String: "spring", Valid: true},
	}
}

func TestMatchesFilter(t *testing.T) {
	t.Run("nil and empty filters match everything", func(t *testing.T) {
		of := testOrderFact()
		assert.True(t, MatchesFilter(of, nil))
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{}))
	})

	t.Run("product matches main product", func(t *testing.T) {
		of := testOrderFact()
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{ProductID: ptrInt64(100)}))
	})

	t.Run("product matches either bump slot", func(t *testing.T) {
		of := testOrderFact()
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{ProductID: ptrInt64(200)}))
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{ProductID: ptrInt64(300)}))
	})

	t.Run("product mismatch", func(t *testing.T) {
		of := testOrderFact()
		assert.False(t, MatchesFilter(of, &entity.OrderFilter{ProductID: ptrInt64(999)}))
	})

	t.Run("funnel", func(t *testing.T) {
		of := testOrderFact()
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{FunnelID: ptrInt64(7)}))
		assert.False(t, MatchesFilter(of, &entity.OrderFilter{FunnelID: ptrInt64(8)}))

		of.FunnelID = sql.NullInt64{}
		assert.False(t, MatchesFilter(of, &entity.OrderFilter{FunnelID: ptrInt64(7)}))
	})

	t.Run("utm dimensions", func(t *testing.T) {
		of := testOrderFact()
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{UTMSource: ptrString("google")}))
		assert.False(t, MatchesFilter(of, &entity.OrderFilter{UTMSource: ptrString("facebook")}))

		// Unset order attribution never matches a set filter.
		of.UTMTerm = sql.NullString{}
		assert.False(t, MatchesFilter(of, &entity.OrderFilter{UTMTerm: ptrString("shoes")}))
	})

	t.Run("country", func(t *testing.T) {
		of := testOrderFact()
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{CustomerCountry: ptrString("US")}))
		assert.False(t, MatchesFilter(of, &entity.OrderFilter{CustomerCountry: ptrString("DE")}))
	})

	t.Run("subscription flag", func(t *testing.T) {
		of := testOrderFact()
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{HasSubscription: ptrBool(true)}))
		assert.False(t, MatchesFilter(of, &entity.OrderFilter{HasSubscription: ptrBool(false)}))
	})

	t.Run("dimensions are ANDed", func(t *testing.T) {
		of := testOrderFact()
		assert.True(t, MatchesFilter(of, &entity.OrderFilter{
			ProductID: ptrInt64(100),
			UTMSource: ptrString("google"),
			FunnelID:  ptrInt64(7),
		}))
		assert.False(t, MatchesFilter(of, &entity.OrderFilter{
			ProductID: ptrInt64(100),
			UTMSource: ptrString("facebook"),
		}))
	})
}
