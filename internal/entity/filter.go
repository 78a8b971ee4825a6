package entity

// OrderFilter narrows the candidate order set before windowing. Nil fields
// always match on their dimension; set fields are ANDed together.
type OrderFilter struct {
	ProductID       *int64
	FunnelID        *int64
	UTMSource       *string
	UTMMedium       *string
	UTMCampaign     *string
	UTMTerm         *string
	UTMContent      *string
	CustomerCountry *string
	HasSubscription *bool
}
