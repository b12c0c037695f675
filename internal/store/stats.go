package store

// AgencyStatistics is the agency rollup aggregate: how many agencies and
// agents exist, and how many properties those agents handle. Computed with
// outer joins so agencies without agents or properties still count.
type AgencyStatistics struct {
	TotalAgencies   int `json:"total_agencies"`
	TotalAgents     int `json:"total_agents"`
	TotalProperties int `json:"total_properties"`
	SoldProperties  int `json:"sold_properties"`
}

// PropertyStatistics is the property rollup aggregate: per-status counts
// and price extremes. Prices are integer currency units; the average is an
// integer (floor division), matching the monetary data model.
type PropertyStatistics struct {
	TotalProperties      int   `json:"total_properties"`
	AvailableProperties  int   `json:"available_properties"`
	UnderOfferProperties int   `json:"under_offer_properties"`
	SoldProperties       int   `json:"sold_properties"`
	AvgPrice             int64 `json:"avg_price"`
	MinPrice             int64 `json:"min_price"`
	MaxPrice             int64 `json:"max_price"`
}
