package models

// ResolvedRegion holds the display names behind a DocketAddress's region
// references. Levels the address does not reference stay empty.
type ResolvedRegion struct {
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	City     string `json:"city,omitempty"`
	Locality string `json:"locality,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}
