package domain

// College is one college record from the bulk dataset. The compound
// (UnitID, Name, State, WebsiteAddress, City) is the upsert key.
type College struct {
	ID             int64
	UnitID         int64
	Name           string
	State          string
	WebsiteAddress string
	City           string
}
