package domain

// Court represents a single bookable court inside a venue
type Court struct {
	ID      int64
	VenueID int64
	Name    string
	Profile PricingProfile
}

// Venue groups the courts of one location
type Venue struct {
	ID   int64
	Name string
}
