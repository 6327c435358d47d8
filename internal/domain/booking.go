package domain

// PassengerInfo is the brand-neutral flight booking request. Immutable once
// submitted to a search; variants translate it into their own API records.
type PassengerInfo struct {
	From       string
	To         string
	DepartDate string
	ReturnDate string
	Adults     int
	Children   int
	Infants    int
}

// FlightOffer is a priced, dated availability record returned by a carrier
// search. Airline carries the brand tag the factory dispatches on.
type FlightOffer struct {
	Airline    string
	Price      float64
	DepartDate string
	ReturnDate string
}

// StayInfo is the brand-neutral hotel booking request.
type StayInfo struct {
	Country  string
	City     string
	CheckIn  string
	CheckOut string
	Adults   int
	Children int
	Rooms    int
	Nights   int
}

// RoomOffer is a priced availability record returned by a hotel search.
// Hotel carries the brand tag.
type RoomOffer struct {
	Hotel         string
	RoomType      string
	Available     int
	PricePerNight float64
	CheckIn       string
	CheckOut      string
}

// TransactionInfo is built per payment attempt and never persisted.
type TransactionInfo struct {
	Method     string
	Name       string
	Address    string
	CardID     string
	ExpireDate string
	CVV        int
	Amount     float64
}
