package domain

import "io"

// Reservation is the capability shared by every bookable entity: leaf
// bookings (a flight, a hotel stay) and the Itinerary composite alike.
type Reservation interface {
	// Cost returns the total price of the reservation. Never negative.
	Cost() float64

	// Describe writes a human-readable rendering to w. It has no other
	// side effects.
	Describe(w io.Writer)

	// Clone returns a deep copy. The clone never aliases mutable state
	// with the original; mutating one must not be observable on the other.
	Clone() Reservation

	// Snapshot returns a brand-tagged, serializable value the reservation
	// can be rebuilt from (see the reservations factory).
	Snapshot() Snapshot
}

// Snapshot kinds.
const (
	KindFlight    = "flight"
	KindHotel     = "hotel"
	KindItinerary = "itinerary"
)

// Snapshot is the serialized form of a Reservation. Leaf kinds carry the
// neutral request/offer pair plus the brand tag the factory dispatches on;
// the itinerary kind carries its children recursively.
type Snapshot struct {
	Kind      string
	Brand     string         `json:",omitempty"`
	Passenger *PassengerInfo `json:",omitempty"`
	Flight    *FlightOffer   `json:",omitempty"`
	Stay      *StayInfo      `json:",omitempty"`
	Room      *RoomOffer     `json:",omitempty"`
	Children  []Snapshot     `json:",omitempty"`
}

// RestoreFunc rebuilds a leaf reservation from its snapshot. Implemented by
// the reservations factory; the itinerary kind is handled in this package.
type RestoreFunc func(Snapshot) (Reservation, error)
