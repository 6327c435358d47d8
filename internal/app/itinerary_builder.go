package app

import (
	"context"

	"travelbook/internal/domain"
)

// ItineraryBuilder aggregates one session's working itinerary. It owns the
// working instance exclusively until it is committed (cloned into an
// account) or cleared.
type ItineraryBuilder struct {
	booking *BookingService
	it      *domain.Itinerary
}

func NewItineraryBuilder(b *BookingService) *ItineraryBuilder {
	return &ItineraryBuilder{booking: b, it: domain.NewItinerary()}
}

// AddFlight runs a booking cycle and, on success, adds the result to the
// working itinerary (which stores its own clone). ErrAborted passes
// through untouched.
func (b *ItineraryBuilder) AddFlight(ctx context.Context, p domain.PassengerInfo, pick FlightSelector) error {
	r, err := b.booking.ReserveFlight(ctx, p, pick)
	if err != nil {
		return err
	}
	b.it.Add(r)
	return nil
}

// AddHotel is the hotel counterpart of AddFlight.
func (b *ItineraryBuilder) AddHotel(ctx context.Context, stay domain.StayInfo, pick RoomSelector) error {
	r, err := b.booking.ReserveRoom(ctx, stay, pick)
	if err != nil {
		return err
	}
	b.it.Add(r)
	return nil
}

func (b *ItineraryBuilder) Empty() bool { return b.it.IsEmpty() }

// Clear discards everything accumulated so far.
func (b *ItineraryBuilder) Clear() { b.it.Clear() }

// Itinerary exposes the working itinerary for cost display and commit.
// Ownership stays with the builder; committers must clone.
func (b *ItineraryBuilder) Itinerary() *domain.Itinerary { return b.it }
