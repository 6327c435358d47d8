// Package reservations implements the brand-specific reservation variants
// and the factory that dispatches on a brand tag. Each variant translates
// between the neutral request/offer records in internal/domain and the
// record shapes its partner API speaks.
package reservations

import (
	"context"
	"errors"

	"travelbook/internal/domain"
)

// Brand tags. Offer records carry one of these so the factory can dispatch.
const (
	BrandCanada   = "Canada"
	BrandTurkish  = "Turkish"
	BrandHilton   = "Hilton"
	BrandMarriott = "Marriott"
)

// ErrUnknownBrand is returned for a brand tag outside the fixed enumeration.
var ErrUnknownBrand = errors.New("no such brand")

// FlightReservation is a carrier-specific reservation. Search may be called
// on a fresh variant; Cost, Describe, Clone, Commit and Cancel require both
// the passenger info and a chosen flight to be set.
type FlightReservation interface {
	domain.Reservation

	SetPassengerInfo(domain.PassengerInfo)
	SetChosenFlight(domain.FlightOffer)

	// AvailableFlights queries the carrier API and tags every offer with
	// the variant's brand.
	AvailableFlights(ctx context.Context) ([]domain.FlightOffer, error)

	// Commit books the reservation with the carrier. Declines surface as
	// false; only programmer errors (no chosen flight) panic.
	Commit(ctx context.Context) bool
	Cancel(ctx context.Context) bool
}

// HotelReservation is a chain-specific reservation, same contract shape.
type HotelReservation interface {
	domain.Reservation

	SetStayInfo(domain.StayInfo)
	SetChosenRoom(domain.RoomOffer)

	AvailableRooms(ctx context.Context) ([]domain.RoomOffer, error)

	Commit(ctx context.Context) bool
	Cancel(ctx context.Context) bool
}
