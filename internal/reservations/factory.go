package reservations

import (
	"fmt"

	"travelbook/internal/adapters/partnerapi"
	"travelbook/internal/domain"
)

// Partners bundles the partner API clients the variants delegate to.
type Partners struct {
	AirCanada *partnerapi.AirCanadaClient
	Turkish   *partnerapi.TurkishClient
	Hilton    *partnerapi.HiltonClient
	Marriott  *partnerapi.MarriottClient
}

// Factory builds reservation variants by brand tag. Variant instances are
// never shared: every call returns a fresh one, so no mutable state crosses
// bookings.
type Factory struct {
	flights map[string]func() FlightReservation
	hotels  map[string]func() HotelReservation
}

func NewFactory(p Partners) *Factory {
	return &Factory{
		flights: map[string]func() FlightReservation{
			BrandCanada:  func() FlightReservation { return newCanadaFlight(p.AirCanada) },
			BrandTurkish: func() FlightReservation { return newTurkishFlight(p.Turkish) },
		},
		hotels: map[string]func() HotelReservation{
			BrandHilton:   func() HotelReservation { return newHiltonHotel(p.Hilton) },
			BrandMarriott: func() HotelReservation { return newMarriottHotel(p.Marriott) },
		},
	}
}

// Flight materializes a carrier variant for brand from a request/offer pair.
// Unknown brands yield ErrUnknownBrand, never a panic.
func (f *Factory) Flight(brand string, p domain.PassengerInfo, o domain.FlightOffer) (FlightReservation, error) {
	build, ok := f.flights[brand]
	if !ok {
		return nil, fmt.Errorf("flight brand %q: %w", brand, ErrUnknownBrand)
	}
	r := build()
	r.SetPassengerInfo(p)
	r.SetChosenFlight(o)
	return r, nil
}

// Hotel materializes a chain variant for brand from a request/offer pair.
func (f *Factory) Hotel(brand string, s domain.StayInfo, o domain.RoomOffer) (HotelReservation, error) {
	build, ok := f.hotels[brand]
	if !ok {
		return nil, fmt.Errorf("hotel brand %q: %w", brand, ErrUnknownBrand)
	}
	r := build()
	r.SetStayInfo(s)
	r.SetChosenRoom(o)
	return r, nil
}

// FlightVariants returns one fresh variant per registered carrier, for
// fan-out searching. Registration order is stable (Canada, Turkish).
func (f *Factory) FlightVariants() []FlightReservation {
	return []FlightReservation{
		f.flights[BrandCanada](),
		f.flights[BrandTurkish](),
	}
}

// HotelVariants returns one fresh variant per registered chain.
func (f *Factory) HotelVariants() []HotelReservation {
	return []HotelReservation{
		f.hotels[BrandHilton](),
		f.hotels[BrandMarriott](),
	}
}

// Restore rebuilds a reservation from its snapshot. Satisfies
// domain.RestoreFunc for leaf kinds; itinerary snapshots recurse here for
// their children.
func (f *Factory) Restore(s domain.Snapshot) (domain.Reservation, error) {
	switch s.Kind {
	case domain.KindFlight:
		if s.Passenger == nil || s.Flight == nil {
			return nil, fmt.Errorf("flight snapshot for %q missing records", s.Brand)
		}
		return f.Flight(s.Brand, *s.Passenger, *s.Flight)
	case domain.KindHotel:
		if s.Stay == nil || s.Room == nil {
			return nil, fmt.Errorf("hotel snapshot for %q missing records", s.Brand)
		}
		return f.Hotel(s.Brand, *s.Stay, *s.Room)
	case domain.KindItinerary:
		return domain.ItineraryFromSnapshot(s, f.Restore)
	default:
		return nil, fmt.Errorf("snapshot kind %q: %w", s.Kind, ErrUnknownBrand)
	}
}
