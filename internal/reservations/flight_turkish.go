package reservations

import (
	"context"
	"fmt"
	"io"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/adapters/partnerapi"
	"travelbook/internal/domain"
)

type turkishFlight struct {
	api *partnerapi.TurkishClient

	customer partnerapi.TurkishCustomer
	flight   partnerapi.TurkishFlight

	hasCustomer bool
	hasFlight   bool
}

func newTurkishFlight(api *partnerapi.TurkishClient) *turkishFlight {
	return &turkishFlight{api: api}
}

func (t *turkishFlight) SetPassengerInfo(p domain.PassengerInfo) {
	t.customer = partnerapi.TurkishCustomer{
		From:         p.From,
		To:           p.To,
		DatetimeFrom: p.DepartDate,
		DatetimeTo:   p.ReturnDate,
		Adults:       p.Adults,
		Children:     p.Children,
		Infants:      p.Infants,
	}
	t.hasCustomer = true
}

func (t *turkishFlight) SetChosenFlight(o domain.FlightOffer) {
	t.flight = partnerapi.TurkishFlight{
		Cost:         o.Price,
		DatetimeFrom: o.DepartDate,
		DatetimeTo:   o.ReturnDate,
	}
	t.hasFlight = true
}

func (t *turkishFlight) AvailableFlights(ctx context.Context) ([]domain.FlightOffer, error) {
	found, err := t.api.GetAvailableFlights(ctx)
	if err != nil {
		return nil, err
	}
	offers := make([]domain.FlightOffer, 0, len(found))
	for _, f := range found {
		offers = append(offers, domain.FlightOffer{
			Airline:    BrandTurkish,
			Price:      f.Cost,
			DepartDate: f.DatetimeFrom,
			ReturnDate: f.DatetimeTo,
		})
	}
	return offers, nil
}

func (t *turkishFlight) Cost() float64 {
	t.mustBeReady()
	return t.flight.Cost * float64(t.customer.Adults+t.customer.Children+t.customer.Infants)
}

func (t *turkishFlight) Describe(w io.Writer) {
	t.mustBeReady()
	fmt.Fprintf(w, "Airline Reservation/ Turkish Airline: \n")
	fmt.Fprintf(w, "From: %s  on: %s  To: %s  on: %s\n",
		t.customer.From, t.customer.DatetimeFrom, t.customer.To, t.customer.DatetimeTo)
	fmt.Fprintf(w, "\t\tAdults: %d  -  Children: %d  -  Infants: %d\n",
		t.customer.Adults, t.customer.Children, t.customer.Infants)
	fmt.Fprintf(w, "\t\tFlight Cost: %g", t.Cost())
}

func (t *turkishFlight) Clone() domain.Reservation {
	cp := *t
	return &cp
}

func (t *turkishFlight) Snapshot() domain.Snapshot {
	t.mustBeReady()
	return domain.Snapshot{
		Kind:  domain.KindFlight,
		Brand: BrandTurkish,
		Passenger: &domain.PassengerInfo{
			From:       t.customer.From,
			To:         t.customer.To,
			DepartDate: t.customer.DatetimeFrom,
			ReturnDate: t.customer.DatetimeTo,
			Adults:     t.customer.Adults,
			Children:   t.customer.Children,
			Infants:    t.customer.Infants,
		},
		Flight: &domain.FlightOffer{
			Airline:    BrandTurkish,
			Price:      t.flight.Cost,
			DepartDate: t.flight.DatetimeFrom,
			ReturnDate: t.flight.DatetimeTo,
		},
	}
}

func (t *turkishFlight) Commit(ctx context.Context) bool {
	t.mustBeReady()
	ok, err := t.api.ReserveFlight(ctx, t.customer, t.flight)
	if err != nil {
		ok = false
	}
	observability.ObserveBooking(BrandTurkish, ok)
	return ok
}

func (t *turkishFlight) Cancel(ctx context.Context) bool {
	t.mustBeReady()
	ok, err := t.api.CancelReservedFlight(ctx, t.customer, t.flight)
	if err != nil {
		return false
	}
	return ok
}

func (t *turkishFlight) mustBeReady() {
	if !t.hasCustomer || !t.hasFlight {
		panic("turkishFlight: passenger info or chosen flight not set")
	}
}
