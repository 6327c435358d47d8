package reservations

import (
	"context"
	"fmt"
	"io"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/adapters/partnerapi"
	"travelbook/internal/domain"
)

// canadaFlight adapts the neutral booking records to the AirCanada API.
type canadaFlight struct {
	api *partnerapi.AirCanadaClient

	customer partnerapi.AirCanadaCustomer
	flight   partnerapi.AirCanadaFlight

	hasCustomer bool
	hasFlight   bool
}

func newCanadaFlight(api *partnerapi.AirCanadaClient) *canadaFlight {
	return &canadaFlight{api: api}
}

func (c *canadaFlight) SetPassengerInfo(p domain.PassengerInfo) {
	c.customer = partnerapi.AirCanadaCustomer{
		From:         p.From,
		To:           p.To,
		DateTimeFrom: p.DepartDate,
		DateTimeTo:   p.ReturnDate,
		Adults:       p.Adults,
		Children:     p.Children,
		Infants:      p.Infants,
	}
	c.hasCustomer = true
}

func (c *canadaFlight) SetChosenFlight(o domain.FlightOffer) {
	c.flight = partnerapi.AirCanadaFlight{
		Price:        o.Price,
		DateTimeFrom: o.DepartDate,
		DateTimeTo:   o.ReturnDate,
	}
	c.hasFlight = true
}

func (c *canadaFlight) AvailableFlights(ctx context.Context) ([]domain.FlightOffer, error) {
	found, err := c.api.GetFlights(ctx)
	if err != nil {
		return nil, err
	}
	offers := make([]domain.FlightOffer, 0, len(found))
	for _, f := range found {
		offers = append(offers, domain.FlightOffer{
			Airline:    BrandCanada,
			Price:      f.Price,
			DepartDate: f.DateTimeFrom,
			ReturnDate: f.DateTimeTo,
		})
	}
	return offers, nil
}

func (c *canadaFlight) Cost() float64 {
	c.mustBeReady()
	return c.flight.Price * float64(c.customer.Adults+c.customer.Children+c.customer.Infants)
}

func (c *canadaFlight) Describe(w io.Writer) {
	c.mustBeReady()
	fmt.Fprintf(w, "Airline Reservation/ AirCanada Airline: \n")
	fmt.Fprintf(w, "From: %s  on: %s  To: %s  on: %s\n",
		c.customer.From, c.customer.DateTimeFrom, c.customer.To, c.customer.DateTimeTo)
	fmt.Fprintf(w, "\t\tAdults: %d  -  Children: %d  -  Infants: %d\n",
		c.customer.Adults, c.customer.Children, c.customer.Infants)
	fmt.Fprintf(w, "\t\tFlight Cost: %g", c.Cost())
}

func (c *canadaFlight) Clone() domain.Reservation {
	// records are plain values, so a shallow struct copy is a deep copy
	cp := *c
	return &cp
}

func (c *canadaFlight) Snapshot() domain.Snapshot {
	c.mustBeReady()
	return domain.Snapshot{
		Kind:  domain.KindFlight,
		Brand: BrandCanada,
		Passenger: &domain.PassengerInfo{
			From:       c.customer.From,
			To:         c.customer.To,
			DepartDate: c.customer.DateTimeFrom,
			ReturnDate: c.customer.DateTimeTo,
			Adults:     c.customer.Adults,
			Children:   c.customer.Children,
			Infants:    c.customer.Infants,
		},
		Flight: &domain.FlightOffer{
			Airline:    BrandCanada,
			Price:      c.flight.Price,
			DepartDate: c.flight.DateTimeFrom,
			ReturnDate: c.flight.DateTimeTo,
		},
	}
}

func (c *canadaFlight) Commit(ctx context.Context) bool {
	c.mustBeReady()
	ok, err := c.api.ReserveFlight(ctx, c.flight, c.customer)
	if err != nil {
		ok = false
	}
	observability.ObserveBooking(BrandCanada, ok)
	return ok
}

func (c *canadaFlight) Cancel(ctx context.Context) bool {
	c.mustBeReady()
	ok, err := c.api.CancelReserveFlight(ctx, c.flight, c.customer)
	if err != nil {
		return false
	}
	return ok
}

func (c *canadaFlight) mustBeReady() {
	if !c.hasCustomer || !c.hasFlight {
		panic("canadaFlight: passenger info or chosen flight not set")
	}
}
