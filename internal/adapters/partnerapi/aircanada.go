// Package partnerapi holds the stubbed partner integrations: two airlines
// and two hotel chains. Every client returns canned inventory and accepts
// every commit, but keeps the shape of a real outbound adapter (context
// first, client-side rate limiting, per-call logging and metrics) so a real
// integration can slot in behind the same surface.
package partnerapi

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"travelbook/internal/adapters/observability"
)

// AirCanadaCustomer is the record shape the AirCanada API expects.
type AirCanadaCustomer struct {
	From         string
	To           string
	DateTimeFrom string
	DateTimeTo   string
	Adults       int
	Children     int
	Infants      int
}

// AirCanadaFlight is a flight as the AirCanada API returns it.
type AirCanadaFlight struct {
	Price        float64
	DateTimeFrom string
	DateTimeTo   string
}

type AirCanadaClient struct {
	rl  *rate.Limiter
	log zerolog.Logger
}

func NewAirCanada(log zerolog.Logger, rps int) *AirCanadaClient {
	if rps <= 0 {
		rps = 5
	}
	return &AirCanadaClient{
		rl:  rate.NewLimiter(rate.Limit(rps), rps),
		log: log.With().Str("partner", "aircanada").Logger(),
	}
}

// GetFlights returns the canned availability list.
func (c *AirCanadaClient) GetFlights(ctx context.Context) ([]AirCanadaFlight, error) {
	if err := c.rl.Wait(ctx); err != nil {
		observability.ObservePartner("Canada", "search", false)
		return nil, err
	}
	flights := []AirCanadaFlight{
		{Price: 200, DateTimeFrom: "25-01-2022", DateTimeTo: "10-02-2022"},
		{Price: 250, DateTimeFrom: "29-01-2022", DateTimeTo: "10-02-2022"},
	}
	observability.ObservePartner("Canada", "search", true)
	c.log.Debug().Int("flights", len(flights)).Msg("search")
	return flights, nil
}

// ReserveFlight books the flight. The stub always accepts.
func (c *AirCanadaClient) ReserveFlight(ctx context.Context, flight AirCanadaFlight, customer AirCanadaCustomer) (bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return false, err
	}
	ref := uuid.NewString()
	observability.ObservePartner("Canada", "reserve", true)
	c.log.Info().Str("ref", ref).Float64("price", flight.Price).Msg("flight reserved")
	return true, nil
}

// CancelReserveFlight cancels a booking. The stub declines, matching the
// upstream sandbox.
func (c *AirCanadaClient) CancelReserveFlight(ctx context.Context, flight AirCanadaFlight, customer AirCanadaCustomer) (bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return false, err
	}
	observability.ObservePartner("Canada", "cancel", false)
	c.log.Warn().Msg("cancel declined")
	return false, nil
}
