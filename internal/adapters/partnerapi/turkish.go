package partnerapi

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"travelbook/internal/adapters/observability"
)

// TurkishCustomer is the passenger record the Turkish Airlines API expects.
// Same data as AirCanada's but the field vocabulary differs upstream.
type TurkishCustomer struct {
	From         string
	To           string
	DatetimeFrom string
	DatetimeTo   string
	Adults       int
	Children     int
	Infants      int
}

type TurkishFlight struct {
	Cost         float64
	DatetimeFrom string
	DatetimeTo   string
}

type TurkishClient struct {
	rl  *rate.Limiter
	log zerolog.Logger
}

func NewTurkish(log zerolog.Logger, rps int) *TurkishClient {
	if rps <= 0 {
		rps = 5
	}
	return &TurkishClient{
		rl:  rate.NewLimiter(rate.Limit(rps), rps),
		log: log.With().Str("partner", "turkish").Logger(),
	}
}

func (c *TurkishClient) GetAvailableFlights(ctx context.Context) ([]TurkishFlight, error) {
	if err := c.rl.Wait(ctx); err != nil {
		observability.ObservePartner("Turkish", "search", false)
		return nil, err
	}
	flights := []TurkishFlight{
		{Cost: 200, DatetimeFrom: "25-01-2022", DatetimeTo: "10-02-2022"},
		{Cost: 250, DatetimeFrom: "29-01-2022", DatetimeTo: "10-02-2022"},
	}
	observability.ObservePartner("Turkish", "search", true)
	c.log.Debug().Int("flights", len(flights)).Msg("search")
	return flights, nil
}

func (c *TurkishClient) ReserveFlight(ctx context.Context, customer TurkishCustomer, flight TurkishFlight) (bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return false, err
	}
	ref := uuid.NewString()
	observability.ObservePartner("Turkish", "reserve", true)
	c.log.Info().Str("ref", ref).Float64("cost", flight.Cost).Msg("flight reserved")
	return true, nil
}

func (c *TurkishClient) CancelReservedFlight(ctx context.Context, customer TurkishCustomer, flight TurkishFlight) (bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return false, err
	}
	observability.ObservePartner("Turkish", "cancel", false)
	c.log.Warn().Msg("cancel declined")
	return false, nil
}
