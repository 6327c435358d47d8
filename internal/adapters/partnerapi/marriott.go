package partnerapi

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"travelbook/internal/adapters/observability"
)

// MarriottCustomer is the guest record the Marriott API expects.
type MarriottCustomer struct {
	Country        string
	City           string
	DateFrom       string
	DateTo         string
	NeededRooms    int
	Adults         int
	Children       int
	NumberOfNights int
}

// MarriottFoundRoom is a room as the Marriott API returns it.
type MarriottFoundRoom struct {
	RoomType        string
	AvailableNumber int
	PricePerNight   float64
	DateFrom        string
	DateTo          string
}

type MarriottClient struct {
	rl  *rate.Limiter
	log zerolog.Logger
}

func NewMarriott(log zerolog.Logger, rps int) *MarriottClient {
	if rps <= 0 {
		rps = 5
	}
	return &MarriottClient{
		rl:  rate.NewLimiter(rate.Limit(rps), rps),
		log: log.With().Str("partner", "marriott").Logger(),
	}
}

func (c *MarriottClient) FindRooms(ctx context.Context, customer MarriottCustomer) ([]MarriottFoundRoom, error) {
	if err := c.rl.Wait(ctx); err != nil {
		observability.ObservePartner("Marriott", "search", false)
		return nil, err
	}
	rooms := []MarriottFoundRoom{
		{RoomType: "City View", AvailableNumber: 8, PricePerNight: 320, DateFrom: "29-01-2022", DateTo: "10-02-2022"},
		{RoomType: "Interior View", AvailableNumber: 8, PricePerNight: 220, DateFrom: "29-01-2022", DateTo: "10-02-2022"},
		{RoomType: "Private View", AvailableNumber: 5, PricePerNight: 600, DateFrom: "29-01-2022", DateTo: "10-02-2022"},
	}
	observability.ObservePartner("Marriott", "search", true)
	c.log.Debug().Int("rooms", len(rooms)).Msg("search")
	return rooms, nil
}

func (c *MarriottClient) ReserveRoom(ctx context.Context, room MarriottFoundRoom, customer MarriottCustomer) (bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return false, err
	}
	ref := uuid.NewString()
	observability.ObservePartner("Marriott", "reserve", true)
	c.log.Info().Str("ref", ref).Str("room", room.RoomType).Msg("room reserved")
	return true, nil
}

func (c *MarriottClient) CancelReservation(ctx context.Context, room MarriottFoundRoom, customer MarriottCustomer) (bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return false, err
	}
	observability.ObservePartner("Marriott", "cancel", true)
	c.log.Info().Str("room", room.RoomType).Msg("reservation cancelled")
	return true, nil
}
