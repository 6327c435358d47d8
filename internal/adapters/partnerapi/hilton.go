package partnerapi

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"travelbook/internal/adapters/observability"
)

// HiltonCustomer is the guest record the Hilton API expects.
type HiltonCustomer struct {
	Country        string
	City           string
	DateFrom       string
	DateTo         string
	NeededRooms    int
	Adults         int
	Children       int
	NumberOfNights int
}

// HiltonRoom is a room as the Hilton API returns it.
type HiltonRoom struct {
	RoomType        string
	AvailableNumber int
	PricePerNight   float64
	FromDate        string
	ToDate          string
}

type HiltonClient struct {
	rl  *rate.Limiter
	log zerolog.Logger
}

func NewHilton(log zerolog.Logger, rps int) *HiltonClient {
	if rps <= 0 {
		rps = 5
	}
	return &HiltonClient{
		rl:  rate.NewLimiter(rate.Limit(rps), rps),
		log: log.With().Str("partner", "hilton").Logger(),
	}
}

func (c *HiltonClient) SearchRooms(ctx context.Context, customer HiltonCustomer) ([]HiltonRoom, error) {
	if err := c.rl.Wait(ctx); err != nil {
		observability.ObservePartner("Hilton", "search", false)
		return nil, err
	}
	rooms := []HiltonRoom{
		{RoomType: "Interior View", AvailableNumber: 6, PricePerNight: 200, FromDate: "29-01-2022", ToDate: "10-02-2022"},
		{RoomType: "City View", AvailableNumber: 3, PricePerNight: 300, FromDate: "29-01-2022", ToDate: "10-02-2022"},
		{RoomType: "Deluxe View", AvailableNumber: 8, PricePerNight: 500, FromDate: "29-01-2022", ToDate: "10-02-2022"},
	}
	observability.ObservePartner("Hilton", "search", true)
	c.log.Debug().Int("rooms", len(rooms)).Msg("search")
	return rooms, nil
}

func (c *HiltonClient) ReserveRoom(ctx context.Context, customer HiltonCustomer, room HiltonRoom) (bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return false, err
	}
	ref := uuid.NewString()
	observability.ObservePartner("Hilton", "reserve", true)
	c.log.Info().Str("ref", ref).Str("room", room.RoomType).Msg("room reserved")
	return true, nil
}

func (c *HiltonClient) CancelReservation(ctx context.Context, customer HiltonCustomer, room HiltonRoom) (bool, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return false, err
	}
	observability.ObservePartner("Hilton", "cancel", true)
	c.log.Info().Str("room", room.RoomType).Msg("reservation cancelled")
	return true, nil
}
