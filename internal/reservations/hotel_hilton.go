package reservations

import (
	"context"
	"fmt"
	"io"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/adapters/partnerapi"
	"travelbook/internal/domain"
)

type hiltonHotel struct {
	api *partnerapi.HiltonClient

	customer partnerapi.HiltonCustomer
	room     partnerapi.HiltonRoom

	hasCustomer bool
	hasRoom     bool
}

func newHiltonHotel(api *partnerapi.HiltonClient) *hiltonHotel {
	return &hiltonHotel{api: api}
}

func (h *hiltonHotel) SetStayInfo(s domain.StayInfo) {
	h.customer = partnerapi.HiltonCustomer{
		Country:        s.Country,
		City:           s.City,
		DateFrom:       s.CheckIn,
		DateTo:         s.CheckOut,
		NeededRooms:    s.Rooms,
		Adults:         s.Adults,
		Children:       s.Children,
		NumberOfNights: s.Nights,
	}
	h.hasCustomer = true
}

func (h *hiltonHotel) SetChosenRoom(o domain.RoomOffer) {
	h.room = partnerapi.HiltonRoom{
		RoomType:        o.RoomType,
		AvailableNumber: o.Available,
		PricePerNight:   o.PricePerNight,
		FromDate:        o.CheckIn,
		ToDate:          o.CheckOut,
	}
	h.hasRoom = true
}

func (h *hiltonHotel) AvailableRooms(ctx context.Context) ([]domain.RoomOffer, error) {
	found, err := h.api.SearchRooms(ctx, h.customer)
	if err != nil {
		return nil, err
	}
	offers := make([]domain.RoomOffer, 0, len(found))
	for _, r := range found {
		offers = append(offers, domain.RoomOffer{
			Hotel:         BrandHilton,
			RoomType:      r.RoomType,
			Available:     r.AvailableNumber,
			PricePerNight: r.PricePerNight,
			CheckIn:       r.FromDate,
			CheckOut:      r.ToDate,
		})
	}
	return offers, nil
}

func (h *hiltonHotel) Cost() float64 {
	h.mustBeReady()
	return h.room.PricePerNight * float64(h.customer.NumberOfNights) * float64(h.customer.NeededRooms)
}

func (h *hiltonHotel) Describe(w io.Writer) {
	h.mustBeReady()
	fmt.Fprintf(w, "Hotel Reservation / Hilton Hotel: %s @ %s  from %s  to %s (%d)\n",
		h.customer.Country, h.customer.City, h.customer.DateFrom, h.customer.DateTo, h.customer.NumberOfNights)
	fmt.Fprintf(w, "\t\tAdults: %d\n\t\tChildren: %d\n", h.customer.Adults, h.customer.Children)
	fmt.Fprintf(w, "\t\tRoom Cost For All Nights: %g\n", h.Cost())
}

func (h *hiltonHotel) Clone() domain.Reservation {
	cp := *h
	return &cp
}

func (h *hiltonHotel) Snapshot() domain.Snapshot {
	h.mustBeReady()
	return domain.Snapshot{
		Kind:  domain.KindHotel,
		Brand: BrandHilton,
		Stay: &domain.StayInfo{
			Country:  h.customer.Country,
			City:     h.customer.City,
			CheckIn:  h.customer.DateFrom,
			CheckOut: h.customer.DateTo,
			Adults:   h.customer.Adults,
			Children: h.customer.Children,
			Rooms:    h.customer.NeededRooms,
			Nights:   h.customer.NumberOfNights,
		},
		Room: &domain.RoomOffer{
			Hotel:         BrandHilton,
			RoomType:      h.room.RoomType,
			Available:     h.room.AvailableNumber,
			PricePerNight: h.room.PricePerNight,
			CheckIn:       h.room.FromDate,
			CheckOut:      h.room.ToDate,
		},
	}
}

func (h *hiltonHotel) Commit(ctx context.Context) bool {
	h.mustBeReady()
	ok, err := h.api.ReserveRoom(ctx, h.customer, h.room)
	if err != nil {
		ok = false
	}
	observability.ObserveBooking(BrandHilton, ok)
	return ok
}

func (h *hiltonHotel) Cancel(ctx context.Context) bool {
	h.mustBeReady()
	ok, err := h.api.CancelReservation(ctx, h.customer, h.room)
	if err != nil {
		return false
	}
	return ok
}

func (h *hiltonHotel) mustBeReady() {
	if !h.hasCustomer || !h.hasRoom {
		panic("hiltonHotel: stay info or chosen room not set")
	}
}
