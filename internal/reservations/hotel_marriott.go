package reservations

import (
	"context"
	"fmt"
	"io"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/adapters/partnerapi"
	"travelbook/internal/domain"
)

type marriottHotel struct {
	api *partnerapi.MarriottClient

	customer partnerapi.MarriottCustomer
	room     partnerapi.MarriottFoundRoom

	hasCustomer bool
	hasRoom     bool
}

func newMarriottHotel(api *partnerapi.MarriottClient) *marriottHotel {
	return &marriottHotel{api: api}
}

func (m *marriottHotel) SetStayInfo(s domain.StayInfo) {
	m.customer = partnerapi.MarriottCustomer{
		Country:        s.Country,
		City:           s.City,
		DateFrom:       s.CheckIn,
		DateTo:         s.CheckOut,
		NeededRooms:    s.Rooms,
		Adults:         s.Adults,
		Children:       s.Children,
		NumberOfNights: s.Nights,
	}
	m.hasCustomer = true
}

func (m *marriottHotel) SetChosenRoom(o domain.RoomOffer) {
	m.room = partnerapi.MarriottFoundRoom{
		RoomType:        o.RoomType,
		AvailableNumber: o.Available,
		PricePerNight:   o.PricePerNight,
		DateFrom:        o.CheckIn,
		DateTo:          o.CheckOut,
	}
	m.hasRoom = true
}

func (m *marriottHotel) AvailableRooms(ctx context.Context) ([]domain.RoomOffer, error) {
	found, err := m.api.FindRooms(ctx, m.customer)
	if err != nil {
		return nil, err
	}
	offers := make([]domain.RoomOffer, 0, len(found))
	for _, r := range found {
		offers = append(offers, domain.RoomOffer{
			Hotel:         BrandMarriott,
			RoomType:      r.RoomType,
			Available:     r.AvailableNumber,
			PricePerNight: r.PricePerNight,
			CheckIn:       r.DateFrom,
			CheckOut:      r.DateTo,
		})
	}
	return offers, nil
}

func (m *marriottHotel) Cost() float64 {
	m.mustBeReady()
	return m.room.PricePerNight * float64(m.customer.NumberOfNights) * float64(m.customer.NeededRooms)
}

func (m *marriottHotel) Describe(w io.Writer) {
	m.mustBeReady()
	fmt.Fprintf(w, "Hotel Reservation / Marriott Hotel: %s @ %s  from %s  to %s (%d)\n",
		m.customer.Country, m.customer.City, m.customer.DateFrom, m.customer.DateTo, m.customer.NumberOfNights)
	fmt.Fprintf(w, "\t\tAdults: %d\n\t\tChildren: %d\n", m.customer.Adults, m.customer.Children)
	fmt.Fprintf(w, "\t\tRoom Cost For All Nights: %g\n", m.Cost())
}

func (m *marriottHotel) Clone() domain.Reservation {
	cp := *m
	return &cp
}

func (m *marriottHotel) Snapshot() domain.Snapshot {
	m.mustBeReady()
	return domain.Snapshot{
		Kind:  domain.KindHotel,
		Brand: BrandMarriott,
		Stay: &domain.StayInfo{
			Country:  m.customer.Country,
			City:     m.customer.City,
			CheckIn:  m.customer.DateFrom,
			CheckOut: m.customer.DateTo,
			Adults:   m.customer.Adults,
			Children: m.customer.Children,
			Rooms:    m.customer.NeededRooms,
			Nights:   m.customer.NumberOfNights,
		},
		Room: &domain.RoomOffer{
			Hotel:         BrandMarriott,
			RoomType:      m.room.RoomType,
			Available:     m.room.AvailableNumber,
			PricePerNight: m.room.PricePerNight,
			CheckIn:       m.room.DateFrom,
			CheckOut:      m.room.DateTo,
		},
	}
}

func (m *marriottHotel) Commit(ctx context.Context) bool {
	m.mustBeReady()
	ok, err := m.api.ReserveRoom(ctx, m.room, m.customer)
	if err != nil {
		ok = false
	}
	observability.ObserveBooking(BrandMarriott, ok)
	return ok
}

func (m *marriottHotel) Cancel(ctx context.Context) bool {
	m.mustBeReady()
	ok, err := m.api.CancelReservation(ctx, m.room, m.customer)
	if err != nil {
		return false
	}
	return ok
}

func (m *marriottHotel) mustBeReady() {
	if !m.hasCustomer || !m.hasRoom {
		panic("marriottHotel: stay info or chosen room not set")
	}
}
