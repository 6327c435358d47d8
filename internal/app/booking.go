package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"travelbook/internal/domain"
	"travelbook/internal/reservations"
)

// ErrAborted reports that the user backed out of an interactive step. It is
// a clean abort of the current attempt, not a failure.
var ErrAborted = errors.New("aborted by user")

// FlightSelector picks a 1-based offer index; -1 (or anything out of range)
// aborts the attempt.
type FlightSelector func([]domain.FlightOffer) int

// RoomSelector is the hotel counterpart of FlightSelector.
type RoomSelector func([]domain.RoomOffer) int

// BookingService runs one search → select → materialize cycle per call.
// It keeps no state across attempts.
type BookingService struct {
	factory *reservations.Factory
	cache   domain.OfferCache // optional
	ttl     time.Duration
	log     zerolog.Logger
}

func NewBookingService(f *reservations.Factory, cache domain.OfferCache, ttl time.Duration, log zerolog.Logger) *BookingService {
	return &BookingService{factory: f, cache: cache, ttl: ttl, log: log}
}

// SearchFlights queries every registered carrier and merges the
// brand-tagged offers. A carrier that errors is skipped, not fatal.
func (s *BookingService) SearchFlights(ctx context.Context, p domain.PassengerInfo) []domain.FlightOffer {
	key := fmt.Sprintf("flights:%s|%s|%s|%s", p.From, p.To, p.DepartDate, p.ReturnDate)
	var offers []domain.FlightOffer
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &offers); ok {
			return offers
		}
	}
	for _, v := range s.factory.FlightVariants() {
		found, err := v.AvailableFlights(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("carrier search failed, skipping")
			continue
		}
		offers = append(offers, found...)
	}
	if s.cache != nil && len(offers) > 0 {
		_ = s.cache.Set(ctx, key, offers, int(s.ttl.Seconds()))
	}
	return offers
}

// SearchRooms queries every registered chain and merges the offers.
func (s *BookingService) SearchRooms(ctx context.Context, stay domain.StayInfo) []domain.RoomOffer {
	key := fmt.Sprintf("rooms:%s|%s|%s|%s", stay.Country, stay.City, stay.CheckIn, stay.CheckOut)
	var offers []domain.RoomOffer
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &offers); ok {
			return offers
		}
	}
	for _, v := range s.factory.HotelVariants() {
		v.SetStayInfo(stay)
		found, err := v.AvailableRooms(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("chain search failed, skipping")
			continue
		}
		offers = append(offers, found...)
	}
	if s.cache != nil && len(offers) > 0 {
		_ = s.cache.Set(ctx, key, offers, int(s.ttl.Seconds()))
	}
	return offers
}

// ReserveFlight runs the full booking cycle. The selector's choice is
// 1-based; -1 or any out-of-range value yields ErrAborted and the request
// is discarded. On success the materialized reservation owns its
// request/offer copies and its commit has been fired at the carrier.
func (s *BookingService) ReserveFlight(ctx context.Context, p domain.PassengerInfo, pick FlightSelector) (domain.Reservation, error) {
	offers := s.SearchFlights(ctx, p)
	choice := pick(offers)
	if choice < 1 || choice > len(offers) {
		return nil, ErrAborted
	}
	offer := offers[choice-1]
	r, err := s.factory.Flight(offer.Airline, p, offer)
	if err != nil {
		return nil, err
	}
	if !r.Commit(ctx) {
		// fire-and-forget: the decline is logged, the reservation stands
		s.log.Warn().Str("brand", offer.Airline).Msg("carrier declined commit")
	}
	return r, nil
}

// ReserveRoom is the hotel counterpart of ReserveFlight.
func (s *BookingService) ReserveRoom(ctx context.Context, stay domain.StayInfo, pick RoomSelector) (domain.Reservation, error) {
	offers := s.SearchRooms(ctx, stay)
	choice := pick(offers)
	if choice < 1 || choice > len(offers) {
		return nil, ErrAborted
	}
	offer := offers[choice-1]
	r, err := s.factory.Hotel(offer.Hotel, stay, offer)
	if err != nil {
		return nil, err
	}
	if !r.Commit(ctx) {
		s.log.Warn().Str("brand", offer.Hotel).Msg("chain declined commit")
	}
	return r, nil
}
