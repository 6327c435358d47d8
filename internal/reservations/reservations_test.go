package reservations

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/adapters/partnerapi"
	"travelbook/internal/domain"
)

func testFactory() *Factory {
	log := zerolog.Nop()
	return NewFactory(Partners{
		AirCanada: partnerapi.NewAirCanada(log, 1000),
		Turkish:   partnerapi.NewTurkish(log, 1000),
		Hilton:    partnerapi.NewHilton(log, 1000),
		Marriott:  partnerapi.NewMarriott(log, 1000),
	})
}

func TestFactoryUnknownBrand(t *testing.T) {
	f := testFactory()

	_, err := f.Flight("Lufthansa", domain.PassengerInfo{}, domain.FlightOffer{})
	assert.ErrorIs(t, err, ErrUnknownBrand)

	_, err = f.Hotel("Sheraton", domain.StayInfo{}, domain.RoomOffer{})
	assert.ErrorIs(t, err, ErrUnknownBrand)
}

func TestFlightCostMultipliesBySeats(t *testing.T) {
	f := testFactory()
	p := domain.PassengerInfo{
		From: "Egypt", To: "Canada",
		DepartDate: "25-01-2022", ReturnDate: "10-02-2022",
		Adults: 2, Children: 1, Infants: 0,
	}
	r, err := f.Flight(BrandCanada, p, domain.FlightOffer{
		Airline: BrandCanada, Price: 200,
		DepartDate: "25-01-2022", ReturnDate: "10-02-2022",
	})
	require.NoError(t, err)
	assert.Equal(t, 600.0, r.Cost())
}

func TestHotelCostMultipliesNightsAndRooms(t *testing.T) {
	f := testFactory()
	s := domain.StayInfo{
		Country: "Egypt", City: "Cairo",
		CheckIn: "29-01-2022", CheckOut: "10-02-2022",
		Adults: 2, Children: 0, Rooms: 2, Nights: 5,
	}
	r, err := f.Hotel(BrandHilton, s, domain.RoomOffer{
		Hotel: BrandHilton, RoomType: "City View", PricePerNight: 300,
		CheckIn: "29-01-2022", CheckOut: "10-02-2022",
	})
	require.NoError(t, err)
	assert.Equal(t, 3000.0, r.Cost())
}

func TestFlightVariantsMergeBrandTagged(t *testing.T) {
	f := testFactory()
	ctx := context.Background()

	var offers []domain.FlightOffer
	for _, v := range f.FlightVariants() {
		found, err := v.AvailableFlights(ctx)
		require.NoError(t, err)
		offers = append(offers, found...)
	}
	require.Len(t, offers, 4)
	assert.Equal(t, BrandCanada, offers[0].Airline)
	assert.Equal(t, BrandTurkish, offers[2].Airline)
	for _, o := range offers {
		assert.NotEmpty(t, o.DepartDate)
		assert.Greater(t, o.Price, 0.0)
	}
}

func TestHotelVariantsMergeBrandTagged(t *testing.T) {
	f := testFactory()
	ctx := context.Background()
	stay := domain.StayInfo{Country: "Egypt", City: "Cairo", Rooms: 1, Nights: 3}

	var offers []domain.RoomOffer
	for _, v := range f.HotelVariants() {
		v.SetStayInfo(stay)
		found, err := v.AvailableRooms(ctx)
		require.NoError(t, err)
		offers = append(offers, found...)
	}
	require.Len(t, offers, 6)
	assert.Equal(t, BrandHilton, offers[0].Hotel)
	assert.Equal(t, BrandMarriott, offers[3].Hotel)
}

func TestFlightCloneIsIndependent(t *testing.T) {
	f := testFactory()
	p := domain.PassengerInfo{From: "Egypt", To: "Canada", Adults: 1}
	r, err := f.Flight(BrandCanada, p, domain.FlightOffer{Airline: BrandCanada, Price: 200})
	require.NoError(t, err)

	cp := r.Clone()
	p.Adults = 5
	r.SetPassengerInfo(p)

	assert.Equal(t, 1000.0, r.Cost())
	assert.Equal(t, 200.0, cp.Cost(), "clone must not see later mutations")
}

func TestCommitAndCancel(t *testing.T) {
	f := testFactory()
	ctx := context.Background()

	flight, err := f.Flight(BrandTurkish, domain.PassengerInfo{Adults: 1},
		domain.FlightOffer{Airline: BrandTurkish, Price: 250})
	require.NoError(t, err)
	assert.True(t, flight.Commit(ctx))
	assert.False(t, flight.Cancel(ctx), "airline sandbox declines cancellations")

	hotel, err := f.Hotel(BrandMarriott, domain.StayInfo{Rooms: 1, Nights: 2},
		domain.RoomOffer{Hotel: BrandMarriott, RoomType: "City View", PricePerNight: 320})
	require.NoError(t, err)
	assert.True(t, hotel.Commit(ctx))
	assert.True(t, hotel.Cancel(ctx))
}

func TestSnapshotRestoreRoundtrip(t *testing.T) {
	f := testFactory()
	p := domain.PassengerInfo{
		From: "Egypt", To: "Canada",
		DepartDate: "25-01-2022", ReturnDate: "10-02-2022",
		Adults: 2, Children: 1,
	}
	r, err := f.Flight(BrandCanada, p, domain.FlightOffer{
		Airline: BrandCanada, Price: 200,
		DepartDate: "25-01-2022", ReturnDate: "10-02-2022",
	})
	require.NoError(t, err)

	back, err := f.Restore(r.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, r.Cost(), back.Cost())

	var want, got bytes.Buffer
	r.Describe(&want)
	back.Describe(&got)
	assert.Equal(t, want.String(), got.String())
}

func TestRestoreItinerarySnapshot(t *testing.T) {
	f := testFactory()

	flight, err := f.Flight(BrandTurkish, domain.PassengerInfo{Adults: 2},
		domain.FlightOffer{Airline: BrandTurkish, Price: 250})
	require.NoError(t, err)
	hotel, err := f.Hotel(BrandHilton, domain.StayInfo{Rooms: 1, Nights: 4},
		domain.RoomOffer{Hotel: BrandHilton, RoomType: "Deluxe", PricePerNight: 500})
	require.NoError(t, err)

	it := domain.NewItinerary()
	it.Add(flight)
	it.Add(hotel)

	back, err := f.Restore(it.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, it.Cost(), back.Cost())
}

func TestRestoreRejectsMalformedSnapshots(t *testing.T) {
	f := testFactory()

	_, err := f.Restore(domain.Snapshot{Kind: domain.KindFlight, Brand: BrandCanada})
	assert.Error(t, err, "flight snapshot without records")

	_, err = f.Restore(domain.Snapshot{Kind: "cruise"})
	assert.ErrorIs(t, err, ErrUnknownBrand)
}

func TestDescribeFormats(t *testing.T) {
	f := testFactory()

	flight, err := f.Flight(BrandCanada, domain.PassengerInfo{
		From: "Egypt", To: "Canada", DepartDate: "25-01-2022", ReturnDate: "10-02-2022", Adults: 1,
	}, domain.FlightOffer{Airline: BrandCanada, Price: 200, DepartDate: "25-01-2022", ReturnDate: "10-02-2022"})
	require.NoError(t, err)

	var buf bytes.Buffer
	flight.Describe(&buf)
	assert.Contains(t, buf.String(), "Airline Reservation/ AirCanada Airline: ")
	assert.Contains(t, buf.String(), "Flight Cost: 200")

	hotel, err := f.Hotel(BrandHilton, domain.StayInfo{
		Country: "Egypt", City: "Cairo", CheckIn: "29-01-2022", CheckOut: "10-02-2022", Rooms: 1, Nights: 2,
	}, domain.RoomOffer{Hotel: BrandHilton, RoomType: "Deluxe", PricePerNight: 500})
	require.NoError(t, err)

	buf.Reset()
	hotel.Describe(&buf)
	assert.Contains(t, buf.String(), "Hotel Reservation / Hilton Hotel: Egypt @ Cairo")
	assert.Contains(t, buf.String(), "Room Cost For All Nights: 1000")
}
