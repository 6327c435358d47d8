package domain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountWithItineraries(costs ...float64) *Account {
	a := NewAccount("nour", "pw", "nour@mail.com")
	for _, c := range costs {
		it := NewItinerary()
		it.Add(&stubReservation{brand: "Canada", cost: c})
		a.AddItinerary(it)
	}
	return a
}

func TestAccountAddItineraryStoresClone(t *testing.T) {
	a := NewAccount("nour", "pw", "nour@mail.com")
	it := NewItinerary()
	it.Add(&stubReservation{cost: 100})
	a.AddItinerary(it)

	it.Clear()
	require.Len(t, a.Itineraries(), 1)
	assert.Equal(t, 100.0, a.TotalCost(), "clearing the builder copy must not empty the stored one")
}

func TestAccountRemoveItinerary(t *testing.T) {
	a := accountWithItineraries(100, 200, 300)

	assert.False(t, a.RemoveItinerary(-1))
	assert.False(t, a.RemoveItinerary(3))
	require.True(t, a.RemoveItinerary(1))
	assert.Equal(t, 400.0, a.TotalCost())
	assert.Len(t, a.Itineraries(), 2)
}

func TestAccountSnapshotRestoreRoundtrip(t *testing.T) {
	a := accountWithItineraries(600, 3000)

	snaps := a.SnapshotItineraries()
	require.Len(t, snaps, 2)

	b := NewAccount(a.Username, a.Password, a.Email)
	require.NoError(t, b.RestoreItineraries(snaps, restoreStub))
	assert.Equal(t, a.TotalCost(), b.TotalCost())
	assert.Len(t, b.Itineraries(), 2)
}

func TestAccountDescribe(t *testing.T) {
	a := accountWithItineraries(600)

	var buf bytes.Buffer
	a.DescribeProfile(&buf)
	assert.Contains(t, buf.String(), "Name: nour")
	assert.Contains(t, buf.String(), "Email: nour@mail.com")

	buf.Reset()
	a.DescribeItineraries(&buf)
	assert.Contains(t, buf.String(), "Total Cost for All Itineraries: 600")
}
