package domain

import (
	"fmt"
	"io"
)

// Account is a registered user and the itineraries they have paid for.
// Only itineraries are storable; leaf reservations cannot reach an account.
type Account struct {
	Username string
	Password string
	Email    string

	itineraries []*Itinerary
}

func NewAccount(username, password, email string) *Account {
	return &Account{Username: username, Password: password, Email: email}
}

// AddItinerary stores a deep clone, decoupled from the builder's working
// instance.
func (a *Account) AddItinerary(it *Itinerary) {
	a.itineraries = append(a.itineraries, it.clone())
}

// RemoveItinerary drops the i-th stored itinerary (0-based). Returns false
// when i is out of range.
func (a *Account) RemoveItinerary(i int) bool {
	if i < 0 || i >= len(a.itineraries) {
		return false
	}
	a.itineraries = append(a.itineraries[:i], a.itineraries[i+1:]...)
	return true
}

// Itineraries returns the stored itineraries. The slice is a copy; the
// elements stay owned by the account.
func (a *Account) Itineraries() []*Itinerary {
	out := make([]*Itinerary, len(a.itineraries))
	copy(out, a.itineraries)
	return out
}

// TotalCost is the grand total across all stored itineraries.
func (a *Account) TotalCost() float64 {
	var sum float64
	for _, it := range a.itineraries {
		sum += it.Cost()
	}
	return sum
}

func (a *Account) DescribeProfile(w io.Writer) {
	fmt.Fprint(w, "\nUser's Profile: \n")
	fmt.Fprint(w, "----------------------\n\n")
	fmt.Fprintf(w, "Name: %s", a.Username)
	fmt.Fprintf(w, "\nEmail: %s\n\n", a.Email)
}

func (a *Account) DescribeItineraries(w io.Writer) {
	for _, it := range a.itineraries {
		it.Describe(w)
	}
	fmt.Fprintf(w, "\nTotal Cost for All Itineraries: %g\n\n", a.TotalCost())
}

// SnapshotItineraries serializes the stored itineraries for the account
// repository.
func (a *Account) SnapshotItineraries() []Snapshot {
	out := make([]Snapshot, 0, len(a.itineraries))
	for _, it := range a.itineraries {
		out = append(out, it.Snapshot())
	}
	return out
}

// RestoreItineraries replaces the stored itineraries from snapshots.
func (a *Account) RestoreItineraries(snaps []Snapshot, restore RestoreFunc) error {
	a.itineraries = nil
	for _, s := range snaps {
		it, err := ItineraryFromSnapshot(s, restore)
		if err != nil {
			return err
		}
		a.itineraries = append(a.itineraries, it)
	}
	return nil
}
