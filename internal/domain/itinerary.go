package domain

import (
	"fmt"
	"io"
)

// Itinerary is the composite Reservation: an ordered collection of owned
// reservations (insertion order = display order). It is itself a
// Reservation, so itineraries nest and clone like any leaf.
type Itinerary struct {
	reservations []Reservation
}

func NewItinerary() *Itinerary { return &Itinerary{} }

// Add stores a clone of r; the caller keeps ownership of the original and
// may mutate or discard it without affecting the itinerary.
func (it *Itinerary) Add(r Reservation) {
	it.reservations = append(it.reservations, r.Clone())
}

// Clear empties the itinerary. Idempotent.
func (it *Itinerary) Clear() {
	it.reservations = nil
}

func (it *Itinerary) IsEmpty() bool { return len(it.reservations) == 0 }

func (it *Itinerary) Len() int { return len(it.reservations) }

// Cost sums the children recursively; a nested itinerary contributes its
// own recursive total.
func (it *Itinerary) Cost() float64 {
	var sum float64
	for _, r := range it.reservations {
		sum += r.Cost()
	}
	return sum
}

func (it *Itinerary) Describe(w io.Writer) {
	fmt.Fprintf(w, "Itinerary of %d sub-reservations: \n", len(it.reservations))
	for _, r := range it.reservations {
		r.Describe(w)
		fmt.Fprint(w, "\n")
	}
	fmt.Fprintf(w, "\nItinerary Cost: %g", it.Cost())
	fmt.Fprint(w, "\n----------------------------------\n")
}

func (it *Itinerary) Clone() Reservation { return it.clone() }

func (it *Itinerary) clone() *Itinerary {
	out := &Itinerary{}
	for _, r := range it.reservations {
		out.reservations = append(out.reservations, r.Clone())
	}
	return out
}

func (it *Itinerary) Snapshot() Snapshot {
	s := Snapshot{Kind: KindItinerary}
	for _, r := range it.reservations {
		s.Children = append(s.Children, r.Snapshot())
	}
	return s
}

// ItineraryFromSnapshot rebuilds an itinerary, delegating leaf kinds to
// restore (the reservations factory) and recursing on nested itineraries.
func ItineraryFromSnapshot(s Snapshot, restore RestoreFunc) (*Itinerary, error) {
	if s.Kind != KindItinerary {
		return nil, fmt.Errorf("snapshot kind %q is not an itinerary", s.Kind)
	}
	it := NewItinerary()
	for _, child := range s.Children {
		var (
			r   Reservation
			err error
		)
		if child.Kind == KindItinerary {
			r, err = ItineraryFromSnapshot(child, restore)
		} else {
			r, err = restore(child)
		}
		if err != nil {
			return nil, err
		}
		// the rebuilt reservation is already exclusively ours, no extra clone
		it.reservations = append(it.reservations, r)
	}
	return it, nil
}
