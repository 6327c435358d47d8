package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"travelbook/internal/adapters/console"
	"travelbook/internal/domain"
	"travelbook/internal/payments"
)

// Manager is the top-level coordinator: sign-up/sign-in, itinerary
// building and payment, driven from the console. It is constructed
// explicitly in main and holds one set of session objects, so a future
// one-session-per-connection setup only needs one Manager per session.
type Manager struct {
	accounts *AccountService
	builder  *ItineraryBuilder
	payment  *PaymentHandler
	ui       *console.Console
	log      zerolog.Logger
}

func NewManager(accounts *AccountService, builder *ItineraryBuilder, payment *PaymentHandler, ui *console.Console, log zerolog.Logger) *Manager {
	return &Manager{accounts: accounts, builder: builder, payment: payment, ui: ui, log: log}
}

// Run drives the menu loop until the user exits or input runs out.
func (m *Manager) Run(ctx context.Context) {
	for {
		in, ok := m.ui.ReadToken("1- Sign Up.\n2- Sign In.\n3- Exit.\n")
		if !ok {
			return
		}
		switch in {
		case "1":
			m.signUp(ctx)
		case "2":
			m.signIn(ctx)
		case "3":
			return
		}
		for m.accounts.Current() != nil {
			in, ok := m.ui.ReadToken("1- View Profile.\n2- Make Itinerary.\n3- List My Itineraries.\n4- Logout.\n")
			if !ok {
				return
			}
			switch in {
			case "1":
				m.accounts.Current().DescribeProfile(m.ui.Out())
			case "2":
				m.makeItinerary(ctx)
			case "3":
				m.accounts.Current().DescribeItineraries(m.ui.Out())
			case "4":
				m.accounts.Logout()
				m.builder.Clear()
			}
		}
	}
}

func (m *Manager) signUp(ctx context.Context) {
	username, ok := m.ui.ReadToken("\nEnter User's name: ")
	if !ok {
		return
	}
	password, ok := m.ui.ReadToken("\nEnter Password: ")
	if !ok {
		return
	}
	email, ok := m.ui.ReadToken("\nEnter Email: ")
	if !ok {
		return
	}
	if err := m.accounts.Register(ctx, username, password, email); err != nil {
		m.ui.Printf("Sign up failed: %v\n", err)
	}
}

func (m *Manager) signIn(ctx context.Context) {
	username, ok := m.ui.ReadToken("Enter User's name: \n")
	if !ok {
		return
	}
	password, ok := m.ui.ReadToken("Enter Password: \n")
	if !ok {
		return
	}
	if err := m.accounts.SignIn(ctx, username, password); err != nil {
		m.ui.Printf("Wrong username or password.\n")
	}
}

func (m *Manager) makeItinerary(ctx context.Context) {
	for {
		in, ok := m.ui.ReadToken("1- Add Flight.\n2- Add Hotel.\n3- Save.\n4- Cancel.\n")
		if !ok {
			return
		}
		switch in {
		case "1":
			m.addFlight(ctx)
		case "2":
			m.addHotel(ctx)
		case "3":
			m.save(ctx)
			return
		case "4":
			m.builder.Clear() // call it off
			return
		}
	}
}

func (m *Manager) addFlight(ctx context.Context) {
	var p domain.PassengerInfo
	var ok bool
	if p.From, ok = m.ui.ReadToken("\nFrom Which Country: "); !ok {
		return
	}
	if p.DepartDate, ok = m.ui.ReadToken(fmt.Sprintf("\nDesired Departure Date from %s : ", p.From)); !ok {
		return
	}
	if p.To, ok = m.ui.ReadToken("\nTo Which Country: "); !ok {
		return
	}
	if p.ReturnDate, ok = m.ui.ReadToken(fmt.Sprintf("\nDate to %s : ", p.To)); !ok {
		return
	}
	m.ui.Printf("\nEnter number of adults - children (5 - 16) and infants: ")
	if p.Adults, ok = m.ui.ReadInt(""); !ok {
		return
	}
	if p.Children, ok = m.ui.ReadInt(""); !ok {
		return
	}
	if p.Infants, ok = m.ui.ReadInt(""); !ok {
		return
	}

	err := m.builder.AddFlight(ctx, p, func(offers []domain.FlightOffer) int {
		for _, o := range offers {
			m.ui.Printf("Airline: %s - Price: %g - Departure Date: %s - Arrival Date: %s\n",
				o.Airline, o.Price, o.DepartDate, o.ReturnDate)
		}
		choice, ok := m.ui.ReadInt("Choose what suits you (-1 to cancel): \n")
		if !ok {
			return -1
		}
		return choice
	})
	if err != nil && !errors.Is(err, ErrAborted) {
		m.log.Error().Err(err).Msg("add flight failed")
		m.ui.Printf("Could not add the flight.\n")
	}
}

func (m *Manager) addHotel(ctx context.Context) {
	var stay domain.StayInfo
	var ok bool
	if stay.Country, ok = m.ui.ReadToken("\nCountry: "); !ok {
		return
	}
	if stay.City, ok = m.ui.ReadToken("\nCity: "); !ok {
		return
	}
	if stay.CheckIn, ok = m.ui.ReadToken("\nDate From: "); !ok {
		return
	}
	if stay.CheckOut, ok = m.ui.ReadToken("\nDate to: "); !ok {
		return
	}
	m.ui.Printf("\nEnter Number of adults - children (5): ")
	if stay.Adults, ok = m.ui.ReadInt(""); !ok {
		return
	}
	if stay.Children, ok = m.ui.ReadInt(""); !ok {
		return
	}
	if stay.Rooms, ok = m.ui.ReadInt("\nEnter Number of needed rooms: "); !ok {
		return
	}
	if stay.Nights, ok = m.ui.ReadInt("\nEnter Number Of desired Nights: "); !ok {
		return
	}

	err := m.builder.AddHotel(ctx, stay, func(offers []domain.RoomOffer) int {
		for _, o := range offers {
			m.ui.Printf("Hotel: %s - Room: %s - Price: %g - From: %s - To: %s\n",
				o.Hotel, o.RoomType, o.PricePerNight, o.CheckIn, o.CheckOut)
		}
		choice, ok := m.ui.ReadInt("Choose what suits you (-1 to cancel): \n")
		if !ok {
			return -1
		}
		return choice
	})
	if err != nil && !errors.Is(err, ErrAborted) {
		m.log.Error().Err(err).Msg("add hotel failed")
		m.ui.Printf("Could not add the hotel.\n")
	}
}

// save pays for the working itinerary and, only on success, commits it to
// the signed-in account and clears the builder. Failure leaves the
// working itinerary untouched so the user can retry or cancel explicitly.
func (m *Manager) save(ctx context.Context) {
	if m.builder.Empty() {
		m.ui.Printf("Empty Itinerary.\n")
		return
	}
	info, ok := m.collectTransaction()
	if !ok {
		return
	}
	info.Amount = m.builder.Itinerary().Cost()
	if !m.payment.Pay(ctx, info) {
		m.ui.Printf("Payment is not made !!. (Try Again)\n")
		return
	}
	m.ui.Printf("Your Payment is successfully made.\n")
	if err := m.accounts.AddItinerary(ctx, m.builder.Itinerary()); err != nil {
		m.log.Error().Err(err).Msg("store itinerary failed")
		return
	}
	m.builder.Clear()
}

func (m *Manager) collectTransaction() (domain.TransactionInfo, bool) {
	var info domain.TransactionInfo

	choice, ok := m.ui.ReadField("\nChoose your payment method: (to cancel Enter e/E) \n1- PayPal\n2- Stripe\n3- Square\n")
	if !ok {
		return info, false
	}
	switch choice {
	case "1":
		info.Method = payments.MethodPayPal
	case "2":
		info.Method = payments.MethodStripe
	case "3":
		info.Method = payments.MethodSquare
	}

	if info.Name, ok = m.ui.ReadField("\nEnter your name on card: (to cancel Enter e/E) "); !ok {
		return info, false
	}
	if info.Address, ok = m.ui.ReadField("\nEnter your address: (to cancel Enter e/E) "); !ok {
		return info, false
	}
	if info.CardID, ok = m.ui.ReadField("\nEnter your card ID number: (to cancel Enter e/E) "); !ok {
		return info, false
	}
	if info.ExpireDate, ok = m.ui.ReadField("\nEnter your card expire date: (to cancel Enter e/E) "); !ok {
		return info, false
	}
	ccv, ok := m.ui.ReadField("\nEnter your ccv: (to cancel Enter e/E) ")
	if !ok {
		return info, false
	}
	n, err := strconv.Atoi(ccv)
	if err != nil {
		return info, false
	}
	info.CVV = n
	return info, true
}
