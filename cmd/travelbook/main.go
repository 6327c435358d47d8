package main

import (
	"context"
	"os"

	"github.com/alicebob/miniredis/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"travelbook/internal/adapters/console"
	"travelbook/internal/adapters/observability"
	"travelbook/internal/adapters/partnerapi"
	"travelbook/internal/adapters/payproc"
	"travelbook/internal/adapters/redisstore"
	"travelbook/internal/app"
	"travelbook/internal/payments"
	"travelbook/internal/reservations"
	"travelbook/internal/shared"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.Serve()

	ctx := context.Background()

	// With no REDIS_ADDR configured, an embedded server backs the stores
	// for the lifetime of the process.
	addr := cfg.RedisAddr
	if addr == "" {
		srv, err := miniredis.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("embedded redis failed to start")
		}
		defer srv.Close()
		addr = srv.Addr()
		log.Info().Str("addr", addr).Msg("embedded redis started")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("redis unreachable")
	}

	partnerLog := log.With().Str("component", "partnerapi").Logger()
	factory := reservations.NewFactory(reservations.Partners{
		AirCanada: partnerapi.NewAirCanada(partnerLog, cfg.PartnerRPS),
		Turkish:   partnerapi.NewTurkish(partnerLog, cfg.PartnerRPS),
		Hilton:    partnerapi.NewHilton(partnerLog, cfg.PartnerRPS),
		Marriott:  partnerapi.NewMarriott(partnerLog, cfg.PartnerRPS),
	})

	accounts := app.NewAccountService(
		redisstore.NewAccounts(rdb, factory.Restore),
		log.With().Str("component", "accounts").Logger(),
	)
	booking := app.NewBookingService(
		factory,
		redisstore.NewCache(rdb),
		cfg.CacheTTL,
		log.With().Str("component", "booking").Logger(),
	)
	payment := app.NewPaymentHandler(payments.Processors{
		PayPal: payproc.NewPayPal(log.With().Str("processor", "paypal").Logger()),
		Stripe: payproc.NewStripe(log.With().Str("processor", "stripe").Logger()),
		Square: payproc.NewSquare(log.With().Str("processor", "square").Logger()),
	}, log.With().Str("component", "payment").Logger())

	ui := console.New(os.Stdin, os.Stdout)
	mgr := app.NewManager(
		accounts,
		app.NewItineraryBuilder(booking),
		payment,
		ui,
		log.With().Str("component", "manager").Logger(),
	)
	mgr.Run(ctx)
}
