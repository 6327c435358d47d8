package observability

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	PartnerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelbook", Name: "partner_requests_total", Help: "Calls to partner (airline/hotel) APIs."},
		[]string{"brand", "op", "status"},
	)
	Bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelbook", Name: "bookings_total", Help: "Reservation commits per brand."},
		[]string{"brand", "status"},
	)
	Payments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelbook", Name: "payments_total", Help: "Payment attempts per method."},
		[]string{"method", "status"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travelbook", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

// Serve starts the optional metrics endpoint. METRICS_ADDR empty = disabled.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           metricsMux(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

// metricsMux serves the travelbook families, not the default registry.
func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(InitRegistry()))
	return mux
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(PartnerRequests, Bookings, Payments, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObservePartner(brand, op string, ok bool) {
	PartnerRequests.WithLabelValues(brand, op, status(ok)).Inc()
}

func ObserveBooking(brand string, ok bool) {
	Bookings.WithLabelValues(brand, status(ok)).Inc()
}

func ObservePayment(method string, ok bool) {
	Payments.WithLabelValues(method, status(ok)).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "declined"
}
