package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beachrank",
		Name:      "http_requests_total",
		Help:      "Count of handled HTTP requests.",
	}, []string{"path", "status"})

	MatchesImported = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "beachrank",
		Name:      "matches_imported_total",
		Help:      "Count of matches saved by tournament imports.",
	})

	RatingRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "beachrank",
		Name:      "rating_recomputes_total",
		Help:      "Count of full rating recalculations.",
	})

	PlayersRegistered = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "beachrank",
		Name:      "players_registered",
		Help:      "Number of known players.",
	})
)

func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			// the fiber error handler has not run yet
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		HTTPRequests.WithLabelValues(c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}

func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}
