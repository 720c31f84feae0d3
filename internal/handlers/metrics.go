package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counters for the things the group actually argues about: how many scores
// got entered (and how many bounced off a lock) and how many lines were quoted.
var (
	scoreWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buddiescup_score_writes_total",
		Help: "Score create/update/delete operations, by outcome.",
	}, []string{"outcome"}) // accepted, locked, rejected

	oddsQuotes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buddiescup_odds_quotes_total",
		Help: "Moneyline quotes served, by kind.",
	}, []string{"kind"}) // matchup, tease, live

	broadcasts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buddiescup_ws_broadcasts_total",
		Help: "Websocket day broadcasts triggered by score writes.",
	})
)

// Metrics handles GET /metrics by adapting the standard promhttp handler into
// fiber's fasthttp world.
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
