// Package metrics provides Prometheus metrics for the FlipHQ backend.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fliphq_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fliphq_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Token Ledger Metrics
	TokensDeductedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fliphq_tokens_deducted_total",
			Help: "Total number of tokens spent on billable actions",
		},
	)

	TokensRefundedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fliphq_tokens_refunded_total",
			Help: "Total number of tokens refunded after failed or empty actions",
		},
	)

	TokensPurchasedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fliphq_tokens_purchased_total",
			Help: "Total number of tokens added through bundle purchases",
		},
	)

	TokenBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fliphq_token_balance",
			Help: "Current spendable token balance",
		},
	)

	// Valuation Metrics
	ValuationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fliphq_valuations_total",
			Help: "Total number of valuation estimates computed",
		},
	)

	ValuationRating = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fliphq_valuation_rating",
			Help:    "Star ratings produced by the valuation engine",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	// Scan Metrics
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fliphq_scans_total",
			Help: "Spot scans by outcome",
		},
		[]string{"result"}, // "success", "empty", "error", "insufficient"
	)

	ScanSpotsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fliphq_scan_spots_returned",
			Help:    "Number of spots returned per successful scan",
			Buckets: []float64{0, 1, 3, 5, 10, 15},
		},
	)

	// Assistant Metrics
	AssistantRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fliphq_assistant_requests_total",
			Help: "Assistant chat exchanges by outcome",
		},
		[]string{"result"}, // "success", "insufficient", "rate_limited"
	)

	// Inventory Metrics
	InventoryItemsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fliphq_inventory_items_total",
			Help: "Total number of logged items",
		},
	)

	InventoryItemsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fliphq_inventory_items_by_status",
			Help: "Number of logged items by pipeline status",
		},
		[]string{"status"},
	)

	InventoryEstimatedValue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fliphq_inventory_estimated_value",
			Help: "Total estimated resale value of unsold inventory",
		},
	)

	InventoryRealizedProfit = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fliphq_inventory_realized_profit",
			Help: "Total realized profit across flipped items",
		},
	)

	// Snapshot Metrics
	SnapshotsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fliphq_snapshots_total",
			Help: "Total number of inventory value snapshots recorded",
		},
	)
)
