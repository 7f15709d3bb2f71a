package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartLinesAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_lines_added_total",
		Help: "Total number of new cart lines created",
	})

	CartLinesMergedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_lines_merged_total",
		Help: "Total number of add-to-cart calls merged into an existing line",
	})

	CartLinesRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_lines_removed_total",
		Help: "Total number of cart lines removed",
	})

	CartStockRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_stock_rejections_total",
		Help: "Total number of quantity changes rejected by the stock ceiling",
	})

	OptionRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "option_selection_rejections_total",
		Help: "Total number of rejected option selections",
	}, []string{"reason"})

	CheckoutsStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_started_total",
		Help: "Total number of checkout sessions started",
	})

	CheckoutsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_completed_total",
		Help: "Total number of checkouts that reached settlement",
	})

	CheckoutsAbandonedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_abandoned_total",
		Help: "Total number of checkout sessions abandoned before settlement",
	})

	CheckoutValidationFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_validation_failed_total",
		Help: "Total number of blocked checkout transitions",
	}, []string{"step"})

	SettlementLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "settlement_latency_seconds",
		Help:    "Time between entering Processing and settlement firing",
		Buckets: prometheus.DefBuckets,
	})

	TrackingLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracking_lookups_total",
		Help: "Total number of delivery tracking lookups",
	}, []string{"result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
