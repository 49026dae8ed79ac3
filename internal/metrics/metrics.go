package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestDuration tracks the latency of calls to the campaign API
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "campaign_api_request_duration_seconds",
			Help: "Duration of campaign API requests in seconds",
			Buckets: []float64{
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
				10.0,  // 10s
			},
		},
		[]string{"operation", "outcome"}, // list/get/create/update/delete, success or failure
	)

	// PageErrors counts banner messages shown to the user per action
	PageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_page_errors_total",
			Help: "Number of failed page actions surfaced to the user",
		},
		[]string{"action"}, // load, create or delete
	)
)

// RecordAPIRequest records the duration of a campaign API request
func RecordAPIRequest(operation string, err error, seconds float64) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	APIRequestDuration.WithLabelValues(operation, outcome).Observe(seconds)
}

// RecordPageError counts a failed page action
func RecordPageError(action string) {
	PageErrors.WithLabelValues(action).Inc()
}
