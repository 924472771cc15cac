package metrics

import (
	"context"
	"errors"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

// Result labels
const (
	ResultSuccess   = "success"
	ResultNotFound  = "not_found"
	ResultCancelled = "cancelled"
	ResultError     = "error"
)

const namespace = "simplerecipes"

// PrometheusRecorder implements simplerecipes.FetchObserver using Prometheus metrics.
type PrometheusRecorder struct {
	reg             *prom.Registry
	fetchDuration   *prom.HistogramVec
	fetchResults    *prom.CounterVec
	requestDuration *prom.HistogramVec
}

var _ simplerecipes.FetchObserver = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder constructs and registers the metrics on reg, or on a
// fresh registry when reg is nil. Go and process collectors are included.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		fetchDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "cms_fetch_duration_seconds",
			Help:      "Duration of content delivery API calls",
			Buckets:   prom.DefBuckets,
		}, []string{"op", "result"}),
		fetchResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cms_fetch_results_total",
			Help:      "Content delivery API calls by outcome",
		}, []string{"op", "result"}),
		requestDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route pattern",
			Buckets:   prom.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	reg.MustRegister(pr.fetchDuration, pr.fetchResults, pr.requestDuration)
	reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
	return pr
}

// Registry returns the registry the metrics are registered on
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

// ObserveFetch implements simplerecipes.FetchObserver
func (p *PrometheusRecorder) ObserveFetch(op string, d time.Duration, err error) {
	if p == nil {
		return
	}
	res := resultLabel(err)
	p.fetchDuration.WithLabelValues(op, res).Observe(d.Seconds())
	p.fetchResults.WithLabelValues(op, res).Inc()
}

// ObserveRequest records one served HTTP request
func (p *PrometheusRecorder) ObserveRequest(route, method, status string, d time.Duration) {
	if p == nil {
		return
	}
	p.requestDuration.WithLabelValues(route, method, status).Observe(d.Seconds())
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case simplerecipes.IsNotFound(err):
		return ResultNotFound
	case errors.Is(err, context.Canceled):
		return ResultCancelled
	default:
		return ResultError
	}
}
