// Package metrics exposes CMS fetch and HTTP request metrics through
// Prometheus.
package metrics
