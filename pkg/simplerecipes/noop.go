package simplerecipes

import "time"

// NoopFetchObserver is a no-operation implementation of FetchObserver
type NoopFetchObserver struct{}

// NewNoopFetchObserver creates a new no-operation fetch observer
func NewNoopFetchObserver() FetchObserver {
	return &NoopFetchObserver{}
}

// ObserveFetch does nothing
func (n *NoopFetchObserver) ObserveFetch(op string, duration time.Duration, err error) {}
