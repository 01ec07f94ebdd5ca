package mocks

import "context"

// ObservedFailure is one call recorded by FailureObserver.
type ObservedFailure struct {
	Op  string
	Key string
	Err error
}

// FailureObserver is a mock implementation of ports.FailureObserver.
type FailureObserver struct {
	Failures []ObservedFailure
}

// ObserveFailure records the failure.
func (m *FailureObserver) ObserveFailure(_ context.Context, op, key string, err error) {
	m.Failures = append(m.Failures, ObservedFailure{Op: op, Key: key, Err: err})
}
