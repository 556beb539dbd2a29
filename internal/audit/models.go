// Package audit records every inheritance calculation for after-the-fact
// review. Events are buffered on a channel and drained by a worker, so the
// request path never blocks on the audit transport.
package audit

import "time"

// Event describes one completed calculation.
type Event struct {
	ID         string    `json:"id"`
	EstateID   string    `json:"estateId,omitempty"`
	Case       string    `json:"case"`
	BaseNumber int       `json:"baseNumber"`
	HeirCount  int       `json:"heirCount"`
	Excluded   int       `json:"excluded"`
	Amount     float64   `json:"amount"`
	RequestID  string    `json:"requestId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
