// Package probe checks connectivity to the external reporting database.
// The check runs once at startup; its outcome is informational and never
// blocks or degrades the service.
package probe

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Status is the outcome of the startup connectivity check.
type Status struct {
	Configured bool      `json:"configured"`
	Connected  bool      `json:"connected"`
	CheckedAt  time.Time `json:"checkedAt"`
	Error      string    `json:"error,omitempty"`
}

// checkTimeout bounds the whole connect-and-ping attempt.
const checkTimeout = 5 * time.Second

// Check attempts a single connect-and-ping against the configured URI.
// An empty URI reports an unconfigured probe. Failures are captured in the
// returned status, never as an error.
func Check(ctx context.Context, uri string) Status {
	status := Status{CheckedAt: time.Now()}
	if uri == "" {
		return status
	}
	status.Configured = true

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		status.Error = err.Error()
		return status
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		status.Error = err.Error()
		return status
	}

	status.Connected = true
	return status
}
