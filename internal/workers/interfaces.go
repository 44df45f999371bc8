// Package workers runs one-off and background jobs next to the HTTP API.
//
// The only job today is the legacy data migration, which upgrades documents
// written by earlier versions of the application before any request is
// served.
package workers

import "context"

// Worker is a unit of background work. Run blocks until the work is done or
// ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}
