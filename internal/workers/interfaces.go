// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the ImageCleaner that removes image files
// of deleted users and places off the request path.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done or the worker fails. Implementations should
// finish any queued work before returning.
type Worker interface {
	Run(ctx context.Context) error
}

// ImageRemover schedules the removal of a stored image. Removal is best
// effort: failures are logged, never returned to the caller.
type ImageRemover interface {
	Remove(ctx context.Context, ref string)
}
