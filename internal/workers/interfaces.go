// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutine and keep
// running until ctx is cancelled or Stop is called. Stop blocks until that
// goroutine has exited and is a no-op for a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Refresher reloads state from its source of truth.
type Refresher interface {
	Refresh(ctx context.Context) error
}
