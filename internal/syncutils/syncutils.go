// Package syncutils provides synchronization objects for an app-wide usage.

package syncutils

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SyncUtils defines a new object and sets its attributes.
type SyncUtils struct {
	Wg         *sync.WaitGroup
	Ctx        context.Context
	SyncCancel context.CancelFunc
}

// NewSyncUtils initializes a new SyncUtils object whose context is cancelled
// on SIGINT or SIGTERM.
func NewSyncUtils() *SyncUtils {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return &SyncUtils{
		Wg:         &sync.WaitGroup{},
		Ctx:        ctx,
		SyncCancel: cancel,
	}
}

// Shutdown cancels the app-wide context and waits for background routines.
func (s *SyncUtils) Shutdown() {
	s.SyncCancel()
	s.Wg.Wait()
}
