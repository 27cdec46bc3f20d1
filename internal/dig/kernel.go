// Package dig implements logic for dependency injection using uber-go/dig.

package dig

import (
	"fmt"

	"go.uber.org/dig"
)

// Kernel owns the dependency container of the application.
type Kernel struct {
	Container *dig.Container
}

// Build populates the container once; later calls are no-ops.
func (t *Kernel) Build() error {
	if t.Container != nil {
		return nil
	}
	container, err := buildContainer()
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	t.Container = container
	return nil
}

func NewKernel() *Kernel {
	return &Kernel{}
}
