//go:build !darwin

package tray

import (
	"context"
	"errors"
	"runtime"
)

// Run is only implemented on macOS.
func Run(ctx context.Context, newApp func(Tray) *App, extra <-chan Event) error {
	return errors.New("the menu-bar app is not supported on " + runtime.GOOS)
}
