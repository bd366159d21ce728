// Package tray implements the menu-bar shell: application state, the event
// loop and its binding to the system tray.
package tray

import (
	"context"
	"fmt"

	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"
)

// Status texts shown in the tooltip.
const (
	StatusReady   = "Ready."
	StatusDHCP    = "DHCP"
	StatusStatic  = "Static"
	StatusUnknown = "Unknown"
)

// Toggle item labels.
const (
	LabelApply = "Apply"
	LabelStop  = "Stop"
)

// EventKind identifies what an Event asks the loop to do.
type EventKind int

const (
	// EventToggle flips between DHCP and static mode
	EventToggle EventKind = iota
	// EventQuit stops the loop
	EventQuit
	// EventReconfigure replaces the manager after a config change
	EventReconfigure
)

// Event is delivered to App.Run.
type Event struct {
	Kind    EventKind
	Manager port.NetworkConfigurationManager // set for EventReconfigure
}

// Tray is what App needs from the tray icon and its menu.
type Tray interface {
	SetIcon(applied bool)
	SetTitle(title string)
	SetTooltip(tooltip string)
	SetToggleLabel(label string)
}

// App is the application state. It is owned by the goroutine running Run;
// none of its methods are safe for concurrent use.
type App struct {
	tray    Tray
	manager port.NetworkConfigurationManager

	applied   bool
	status    string
	currentIP string
}

// NewApp creates the application state around a tray and a manager.
func NewApp(tray Tray, manager port.NetworkConfigurationManager) *App {
	return &App{
		tray:    tray,
		manager: manager,
		status:  StatusReady,
	}
}

// Applied reports whether the static configuration is active.
func (a *App) Applied() bool { return a.applied }

// Status returns the status text.
func (a *App) Status() string { return a.status }

// CurrentIP returns the address shown in the tooltip, if any.
func (a *App) CurrentIP() string { return a.currentIP }

// Init derives the toggle state from the OS rather than from any saved
// state, then draws the tray.
func (a *App) Init(ctx context.Context) {
	logger := logging.WithComponentAndService("tray", a.manager.GetServiceName())

	info, err := a.manager.Detect(ctx)
	if err != nil {
		logger.WithError(err).Warn("Failed to detect network state")

		a.applied = false
		a.status = StatusUnknown
		a.currentIP = ""
	} else {
		a.applied = !info.IsDHCP
		a.status = statusFor(a.applied)
		a.currentIP = info.IP

		logger.WithFields(map[string]interface{}{
			"applied": a.applied,
			"ip":      info.IP,
		}).Info("Detected network state")
	}

	a.refresh()
}

// Toggle reverts to DHCP when the static configuration is active and
// applies it otherwise. Failures leave the state unchanged and are shown in
// the tooltip.
func (a *App) Toggle(ctx context.Context) error {
	logger := logging.WithComponentAndService("tray", a.manager.GetServiceName())

	var (
		ip  string
		err error
	)
	if a.applied {
		err = a.manager.Disable(ctx)
	} else {
		ip, err = a.manager.Enable(ctx)
	}

	if err != nil {
		logger.WithError(err).Error("Toggle failed")

		a.status = fmt.Sprintf("Failed: %s. Try running with sudo.", err)
		a.refresh()

		return err
	}

	a.applied = !a.applied
	a.status = statusFor(a.applied)
	if a.applied {
		a.currentIP = ip
	} else {
		a.currentIP = ""
	}

	logger.WithField("applied", a.applied).Info("Toggled network configuration")

	a.refresh()

	return nil
}

// Run dispatches events one at a time until EventQuit arrives, events is
// closed or ctx is cancelled. A toggle runs to completion before the next
// event is read.
func (a *App) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			switch ev.Kind {
			case EventToggle:
				// Errors are already reflected in the tooltip.
				_ = a.Toggle(ctx)
			case EventQuit:
				return nil
			case EventReconfigure:
				if ev.Manager != nil {
					a.manager = ev.Manager
					a.Init(ctx)
				}
			}
		}
	}
}

// Tooltip returns "<status> (<ip>)", or just the status without an address.
func (a *App) Tooltip() string {
	if a.currentIP != "" {
		return fmt.Sprintf("%s (%s)", a.status, a.currentIP)
	}
	return a.status
}

func (a *App) refresh() {
	a.tray.SetIcon(a.applied)
	a.tray.SetTooltip(a.Tooltip())

	if a.applied {
		a.tray.SetToggleLabel(LabelStop)
		a.tray.SetTitle(a.currentIP)
	} else {
		a.tray.SetToggleLabel(LabelApply)
		a.tray.SetTitle("")
	}
}

func statusFor(applied bool) string {
	if applied {
		return StatusStatic
	}
	return StatusDHCP
}
