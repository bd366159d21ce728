//go:build darwin

package tray

import (
	"context"

	"macnetconfig/internal/pkg/logging"

	"fyne.io/systray"
)

// Tooltip shown before the state is known.
const defaultTooltip = "macOS Network Config"

// SystrayShell implements Tray on top of the system menu bar.
type SystrayShell struct {
	toggleItem *systray.MenuItem
	quitItem   *systray.MenuItem
	taps       tapQueue
}

// Ensure SystrayShell implements Tray
var _ Tray = (*SystrayShell)(nil)

// SetIcon implements the Tray interface for *SystrayShell.
func (s *SystrayShell) SetIcon(applied bool) {
	systray.SetIcon(Icon(applied))
}

// SetTitle implements the Tray interface for *SystrayShell.
func (s *SystrayShell) SetTitle(title string) {
	systray.SetTitle(title)
}

// SetTooltip implements the Tray interface for *SystrayShell.
func (s *SystrayShell) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

// SetToggleLabel implements the Tray interface for *SystrayShell.
func (s *SystrayShell) SetToggleLabel(label string) {
	s.toggleItem.SetTitle(label)
}

// Run shows the menu-bar item and blocks until the user quits or ctx is
// cancelled. It must be called from the main goroutine. app is built by
// newApp once the tray exists; external events such as config reloads can
// be sent on extra.
func Run(ctx context.Context, newApp func(Tray) *App, extra <-chan Event) error {
	logger := logging.WithComponent("tray")

	onReady := func() {
		systray.SetIcon(Icon(false))
		systray.SetTooltip(defaultTooltip)

		shell := &SystrayShell{
			toggleItem: systray.AddMenuItem(LabelApply, "Switch between DHCP and the static address"),
			taps:       newTapQueue(),
		}
		systray.AddSeparator()
		shell.quitItem = systray.AddMenuItem("Quit", "Quit the app")

		// A left click toggles; the menu opens on right click.
		systray.SetOnTapped(func() { shell.taps.Tap() })

		app := newApp(shell)
		events := make(chan Event)

		go shell.forward(ctx, events, extra)
		go func() {
			app.Init(ctx)
			if err := app.Run(ctx, events); err != nil {
				logger.WithError(err).Debug("Event loop stopped")
			}
			systray.Quit()
		}()
	}

	onExit := func() {
		logger.Info("Tray stopped")
	}

	systray.Run(onReady, onExit)

	return nil
}

// forward turns icon taps, menu clicks and external events into loop events.
func (s *SystrayShell) forward(ctx context.Context, events chan<- Event, extra <-chan Event) {
	for {
		var ev Event
		select {
		case <-ctx.Done():
			return
		case <-s.taps:
			ev = Event{Kind: EventToggle}
		case <-s.toggleItem.ClickedCh:
			ev = Event{Kind: EventToggle}
		case <-s.quitItem.ClickedCh:
			ev = Event{Kind: EventQuit}
		case e, ok := <-extra:
			if !ok {
				extra = nil
				continue
			}
			ev = e
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
		if ev.Kind == EventQuit {
			return
		}
	}
}
