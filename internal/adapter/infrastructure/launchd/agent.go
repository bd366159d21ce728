// Package launchd installs the per-user LaunchAgent that starts the menu-bar
// app at login.
package launchd

import (
	"fmt"
	"path/filepath"

	"macnetconfig/internal/pkg/logging"
	"macnetconfig/internal/port"

	"howett.net/plist"
)

// DefaultLabel identifies the agent to launchd.
const DefaultLabel = "com.macnetconfig.tray"

// agent is the subset of launchd.plist(5) keys the app needs.
type agent struct {
	Label             string
	ProgramArguments  []string
	RunAtLoad         bool
	ProcessType       string
	StandardOutPath   string `plist:",omitempty"`
	StandardErrorPath string `plist:",omitempty"`
}

// AgentManager writes and removes the LaunchAgent plist.
type AgentManager struct {
	dir     string
	label   string
	fileMgr port.FileManager
}

// NewAgentManager creates a manager for agents stored in dir, usually
// ~/Library/LaunchAgents.
func NewAgentManager(dir, label string, fileMgr port.FileManager) *AgentManager {
	if label == "" {
		label = DefaultLabel
	}

	return &AgentManager{
		dir:     dir,
		label:   label,
		fileMgr: fileMgr,
	}
}

// Path returns the plist location.
func (m *AgentManager) Path() string {
	return filepath.Join(m.dir, m.label+".plist")
}

// Installed reports whether the plist exists.
func (m *AgentManager) Installed() bool {
	return m.fileMgr.FileExists(m.Path())
}

// Marshal renders the plist that runs args at login.
func (m *AgentManager) Marshal(args []string, logFile string) ([]byte, error) {
	data, err := plist.MarshalIndent(agent{
		Label:             m.label,
		ProgramArguments:  args,
		RunAtLoad:         true,
		ProcessType:       "Interactive",
		StandardOutPath:   logFile,
		StandardErrorPath: logFile,
	}, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode launch agent: %w", err)
	}

	return data, nil
}

// Install writes the plist that runs args at login. launchd picks it up at
// the next login.
func (m *AgentManager) Install(args []string, logFile string) error {
	if len(args) == 0 {
		return fmt.Errorf("launch agent needs a program to run")
	}

	data, err := m.Marshal(args, logFile)
	if err != nil {
		return err
	}

	if err := m.fileMgr.MkdirAll(m.dir, 0755); err != nil {
		return err
	}
	if err := m.fileMgr.WriteFile(m.Path(), data, 0644); err != nil {
		return err
	}

	logging.WithComponent("launchd").WithField("path", m.Path()).Info("Installed launch agent")

	return nil
}

// Uninstall removes the plist if present.
func (m *AgentManager) Uninstall() error {
	if err := m.fileMgr.Remove(m.Path()); err != nil {
		return err
	}

	logging.WithComponent("launchd").WithField("path", m.Path()).Info("Removed launch agent")

	return nil
}
