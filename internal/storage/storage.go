// Package storage provides XDG-compliant path management for skins.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "skins"

	logFilename   = "skins.log"
	stateFilename = "state.db"
)

// Manager handles storage operations with filesystem abstraction.
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem.
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for skins, creating it if
// necessary.
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := m.fs.MkdirAll(dataDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the skins log file.
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, logFilename), nil
}

// GetStatePath returns the full path to the apply-history database.
func (m *Manager) GetStatePath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, stateFilename), nil
}

// DefaultPackagesRoot returns the packages directory used when the config
// file does not name one.
func DefaultPackagesRoot() string {
	return filepath.Join(xdg.ConfigHome, AppName, "Packages")
}
