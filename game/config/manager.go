package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Preset is a named match configuration stored as a YAML file.
type Preset struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Mode        engine.Mode `yaml:"mode"`
	TurnSeconds int         `yaml:"turn_seconds"`
}

// Validate checks a preset against the engine's limits.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name is empty")
	}
	switch p.Mode {
	case engine.ModeBase, engine.ModeHalloween:
	default:
		return fmt.Errorf("unknown mode %q", p.Mode)
	}
	ok := false
	for _, d := range engine.TurnDurations {
		if p.TurnSeconds == d {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("turn_seconds %d not in %v", p.TurnSeconds, engine.TurnDurations)
	}
	return nil
}

// Manager loads and caches match presets from a directory of YAML files.
type Manager struct {
	presetDir     string
	defaultPreset *Preset
	presets       map[string]*Preset
	mu            sync.RWMutex
}

// NewManager creates a manager over the given directory.
func NewManager(presetDir string) (*Manager, error) {
	if _, err := os.Stat(presetDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("preset directory does not exist: %s", presetDir)
	}

	m := &Manager{
		presetDir: presetDir,
		presets:   make(map[string]*Preset),
	}
	m.loadDefaultPreset()
	return m, nil
}

// LoadPreset loads a preset by name, consulting the cache first.
func (m *Manager) LoadPreset(name string) (*Preset, error) {
	m.mu.RLock()
	if p, exists := m.presets[name]; exists {
		m.mu.RUnlock()
		return p, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, exists := m.presets[name]; exists {
		return p, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".yaml") {
		filename = name + ".yaml"
	}
	data, err := os.ReadFile(filepath.Join(m.presetDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	m.presets[name] = &p
	return &p, nil
}

// ListPresets returns every valid preset in the directory.
func (m *Manager) ListPresets() ([]*Preset, error) {
	entries, err := os.ReadDir(m.presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}

	var out []*Preset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		p, err := m.LoadPreset(strings.TrimSuffix(entry.Name(), ".yaml"))
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetDefault returns the default preset.
func (m *Manager) GetDefault() *Preset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultPreset
}

// SetDefault selects the default preset by name.
func (m *Manager) SetDefault(name string) error {
	p, err := m.LoadPreset(name)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultPreset = p
	return nil
}

// RefreshCache clears the cache and reloads the default.
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.presets = make(map[string]*Preset)
	m.mu.Unlock()
	m.loadDefaultPreset()
}

// SavePreset validates and writes a preset to disk.
func (m *Manager) SavePreset(name string, p *Preset) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}
	filename := name
	if !strings.HasSuffix(filename, ".yaml") {
		filename = name + ".yaml"
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	if err := os.WriteFile(filepath.Join(m.presetDir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}
	m.mu.Lock()
	m.presets[name] = p
	m.mu.Unlock()
	return nil
}

// loadDefaultPreset prefers classic.yaml, then the first valid preset, then
// a built-in fallback.
func (m *Manager) loadDefaultPreset() {
	if p, err := m.LoadPreset("classic"); err == nil {
		m.mu.Lock()
		m.defaultPreset = p
		m.mu.Unlock()
		return
	}
	if ps, err := m.ListPresets(); err == nil && len(ps) > 0 {
		m.mu.Lock()
		m.defaultPreset = ps[0]
		m.mu.Unlock()
		return
	}
	m.mu.Lock()
	m.defaultPreset = &Preset{
		Name:        "classic",
		Description: "Standard deck, one minute turns",
		Mode:        engine.ModeBase,
		TurnSeconds: engine.DefaultTurnSeconds,
	}
	m.mu.Unlock()
}
