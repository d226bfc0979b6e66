// Copyright © 2025 StyledConsole contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Preset store for StyledConsole (styledconsole.json).

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const configName = "styledconsole.json"

// file is the on-disk layout of styledconsole.json.
type file struct {
	Presets map[string]Preset `json:"presets"`
}

var (
	mu      sync.RWMutex
	once    sync.Once
	presets map[string]Preset
	loadErr error
)

// Err returns the most recent load error. A missing config file is not an
// error; built-in presets serve.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// Lookup finds a preset by name, user-defined entries shadowing built-ins.
func Lookup(name string) (Preset, bool) {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	p, ok := presets[name]
	return p, ok
}

// Names lists every available preset name.
func Names() []string {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// Reload re-reads the user config from disk.
func Reload() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	loadErr = loadLocked()
	return loadErr
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	loadErr = loadLocked()
	if loadErr != nil {
		log.Printf("Config: Failed to load presets: %v", loadErr)
	}
}

func loadLocked() error {
	presets = builtinPresets()

	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	for name, p := range f.Presets {
		presets[name] = p
	}
	return nil
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "styledconsole", configName), nil
}
