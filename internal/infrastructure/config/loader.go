package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// TuningFile is the tuning config file name inside the config directory
const TuningFile = "tuning.yaml"

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *TuningConfig
	Stage  *StageConfig
}

// Loader loads game configuration using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.yaml on top of the defaults
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, TuningFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TuningFile, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", TuningFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", TuningFile, err)
	}

	return cfg, nil
}

// LoadStage loads a stage by name from stages/. A name without an
// extension tries <name>.json first, then <name>.tmx.
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return l.loadJSONStage("stages/" + name)
	case ".tmx":
		return l.loadTMXStage("stages/" + name)
	}

	jsonPath := "stages/" + name + ".json"
	if _, err := fs.Stat(l.fsys, jsonPath); err == nil {
		return l.loadJSONStage(jsonPath)
	}
	tmxPath := "stages/" + name + ".tmx"
	if _, err := fs.Stat(l.fsys, tmxPath); err == nil {
		return l.loadTMXStage(tmxPath)
	}
	return nil, fmt.Errorf("failed to find stage %s: %w", name, fs.ErrNotExist)
}

func (l *Loader) loadJSONStage(p string) (*StageConfig, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", p, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", p, err)
	}
	if cfg.ID == "" {
		cfg.ID = stageID(p)
	}
	cfg.normalize()

	return &cfg, nil
}

// LoadAll loads the tuning and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	st, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Stage:  st,
	}, nil
}

// stageID derives a stage ID from its file name
func stageID(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
