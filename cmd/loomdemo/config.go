package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v2"
)

// config is loomdemo's on-disk configuration: which theme to paint with,
// the default terminal size to assume outside an interactive session, and
// a metrics switch. Metrics is loaded from the file but no subcommand reads
// it: bench always instruments its compositor, render and serve never do.
type config struct {
	Theme   string `yaml:"theme"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Metrics bool   `yaml:"metrics"`
}

func defaultConfig() config {
	return config{Theme: "dark", Width: 80, Height: 24}
}

// loadConfig reads path, falling back to defaults if path is empty or
// missing. A present-but-invalid file is a hard error: unlike a missing
// file, it signals a typo the user should see immediately.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	switch c.Theme {
	case "dark", "light", "":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}

// configWatcher hot-reloads a config file and notifies a callback, used by
// the serve subcommand so a running session can pick up a theme change
// without restarting.
type configWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func(config)
}

func watchConfig(path string, onChange func(config)) (*configWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting config watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching config %s: %w", path, err)
	}

	cw := &configWatcher{path: path, watcher: w, onChange: onChange}
	go cw.run()
	return cw, nil
}

func (cw *configWatcher) run() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := loadConfig(cw.path)
			if err != nil {
				continue
			}
			cw.onChange(cfg)
		case _, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (cw *configWatcher) Close() error {
	return cw.watcher.Close()
}
