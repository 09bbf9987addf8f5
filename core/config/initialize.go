package config

import (
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into dir. An existing
// config.yaml is left untouched so init stays safe to re-run.
func Initialize(dir string, logger *log.Logger) error {
	if filepath.Base(dir) == ConfigurationName {
		dir = filepath.Dir(dir)
	}
	path := filepath.Join(dir, ConfigurationName)

	if _, err := os.Stat(path); err == nil {
		logger.Printf("%s already exists, leaving it in place", path)
		return nil
	}

	if err := os.WriteFile(path, DefaultYAML(), 0644); err != nil {
		return err
	}
	logger.Printf("Wrote %s, edit it to fit your target.", path)
	return nil
}
