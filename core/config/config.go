// Package config holds the shell's YAML configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up inside the config directory.
const ConfigurationName = "config.yaml"

type Configuration struct {
	// Motd is printed when an interactive session starts.
	Motd string `json:"motd"`

	// TargetRoot is the directory the local client is rooted at.
	TargetRoot string `json:"target_root" validate:"required"`

	// HistoryLimit caps the in-memory history store.
	HistoryLimit int `json:"history_limit" validate:"gt=0"`

	// Aliases seeds the alias table on top of the built-in defaults.
	Aliases map[string]string `json:"aliases"`

	SSH SSH `json:"ssh"`
}

// SSH configures the optional SSH front-end.
type SSH struct {
	Port        int      `json:"port" validate:"gte=0,lte=65535"`
	Banner      string   `json:"banner"`
	HostKeyPath string   `json:"host_key_path"`
	Passwords   []string `json:"passwords"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// DefaultYAML returns the raw bytes of the default configuration, for init.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultConfigData))
	copy(out, defaultConfigData)
	return out
}
