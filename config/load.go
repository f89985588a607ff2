package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileBase is the configuration file name without extension
const FileBase = "askpass"

// EnvPrefix prefixes every environment override
const EnvPrefix = "ASKPASS_"

// ErrNotFound is returned by Discover when no configuration file exists
var ErrNotFound = errors.New("no configuration file found")

// extensions in discovery order
var extensions = []string{".yml", ".yaml", ".toml"}

// Dir returns the XDG configuration directory: $XDG_CONFIG_HOME when it is
// an absolute path, ~/.config otherwise
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home dir")
	}
	return filepath.Join(home, ".config"), nil
}

// Path returns where a new configuration file is written
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileBase+extensions[0]), nil
}

// Discover returns the first existing configuration file
func Discover() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	for _, ext := range extensions {
		p := filepath.Join(dir, FileBase+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", ErrNotFound
}

// Load reads and validates the file at path. Keys absent from the file
// keep their default values. The format follows the file extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(ErrNotFound, path)
		}
		return Config{}, errors.Wrapf(err, "read %s", path)
	}

	cfg, err := decode(path, data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// decode parses data onto the defaults
func decode(path string, data []byte) (Config, error) {
	cfg := Default()
	// A list in the file replaces the default cycle instead of merging into it
	cfg.Prompt.Characters = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, err
		}
		for _, key := range md.Undecoded() {
			log.WithFields(log.Fields{"path": path, "key": key.String()}).Warn("config: unknown key ignored")
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
		warnUnknownYAML(path, data)
	}

	if cfg.Prompt.Characters == nil {
		cfg.Prompt.Characters = Default().Prompt.Characters
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from ASKPASS_* variables and revalidates
func ApplyEnv(cfg *Config) error {
	next := *cfg
	next.Prompt.Characters = append([]Glyph(nil), cfg.Prompt.Characters...)
	if err := env.ParseWithOptions(&next, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Wrap(err, "environment")
	}
	if err := next.Validate(); err != nil {
		return errors.Wrap(err, "environment")
	}
	*cfg = next
	return nil
}

// warnUnknownYAML logs keys the record does not know; they never fail a load
func warnUnknownYAML(path string, data []byte) {
	var scratch Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scratch); err != nil && !errors.Is(err, io.EOF) {
		log.WithField("path", path).WithError(err).Warn("config: unknown keys ignored")
	}
}
