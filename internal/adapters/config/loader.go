// Package config resolves the settings of an invocation from defaults, an
// optional YAML file and environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the loader.
const (
	EnvHome         = "MRU_HOME"
	EnvConfig       = "MRU_CONFIG"
	EnvCapacity     = "MRU_CAPACITY"
	EnvLockTimeout  = "MRU_LOCK_TIMEOUT"
	EnvOnCorruption = "MRU_ON_CORRUPTION"
	EnvLogLevel     = "MRU_LOG_LEVEL"
	EnvLogFormat    = "MRU_LOG_FORMAT"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	getenv      func(string) string
	defaultRoot func() (string, error)
}

// NewLoader creates a loader reading environment variables through getenv.
func NewLoader(getenv func(string) string) *Loader {
	return &Loader{
		getenv:      getenv,
		defaultRoot: domain.DefaultRoot,
	}
}

// Load resolves the settings.
func (l *Loader) Load() (domain.Settings, error) {
	root := l.getenv(EnvHome)
	if root == "" {
		var err error
		if root, err = l.defaultRoot(); err != nil {
			return domain.Settings{}, err
		}
	}
	root = filepath.Clean(root)
	s := domain.DefaultSettings(root)

	path := l.getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, domain.ConfigFileName)
	}

	file, err := readFile(path, explicit)
	if err != nil {
		return domain.Settings{}, err
	}
	if file != nil {
		if err := applyFile(&s, file); err != nil {
			return domain.Settings{}, zerr.With(err, "config", path)
		}
	}

	if err := l.applyEnv(&s); err != nil {
		return domain.Settings{}, err
	}

	return s, nil
}

// readFile returns nil when the default config file does not exist.
func readFile(path string, required bool) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "cannot read config file"), "path", path))
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "cannot parse config file"), "path", path))
	}

	return &file, nil
}

func applyFile(s *domain.Settings, f *File) error {
	if f.Capacity != nil {
		if *f.Capacity < 1 {
			return invalid("capacity", strconv.Itoa(*f.Capacity))
		}
		s.DefaultCapacity = *f.Capacity
	}

	if f.LockTimeout != "" {
		d, err := parseDuration("lock_timeout", f.LockTimeout)
		if err != nil {
			return err
		}
		s.LockTimeout = d
	}

	if f.LockRetry != "" {
		d, err := parseDuration("lock_retry", f.LockRetry)
		if err != nil {
			return err
		}
		s.LockRetry = d
	}

	if f.OnCorruption != "" {
		p, err := domain.ParseCorruptionPolicy(f.OnCorruption)
		if err != nil {
			return err
		}
		s.OnCorruption = p
	}

	if err := applyLog(s, f.Log.Level, f.Log.Format); err != nil {
		return err
	}

	for name, dto := range f.Storage {
		st, err := domain.ParseStorageType(name)
		if err != nil {
			return errors.Join(domain.ErrConfigInvalid, err)
		}
		if dto.Capacity == nil {
			continue
		}
		if *dto.Capacity < 1 {
			return invalid("storage."+name+".capacity", strconv.Itoa(*dto.Capacity))
		}
		s.Capacities[st] = *dto.Capacity
	}

	return nil
}

func (l *Loader) applyEnv(s *domain.Settings) error {
	if v := l.getenv(EnvCapacity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return invalid(EnvCapacity, v)
		}
		s.DefaultCapacity = n
	}

	if v := l.getenv(EnvLockTimeout); v != "" {
		d, err := parseDuration(EnvLockTimeout, v)
		if err != nil {
			return err
		}
		s.LockTimeout = d
	}

	if v := l.getenv(EnvOnCorruption); v != "" {
		p, err := domain.ParseCorruptionPolicy(v)
		if err != nil {
			return err
		}
		s.OnCorruption = p
	}

	return applyLog(s, l.getenv(EnvLogLevel), l.getenv(EnvLogFormat))
}

func applyLog(s *domain.Settings, level, format string) error {
	switch level {
	case "":
	case "debug", "info", "warn", "error":
		s.LogLevel = level
	default:
		return invalid("log.level", level)
	}

	switch format {
	case "":
	case formatPretty:
		s.LogJSON = false
	case formatJSON:
		s.LogJSON = true
	default:
		return invalid("log.format", format)
	}

	return nil
}

func parseDuration(key, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, invalid(key, v)
	}
	return d, nil
}

func invalid(key, value string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "invalid value for "+key), "key", key), "value", value)
}
