// Package config thread-safe settings backed by viper
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Laisky/go-deque/json"
	"github.com/Laisky/go-deque/log"
)

// Settings enhance viper.Viper with threadsafe
//
// Do not use this structure directly, use `New` or `Shared` instead.
type Settings struct {
	sync.RWMutex

	v *viper.Viper
}

// Shared is the settings for this project
var Shared = New()

// New new settings
func New() *Settings {
	return &Settings{
		v: viper.New(),
	}
}

// BindPFlags bind pflags to settings
func (s *Settings) BindPFlags(p *pflag.FlagSet) error {
	s.Lock()
	defer s.Unlock()

	return s.v.BindPFlags(p)
}

// BindPFlag bind one flag to key
func (s *Settings) BindPFlag(key string, flag *pflag.Flag) error {
	s.Lock()
	defer s.Unlock()

	return s.v.BindPFlag(key, flag)
}

// GetString get setting by key
func (s *Settings) GetString(key string) string {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetString(key)
}

// GetBool get setting by key
func (s *Settings) GetBool(key string) bool {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetBool(key)
}

// GetInt get setting by key
func (s *Settings) GetInt(key string) int {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetInt(key)
}

// GetInt64 get setting by key
func (s *Settings) GetInt64(key string) int64 {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetInt64(key)
}

// GetStringSlice get setting by key
func (s *Settings) GetStringSlice(key string) []string {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetStringSlice(key)
}

// GetIntSlice get setting by key
func (s *Settings) GetIntSlice(key string) []int {
	s.RLock()
	defer s.RUnlock()

	return s.v.GetIntSlice(key)
}

// IsSet key is set by a changed flag or a loaded config file,
// flag defaults do not count
func (s *Settings) IsSet(key string) bool {
	s.RLock()
	defer s.RUnlock()

	return s.v.IsSet(key)
}

// LoadFromFile load settings from file, the type is decided by file extension.
//
// `.json` and `.jsonc` files may contain comments and trailing commas.
func (s *Settings) LoadFromFile(fpath string) error {
	logger := log.Shared.With(zap.String("file", fpath))

	raw, err := os.ReadFile(fpath)
	if err != nil {
		return errors.Wrapf(err, "read config file %q", fpath)
	}

	cfgType := strings.ToLower(strings.TrimPrefix(filepath.Ext(fpath), "."))
	switch cfgType {
	case "json", "jsonc":
		if raw, err = json.Standardize(raw); err != nil {
			return errors.Wrapf(err, "standardize json config %q", fpath)
		}
		cfgType = "json"
	case "":
		return errors.Errorf("config file %q has no extension", fpath)
	}

	s.Lock()
	defer s.Unlock()

	s.v.SetConfigType(cfgType)
	if err = s.v.MergeConfig(bytes.NewReader(raw)); err != nil {
		return errors.Wrapf(err, "load config from file %q", fpath)
	}

	logger.Debug("load config", zap.String("type", cfgType))
	return nil
}
