package settings

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/spf13/viper"
)

// Store reads and writes settings.json. A missing file is created with
// defaults on first load.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve config dir")
	}
	return filepath.Join(dir, "aws-cloud-controller", "settings.json"), nil
}

// Path returns the file the store reads and writes.
func (st *Store) Path() string {
	return st.path
}

// Load reads settings from disk. If the file does not exist, defaults are
// written out and returned.
func (st *Store) Load() (Settings, error) {
	if _, err := os.Stat(st.path); err != nil {
		def := Default()
		if err := st.Save(def); err != nil {
			return def, err
		}
		return def, nil
	}

	v := viper.New()
	v.SetConfigFile(st.path)
	v.SetConfigType("json")

	def := Default()
	v.SetDefault("refresh_interval_secs", def.RefreshIntervalSecs)
	v.SetDefault("show_logs_panel", def.ShowLogsPanel)
	v.SetDefault("log_level", string(def.LogLevel))
	v.SetDefault("alert_threshold_secs", def.AlertThresholdSecs)
	v.SetDefault("sound_enabled", def.SoundEnabled)
	v.SetDefault("default_profile", "")

	if err := v.ReadInConfig(); err != nil {
		return def, errors.Wrap(err, "read settings")
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return def, errors.Wrap(err, "parse settings")
	}
	return s, nil
}

// Save writes settings to disk, creating the parent directory if needed.
func (st *Store) Save(s Settings) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return errors.Wrap(err, "create settings dir")
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("refresh_interval_secs", s.RefreshIntervalSecs)
	v.Set("show_logs_panel", s.ShowLogsPanel)
	v.Set("log_level", string(s.LogLevel))
	v.Set("alert_threshold_secs", s.AlertThresholdSecs)
	v.Set("sound_enabled", s.SoundEnabled)
	v.Set("default_profile", s.DefaultProfile)

	if err := v.WriteConfigAs(st.path); err != nil {
		return errors.Wrap(err, "write settings")
	}
	return nil
}
