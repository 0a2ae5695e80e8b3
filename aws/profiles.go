package aws

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/ini.v1"
)

// ListProfiles returns profile names from ~/.aws/config. A missing file is
// not an error; it just means no profiles are available.
func ListProfiles() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve home dir")
	}
	return ListProfilesFrom(filepath.Join(home, ".aws", "config"))
}

// ListProfilesFrom parses an AWS shared config file for profile names.
// Sections look like "[default]" or "[profile my-account]".
func ListProfilesFrom(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	var profiles []string
	for _, sec := range cfg.Sections() {
		name := sec.Name()
		switch {
		case name == ini.DefaultSection:
			// ini's implicit root section, not an AWS profile.
		case name == "default":
			profiles = append(profiles, "default")
		case strings.HasPrefix(name, "profile "):
			profiles = append(profiles, strings.TrimPrefix(name, "profile "))
		}
	}
	return profiles, nil
}

// CredentialsConfigured reports whether any credential source looks present:
// static env credentials, or the shared credentials/config files.
func CredentialsConfigured() bool {
	if os.Getenv("AWS_ACCESS_KEY_ID") != "" && os.Getenv("AWS_SECRET_ACCESS_KEY") != "" {
		return true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	for _, f := range []string{"credentials", "config"} {
		if _, err := os.Stat(filepath.Join(home, ".aws", f)); err == nil {
			return true
		}
	}
	return false
}
