package config

import (
	"os"
	"strings"
)

// Need selects which credentials an invocation requires.
type Need struct {
	Generation bool
	Store      bool
}

// Secrets carries the credentials for one invocation.
type Secrets struct {
	GenerationKey string
	StoreKey      string
}

// LoadSecrets reads the required credentials from the environment. Every
// missing one is reported in a single *Error.
func LoadSecrets(cfg Config, need Need) (Secrets, error) {
	return loadSecrets(cfg, need, os.Getenv)
}

func loadSecrets(cfg Config, need Need, getenv func(string) string) (Secrets, error) {
	var s Secrets
	var missing []string
	if need.Generation {
		s.GenerationKey = strings.TrimSpace(getenv(cfg.Secrets.GenerationKeyEnv))
		if s.GenerationKey == "" {
			missing = append(missing, "generation credential ($"+cfg.Secrets.GenerationKeyEnv+")")
		}
	}
	if need.Store {
		s.StoreKey = strings.TrimSpace(getenv(cfg.Secrets.StoreKeyEnv))
		if s.StoreKey == "" {
			missing = append(missing, "store credential ($"+cfg.Secrets.StoreKeyEnv+")")
		}
	}
	if len(missing) > 0 {
		return Secrets{}, &Error{Problems: missing}
	}
	return s, nil
}
