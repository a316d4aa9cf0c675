// Package config reads the per-invocation settings of the aquarium endpoint.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"aquarium/internal/domain"
)

const (
	EnvUserAgent   = "MASTODON_API_USER_AGENT"
	EnvAPIURL      = "MASTODON_API_URL"
	EnvCacheMaxAge = "HTTP_CACHE_IN_SECONDS"
	EnvAmbassador  = "AQUARIUM_AMBASSADOR"
	EnvLegendPath  = "AQUARIUM_LEGEND_PATH"

	// DefaultCacheSeconds is the max-age used when HTTP_CACHE_IN_SECONDS is unusable.
	DefaultCacheSeconds = 60
)

// Activity holds what one aquarium invocation needs. It is built fresh for
// every request and passed down explicitly.
type Activity struct {
	UserAgent    string
	APIURL       string
	CacheSeconds int
	Ambassador   bool
	LegendPath   string
}

// Lookup resolves an environment key. os.LookupEnv satisfies it.
type Lookup func(key string) (string, bool)

// Load reads the activity settings from the process environment.
func Load() (Activity, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads the activity settings through lookup. A missing required key
// yields a Configuration error.
func LoadFrom(lookup Lookup) (Activity, error) {
	userAgent, err := required(lookup, EnvUserAgent)
	if err != nil {
		return Activity{}, err
	}
	apiURL, err := required(lookup, EnvAPIURL)
	if err != nil {
		return Activity{}, err
	}
	return Activity{
		UserAgent:    userAgent,
		APIURL:       strings.TrimRight(apiURL, "/"),
		CacheSeconds: getInt(lookup, EnvCacheMaxAge, DefaultCacheSeconds),
		Ambassador:   getBool(lookup, EnvAmbassador, true),
		LegendPath:   getenv(lookup, EnvLegendPath, ""),
	}, nil
}

func required(lookup Lookup, key string) (string, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", domain.Wrap(domain.KindConfiguration, "config", fmt.Errorf("%s is required", key))
	}
	return v, nil
}

func getenv(lookup Lookup, key, def string) string {
	if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getInt(lookup Lookup, key string, def int) int {
	if v, ok := lookup(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return def
}

func getBool(lookup Lookup, key string, def bool) bool {
	if v, ok := lookup(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}
