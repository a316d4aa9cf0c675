package jsoncfg

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"aquarium/internal/domain"
)

// LocaleLegend is the legend text for one language.
type LocaleLegend struct {
	Description string              `json:"description"`
	Fish        []domain.FishLegend `json:"fish"`
}

// LegendJSON is the on-disk legend catalog, keyed by locale.
type LegendJSON struct {
	Version       string                  `json:"version"`
	DefaultLocale string                  `json:"default_locale"`
	Locales       map[string]LocaleLegend `json:"locales"`
}

const (
	// DefaultLegendVersion is applied when the catalog omits a version.
	DefaultLegendVersion = "2024-01"
	// DefaultLegendLocale is used when neither the catalog nor the caller names one.
	DefaultLegendLocale = "en"
)

// LoadLegend reads and validates a legend catalog from path.
func LoadLegend(path string, preferredLocale string) (*LegendJSON, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("legend: read %s: %w", path, err)
	}
	return ParseLegend(raw, preferredLocale)
}

// ParseLegend decodes, normalizes and validates a legend catalog.
func ParseLegend(raw []byte, preferredLocale string) (*LegendJSON, error) {
	var l LegendJSON
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("legend: decode: %w", err)
	}
	l.Normalize(preferredLocale)
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Normalize lower-cases locale keys and fills defaults.
func (l *LegendJSON) Normalize(preferredLocale string) {
	if l == nil {
		return
	}
	if l.Version == "" {
		l.Version = DefaultLegendVersion
	}
	normalized := make(map[string]LocaleLegend, len(l.Locales))
	for key, entry := range l.Locales {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		entry.Description = strings.TrimSpace(entry.Description)
		for i := range entry.Fish {
			entry.Fish[i].Fish = strings.TrimSpace(entry.Fish[i].Fish)
			entry.Fish[i].Description = strings.TrimSpace(entry.Fish[i].Description)
		}
		normalized[key] = entry
	}
	l.Locales = normalized
	l.DefaultLocale = strings.ToLower(strings.TrimSpace(l.DefaultLocale))
	if l.DefaultLocale == "" {
		l.DefaultLocale = l.fallbackLocale(strings.ToLower(strings.TrimSpace(preferredLocale)))
	}
}

// fallbackLocale prefers the caller's locale, then DefaultLegendLocale, then
// the first locale in lexical order.
func (l *LegendJSON) fallbackLocale(preferred string) string {
	for _, candidate := range []string{preferred, DefaultLegendLocale} {
		if _, ok := l.Locales[candidate]; ok && candidate != "" {
			return candidate
		}
	}
	keys := make([]string, 0, len(l.Locales))
	for key := range l.Locales {
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return DefaultLegendLocale
	}
	sort.Strings(keys)
	return keys[0]
}

// Validate ensures every locale carries a description and named species.
func (l LegendJSON) Validate() error {
	if len(l.Locales) == 0 {
		return fmt.Errorf("legend: at least one locale is required")
	}
	if _, ok := l.Locales[l.DefaultLocale]; !ok {
		return fmt.Errorf("legend: default_locale %q has no entry", l.DefaultLocale)
	}
	for key, entry := range l.Locales {
		if entry.Description == "" {
			return fmt.Errorf("legend: locales.%s.description is required", key)
		}
		for i, fish := range entry.Fish {
			if fish.Fish == "" {
				return fmt.Errorf("legend: locales.%s.fish[%d].fish is required", key, i)
			}
		}
	}
	return nil
}

// Tags lists the catalog locales, default first.
func (l LegendJSON) Tags() []string {
	out := []string{l.DefaultLocale}
	rest := make([]string, 0, len(l.Locales))
	for key := range l.Locales {
		if key != l.DefaultLocale {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Legend renders the legend for locale. Entries for species in omit are dropped.
func (l LegendJSON) Legend(locale string, omit ...string) *domain.Legend {
	entry, ok := l.Locales[strings.ToLower(locale)]
	if !ok {
		entry = l.Locales[l.DefaultLocale]
	}
	skip := make(map[string]struct{}, len(omit))
	for _, name := range omit {
		skip[name] = struct{}{}
	}
	fish := make([]domain.FishLegend, 0, len(entry.Fish))
	for _, f := range entry.Fish {
		if _, ok := skip[f.Fish]; ok {
			continue
		}
		fish = append(fish, f)
	}
	return &domain.Legend{Description: entry.Description, FishLegends: fish}
}
