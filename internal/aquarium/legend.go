package aquarium

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	"aquarium/internal/domain"
	"aquarium/internal/domain/jsoncfg"
)

// DefaultLegend is the built-in legend catalog for an instance.
func DefaultLegend(instance string) jsoncfg.LegendJSON {
	return jsoncfg.LegendJSON{
		Version:       jsoncfg.DefaultLegendVersion,
		DefaultLocale: "en",
		Locales: map[string]jsoncfg.LocaleLegend{
			"en": {
				Description: fmt.Sprintf("Weekly activity on %s\n"+
					"Size shows the number of registrations.\n"+
					"Speed shows the number of statuses.\n"+
					"Bubbles show the number of logins.", instance),
				Fish: []domain.FishLegend{
					{Fish: domain.SpeciesClownfish, Description: "One week of activity"},
					{Fish: domain.SpeciesFerris, Description: "Ferris helps to monitor the aquarium"},
				},
			},
			"id": {
				Description: fmt.Sprintf("Aktivitas mingguan di %s\n"+
					"Ukuran menunjukkan jumlah pendaftaran.\n"+
					"Kecepatan menunjukkan jumlah status.\n"+
					"Gelembung menunjukkan jumlah login.", instance),
				Fish: []domain.FishLegend{
					{Fish: domain.SpeciesClownfish, Description: "Satu minggu aktivitas"},
					{Fish: domain.SpeciesFerris, Description: "Ferris membantu memantau akuarium"},
				},
			},
		},
	}
}

// InstanceName returns the host of the instance URL, or the raw value when it
// does not parse.
func InstanceName(apiURL string) string {
	if u, err := url.Parse(apiURL); err == nil && u.Host != "" {
		return u.Host
	}
	return strings.TrimSpace(apiURL)
}

// MatchLocale picks the catalog locale closest to the requested one.
func MatchLocale(catalog jsoncfg.LegendJSON, requested string) string {
	tags := catalog.Tags()
	supported := make([]language.Tag, 0, len(tags))
	keys := make([]string, 0, len(tags))
	for _, key := range tags {
		tag, err := language.Parse(key)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		keys = append(keys, key)
	}
	if len(supported) == 0 {
		return catalog.DefaultLocale
	}
	_, idx := language.MatchStrings(language.NewMatcher(supported), requested)
	return keys[idx]
}

// legendFor renders the catalog entry for locale, dropping the ambassador's
// entry when it is not swimming.
func legendFor(catalog jsoncfg.LegendJSON, locale string, ambassador bool) *domain.Legend {
	locale = MatchLocale(catalog, locale)
	if ambassador {
		return catalog.Legend(locale)
	}
	return catalog.Legend(locale, domain.SpeciesFerris)
}
