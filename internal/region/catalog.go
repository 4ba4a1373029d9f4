package region

import (
	"sort"
	"strings"

	"github.com/AndrewK67/shorts-studio/internal/domain"
)

// DefaultCountryCode is returned for unknown or empty lookups. The US
// config doubles as the terminology pivot: every region's terminology map
// is keyed by the American term.
const DefaultCountryCode = "US"

// Catalog is the process-wide table of regional configs. It is populated
// once from the static data in data.go and never mutated, so it is safe
// for unlimited concurrent readers.
type Catalog struct {
	configs map[string]*domain.RegionalConfig
	codes   []string
}

// NewCatalog builds the catalog from the built-in regional data.
func NewCatalog() *Catalog {
	configs := make(map[string]*domain.RegionalConfig, len(regionalData))
	codes := make([]string, 0, len(regionalData))
	for i := range regionalData {
		cfg := &regionalData[i]
		configs[strings.ToUpper(cfg.CountryCode)] = cfg
		codes = append(codes, cfg.CountryCode)
	}
	sort.Strings(codes)

	return &Catalog{configs: configs, codes: codes}
}

// Config looks up the regional config for a country code,
// case-insensitively. Unknown or empty codes fall back to the default
// region; the result is never nil.
func (c *Catalog) Config(countryCode string) *domain.RegionalConfig {
	if cfg, ok := c.configs[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return cfg
	}
	return c.configs[DefaultCountryCode]
}

// Has reports whether the code is a supported region (without fallback).
func (c *Catalog) Has(countryCode string) bool {
	_, ok := c.configs[strings.ToUpper(strings.TrimSpace(countryCode))]
	return ok
}

// AllCountryCodes returns the supported codes in a stable sorted order,
// for populating selectors.
func (c *Catalog) AllCountryCodes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}
