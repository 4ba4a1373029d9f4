package domain

// Hemisphere determines which seasonal label a month maps to.
type Hemisphere string

const (
	HemisphereNorthern Hemisphere = "northern"
	HemisphereSouthern Hemisphere = "southern"
)

type HolidayType string

const (
	HolidayTypePublic    HolidayType = "public"
	HolidayTypeCultural  HolidayType = "cultural"
	HolidayTypeReligious HolidayType = "religious"
	HolidayTypeSeasonal  HolidayType = "seasonal"
)

type HolidayRelevance string

const (
	HolidayRelevanceHigh   HolidayRelevance = "high"
	HolidayRelevanceMedium HolidayRelevance = "medium"
	HolidayRelevanceLow    HolidayRelevance = "low"
)

// Holiday is one dated entry in a regional config. Date is a well-formed
// ISO 8601 calendar date (YYYY-MM-DD); month filters compare the YYYY-MM
// prefix, range filters rely on ISO dates sorting lexically.
type Holiday struct {
	Date        string           `json:"date"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        HolidayType      `json:"type"`
	Relevance   HolidayRelevance `json:"relevance"`
}

// RegionalConfig is the per-country configuration loaded once at process
// start. Immutable after construction; safe for concurrent readers.
type RegionalConfig struct {
	CountryCode     string            `json:"country_code"`
	CountryName     string            `json:"country_name"`
	LanguageVariant string            `json:"language_variant"`
	Timezone        string            `json:"timezone"`
	Hemisphere      Hemisphere        `json:"hemisphere"`
	DateFormat      string            `json:"date_format"`
	TimeFormat      string            `json:"time_format"`
	CurrencyCode    string            `json:"currency_code"`
	CurrencySymbol  string            `json:"currency_symbol"`
	Holidays        []Holiday         `json:"holidays"`
	CulturalNotes   []string          `json:"cultural_notes"`
	Terminology     map[string]string `json:"terminology"`
}

// CustomEvent is a caller-supplied date the generation should be aware of
// (a launch, a collab, a personal milestone).
type CustomEvent struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RegionalPromptContext is the merged creator/target view computed per
// generation request: the creator's conventions, the target audience's
// holidays, terminology and culture for one month. Never persisted.
type RegionalPromptContext struct {
	Creator       *RegionalConfig
	Target        *RegionalConfig
	Month         int
	Year          int
	Holidays      []Holiday
	Terminology   []string
	CulturalNotes []string
	CustomEvents  []CustomEvent
}
