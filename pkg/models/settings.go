package models

// Settings represents the application configuration
type Settings struct {
	Field   FieldSettings     `yaml:"field" json:"field"`
	Markers MarkerSettings    `yaml:"markers" json:"markers"`
	Picker  PickerSettings    `yaml:"picker" json:"picker"`
	Masks   map[string]string `yaml:"masks" json:"masks"`
	UI      UISettings        `yaml:"ui" json:"ui"`
}

// FieldSettings controls the phone field behavior
type FieldSettings struct {
	DefaultRegion          string `yaml:"default_region" json:"default_region"`
	WithPrefix             bool   `yaml:"with_prefix" json:"with_prefix"`
	WithExamplePlaceholder bool   `yaml:"with_example_placeholder" json:"with_example_placeholder"`
	AutoRegion             bool   `yaml:"auto_region" json:"auto_region"`
	MaxDigits              int    `yaml:"max_digits" json:"max_digits"` // 0 means unlimited
	Formatting             bool   `yaml:"formatting" json:"formatting"`
}

// MarkerSettings lists the non-digit characters that survive filtering
type MarkerSettings struct {
	Plus      string `yaml:"plus" json:"plus"`
	Pauses    string `yaml:"pauses" json:"pauses"`
	Operators string `yaml:"operators" json:"operators"`
}

// PickerSettings controls the region picker
type PickerSettings struct {
	ShowCurrent       bool     `yaml:"show_current" json:"show_current"`
	ShowCommon        bool     `yaml:"show_common" json:"show_common"`
	CommonRegions     []string `yaml:"common_regions" json:"common_regions"`
	CommonTitle       string   `yaml:"common_title" json:"common_title"`
	Locale            string   `yaml:"locale" json:"locale"`
	SearchPlaceholder string   `yaml:"search_placeholder" json:"search_placeholder"`
}

// UISettings controls UI colors
type UISettings struct {
	ShowFlag bool   `yaml:"show_flag" json:"show_flag"`
	Accent   string `yaml:"accent" json:"accent"`
	Muted    string `yaml:"muted" json:"muted"`
	Error    string `yaml:"error" json:"error"`
	Success  string `yaml:"success" json:"success"`
	Border   string `yaml:"border" json:"border"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Field: FieldSettings{
			DefaultRegion:          "US",
			WithPrefix:             true,
			WithExamplePlaceholder: true,
			AutoRegion:             true,
			MaxDigits:              0,
			Formatting:             true,
		},
		Markers: MarkerSettings{
			Plus:      "+＋",
			Pauses:    ",;",
			Operators: "*#",
		},
		Picker: PickerSettings{
			ShowCurrent:       true,
			ShowCommon:        true,
			CommonRegions:     []string{"US", "GB", "DE", "FR", "IN", "CN", "JP", "BR"},
			CommonTitle:       "Common",
			Locale:            "en",
			SearchPlaceholder: "Search regions",
		},
		Masks: map[string]string{},
		UI: UISettings{
			ShowFlag: true,
			Accent:   "170",
			Muted:    "241",
			Error:    "196",
			Success:  "82",
			Border:   "62",
		},
	}
}
