package distcheck

// Config holds the caller-supplied configuration for every validator.
// It is fixed at construction time and never mutated during a run.
type Config struct {
	// Exclude lists route prefixes the runner skips. Nil means DefaultExcludes.
	Exclude []string `yaml:"exclude"`

	JSONLD JSONLDConfig `yaml:"jsonld"`
	Meta   MetaConfig   `yaml:"meta"`
}

// Excludes returns the configured route prefixes, or DefaultExcludes when
// none were configured.
func (c *Config) Excludes() []string {
	if c == nil || c.Exclude == nil {
		return DefaultExcludes
	}
	return c.Exclude
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	return c.Meta.Validate()
}

// JSONLDConfig toggles the JSON-LD language consistency rules.
// All rules are disabled by default.
type JSONLDConfig struct {
	RequireHTMLLang         bool `yaml:"requireHtmlLang"`
	RequireInLanguage       bool `yaml:"requireInLanguage"`
	DisallowEmptyInLanguage bool `yaml:"disallowEmptyInLanguage"`
	RequireLangMatch        bool `yaml:"requireLangMatch"`
}

// MetaConfig holds the recommended content length ranges. A nil bound is
// unset; each bound is independent.
type MetaConfig struct {
	TitleMinLength       *int `yaml:"metaTitleMinLength"`
	TitleMaxLength       *int `yaml:"metaTitleMaxLength"`
	DescriptionMinLength *int `yaml:"metaDescriptionMinLength"`
	DescriptionMaxLength *int `yaml:"metaDescriptionMaxLength"`
}

// Validate returns an error if a bound is negative or a range is inverted.
func (c MetaConfig) Validate() error {
	if err := validateRange("metaTitle", c.TitleMinLength, c.TitleMaxLength); err != nil {
		return err
	}
	return validateRange("metaDescription", c.DescriptionMinLength, c.DescriptionMaxLength)
}

func validateRange(field string, min, max *int) error {
	if min != nil && *min < 0 {
		return Errorf(EINVALID, "%sMinLength must not be negative", field)
	}
	if max != nil && *max < 0 {
		return Errorf(EINVALID, "%sMaxLength must not be negative", field)
	}
	if min != nil && max != nil && *min > *max {
		return Errorf(EINVALID, "%sMinLength (%d) exceeds %sMaxLength (%d)", field, *min, field, *max)
	}
	return nil
}
