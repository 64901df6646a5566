package seolint

// Policy defaults for the compliance rules.
const (
	TitleMinLength       = 50
	TitleMaxLength       = 60
	DescriptionMinLength = 150
	DescriptionMaxLength = 160
	KeywordDensityMin    = 0.5
	KeywordDensityMax    = 1.5
	MinInternalLinks     = 3
)

// DefaultConcurrency is the number of documents analyzed at once.
const DefaultConcurrency = 4

// DefaultEntryFiles lists the file names that mark a corpus subdirectory as
// an article, in lookup order.
var DefaultEntryFiles = []string{
	"page.tsx",
	"page.jsx",
	"page.js",
	"page.mdx",
	"page.md",
	"index.mdx",
	"index.md",
	"index.html",
}

// Thresholds holds the numeric limits the rule engine checks against.
type Thresholds struct {
	TitleMin          int     `yaml:"titleMin" json:"titleMin"`
	TitleMax          int     `yaml:"titleMax" json:"titleMax"`
	DescriptionMin    int     `yaml:"descriptionMin" json:"descriptionMin"`
	DescriptionMax    int     `yaml:"descriptionMax" json:"descriptionMax"`
	KeywordDensityMin float64 `yaml:"keywordDensityMin" json:"keywordDensityMin"`
	KeywordDensityMax float64 `yaml:"keywordDensityMax" json:"keywordDensityMax"`
	MinInternalLinks  int     `yaml:"minInternalLinks" json:"minInternalLinks"`
}

// DefaultThresholds returns the policy defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TitleMin:          TitleMinLength,
		TitleMax:          TitleMaxLength,
		DescriptionMin:    DescriptionMinLength,
		DescriptionMax:    DescriptionMaxLength,
		KeywordDensityMin: KeywordDensityMin,
		KeywordDensityMax: KeywordDensityMax,
		MinInternalLinks:  MinInternalLinks,
	}
}

// Validate returns an error if any range is empty or negative.
func (t Thresholds) Validate() error {
	if t.TitleMin < 0 || t.TitleMin > t.TitleMax {
		return Errorf(EINVALID, "invalid title length range %d-%d", t.TitleMin, t.TitleMax)
	}
	if t.DescriptionMin < 0 || t.DescriptionMin > t.DescriptionMax {
		return Errorf(EINVALID, "invalid description length range %d-%d", t.DescriptionMin, t.DescriptionMax)
	}
	if t.KeywordDensityMin < 0 || t.KeywordDensityMin > t.KeywordDensityMax || t.KeywordDensityMax > 100 {
		return Errorf(EINVALID, "invalid keyword density range %g-%g", t.KeywordDensityMin, t.KeywordDensityMax)
	}
	if t.MinInternalLinks < 0 {
		return Errorf(EINVALID, "minimum internal links must not be negative")
	}
	return nil
}

// Config holds the tunable settings of an analysis run.
type Config struct {
	Thresholds  Thresholds `yaml:"thresholds" json:"thresholds"`
	EntryFiles  []string   `yaml:"entryFiles" json:"entryFiles"`
	Concurrency int        `yaml:"concurrency" json:"concurrency"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Thresholds:  DefaultThresholds(),
		EntryFiles:  append([]string(nil), DefaultEntryFiles...),
		Concurrency: DefaultConcurrency,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	if len(c.EntryFiles) == 0 {
		return Errorf(EINVALID, "at least one entry file name required")
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	return nil
}
