package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	FontConfig struct {
		Name string `yaml:"name" validate:"required"`
		Path string `yaml:"path,omitempty" sanitize:"assure_file_access"`
	}

	FontsConfig struct {
		Header FontConfig `yaml:"header"`
		Body   FontConfig `yaml:"body"`
		Icons  FontConfig `yaml:"icons"`
	}

	PictureConfig struct {
		Size        int `yaml:"size" validate:"min=100,max=1200"`
		JPEGQuality int `yaml:"jpeg_quality_level" validate:"min=40,max=100"`
	}

	ThemeConfig struct {
		PrimaryColor    string  `yaml:"primary_color" validate:"required,hexcolor"`
		SecondaryColor  string  `yaml:"secondary_color" validate:"required,hexcolor"`
		AccentColor     string  `yaml:"accent_color" validate:"required,hexcolor"`
		BackgroundColor string  `yaml:"background_color" validate:"required,hexcolor"`
		TextColor       string  `yaml:"text_color" validate:"required,hexcolor"`
		HeaderFontSize  float64 `yaml:"header_font_size" validate:"gt=0"`
		BodyFontSize    float64 `yaml:"body_font_size" validate:"gt=0"`
	}

	// LayoutConfig dimensions are in inches except line spacing which
	// follows typographic convention and is in points.
	LayoutConfig struct {
		PageSize         string  `yaml:"page_size" validate:"required,oneof=a4 letter a3 legal"`
		LeftMargin       float64 `yaml:"left_margin" validate:"gte=0"`
		RightMargin      float64 `yaml:"right_margin" validate:"gte=0"`
		TopMargin        float64 `yaml:"top_margin" validate:"gte=0"`
		BottomMargin     float64 `yaml:"bottom_margin" validate:"gte=0"`
		BannerHeight     float64 `yaml:"banner_height" validate:"gte=0"`
		LeftColumnRatio  float64 `yaml:"left_column_width_ratio" validate:"gt=0,lt=1"`
		SectionSpacing   float64 `yaml:"section_spacing" validate:"gte=0"`
		LineSpacing      float64 `yaml:"line_spacing" validate:"gt=0"`
		ParagraphSpacing float64 `yaml:"paragraph_spacing" validate:"gte=0"`
	}

	DensityConfig struct {
		SparseBelow float64 `yaml:"sparse_below" validate:"gte=0,lte=1"`
		DenseAbove  float64 `yaml:"dense_above" validate:"gte=0,lte=1,gtefield=SparseBelow"`
	}

	DocumentConfig struct {
		Language              string        `yaml:"language" validate:"required,bcp47_language_tag"`
		Hyphenate             bool          `yaml:"hyphenate"`
		Template              string        `yaml:"template" validate:"required,oneof=two-column sidebar single-column"`
		OutputNameTemplate    string        `yaml:"output_name_template"`
		FileNameTransliterate bool          `yaml:"file_name_transliterate"`
		Fonts                 FontsConfig   `yaml:"fonts"`
		Picture               PictureConfig `yaml:"picture"`
		Theme                 ThemeConfig   `yaml:"theme"`
		Layout                LayoutConfig  `yaml:"layout"`
		Density               DensityConfig `yaml:"density"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
