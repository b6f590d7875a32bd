package analysis

import (
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-insight/internal/indicator"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"github.com/rxtech-lab/argo-insight/pkg/utils"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the config schema version this build reads. Major and
// minor must match the version declared in a config file; patch may differ.
const SchemaVersion = "1.0.0"

// Config holds the dashboard's default analysis settings. Per-render
// requests may override the indicator windows.
type Config struct {
	SchemaVersion string           `yaml:"schema_version" json:"schema_version" jsonschema:"title=Schema Version,description=Config schema version,default=1.0.0"`
	Indicators    indicator.Params `yaml:"indicators" json:"indicators" jsonschema:"title=Indicator Defaults"`
	TestFraction  float64          `yaml:"test_fraction" json:"test_fraction" validate:"gt=0,lt=1" jsonschema:"title=Test Fraction,description=Share of rows held out for testing,default=0.2"`
	ForestSize    int              `yaml:"forest_size" json:"forest_size" validate:"min=1" jsonschema:"title=Forest Size,description=Number of trees in the prediction model,default=10"`
}

// DefaultConfig returns the built-in analysis defaults.
func DefaultConfig() Config {
	return Config{
		SchemaVersion: SchemaVersion,
		Indicators:    indicator.DefaultParams(),
		TestFraction:  0.2,
		ForestSize:    10,
	}
}

// LoadConfig reads, validates and version-checks a YAML config file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to read config file", err)
	}

	return ParseConfig(raw)
}

// ParseConfig parses and validates YAML config content.
func ParseConfig(raw []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := checkSchemaCompatibility(config.SchemaVersion); err != nil {
		return Config{}, err
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return config, nil
}

// Schema generates the JSON schema for the config file format.
func (c Config) Schema() (string, error) {
	return utils.GetSchemaFromConfig(c)
}

// checkSchemaCompatibility verifies a config file's declared schema version
// against SchemaVersion. "main" skips the check for development builds;
// major and minor must match, patch is free.
func checkSchemaCompatibility(fileVersion string) error {
	fileVersion = strings.TrimPrefix(fileVersion, "v")
	if fileVersion == "main" {
		return nil
	}

	declared, err := semver.NewVersion(fileVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeSchemaVersion, err, "invalid schema version '%s'", fileVersion)
	}

	current := semver.MustParse(SchemaVersion)

	if declared.Major() != current.Major() || declared.Minor() != current.Minor() {
		return errors.Newf(errors.ErrCodeSchemaVersion,
			"config schema version %s is not compatible with %s (major and minor must match)",
			fileVersion, SchemaVersion)
	}

	return nil
}
