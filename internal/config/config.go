package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/gjhint/pkg/gjhint"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig mirrors .gjhint.yaml. Nil fields were not set in the file
// and keep their defaults.
type ProjectConfig struct {
	ReportAll           *bool `yaml:"report_all"`
	NoDuplicateMembers  *bool `yaml:"no_duplicate_members"`
	PrecisionWarning    *bool `yaml:"precision_warning"`
	MaxPrecision        *int  `yaml:"max_precision" validate:"omitnil,gte=0,lte=17"`
	IgnoreRightHandRule *bool `yaml:"ignore_right_hand_rule"`
	FailOnMessages      *bool `yaml:"fail_on_messages"`
}

const ConfigFileName = ".gjhint.yaml"

var validate = newValidate()

// newValidate reports fields by their yaml key.
func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads ConfigFileName from dir. Unknown keys are rejected.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, describe(err))
	}
	return &cfg, nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// HintOptions applies the fields set in cfg over gjhint.DefaultHintOptions.
// A nil cfg yields the defaults.
func (cfg *ProjectConfig) HintOptions() gjhint.HintOptions {
	opts := gjhint.DefaultHintOptions()
	if cfg == nil {
		return opts
	}
	setBool(&opts.NoDuplicateMembers, cfg.NoDuplicateMembers)
	setBool(&opts.PrecisionWarning, cfg.PrecisionWarning)
	setBool(&opts.IgnoreRightHandRule, cfg.IgnoreRightHandRule)
	setBool(&opts.FailOnMessages, cfg.FailOnMessages)
	if cfg.MaxPrecision != nil {
		opts.MaxPrecision = *cfg.MaxPrecision
	}
	return opts
}

// ReportAllEnabled reports whether report_all is set to true.
func (cfg *ProjectConfig) ReportAllEnabled() bool {
	return cfg != nil && cfg.ReportAll != nil && *cfg.ReportAll
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
