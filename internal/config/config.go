// Package config holds labelgen settings read from .labelgen.yaml.
package config

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".labelgen.yaml"

// DefaultOutput is the name of the file derived labels are written to.
const DefaultOutput = "label_gen.go"

// ConstMode describes how the label constant is declared.
type ConstMode int

const (
	ConstModeInvalid ConstMode = iota

	// ConstModeAuto exports the constant when the type is exported.
	ConstModeAuto

	// ConstModeExported always exports the constant.
	ConstModeExported

	// ConstModeNone emits no constant, the method returns the literal.
	ConstModeNone
)

var constModeValueMap = map[ConstMode]string{
	ConstModeAuto:     "auto",
	ConstModeExported: "exported",
	ConstModeNone:     "none",
}

func (m ConstMode) String() string {
	v, ok := constModeValueMap[m]
	if !ok {
		return fmt.Sprintf("invalid(%d)", m)
	}

	return v
}

var (
	_ encoding.TextUnmarshaler = (*ConstMode)(nil)
	_ encoding.TextMarshaler   = ConstMode(0)
)

// UnmarshalText for setting values with configs, CLI, etc.
func (m *ConstMode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range constModeValueMap {
		if v == text {
			*m = k
			return nil
		}
	}

	return errors.Newf("unknown const mode %q", text)
}

func (m ConstMode) MarshalText() ([]byte, error) {
	v, ok := constModeValueMap[m]
	if !ok {
		return nil, errors.Newf("cannot marshal invalid ConstMode(%d)", int(m))
	}

	return []byte(v), nil
}

// Set implements pflag.Value.
func (m *ConstMode) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (m *ConstMode) Type() string {
	return "auto|exported|none"
}

// Config is the labelgen configuration.
type Config struct {
	// Output is the name of the file derived labels are written to. Labels
	// of types declared in _test.go files go to its _test.go twin.
	Output string `yaml:"output"`

	// Tests makes derive consider _test.go files of a package.
	Tests bool `yaml:"tests"`

	// Const controls the label constant declaration.
	Const ConstMode `yaml:"const"`

	// BuildTags are the constraints of generated files, joined into a
	// single //go:build line.
	BuildTags []string `yaml:"build_tags"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: DefaultOutput,
		Const:  ConstModeAuto,
	}
}

// TestOutput returns the name of the file for labels of test types.
func (c Config) TestOutput() string {
	return strings.TrimSuffix(c.Output, ".go") + "_test.go"
}

// IsOutput reports whether the base name is one of the generated files.
func (c Config) IsOutput(base string) bool {
	return base == c.Output || base == c.TestOutput()
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("output file name must not be empty")
	}
	if !strings.HasSuffix(c.Output, ".go") || strings.HasSuffix(c.Output, "_test.go") {
		return errors.WithHint(
			errors.Newf("invalid output file name %q", c.Output),
			"use a non-test .go file name, like "+DefaultOutput,
		)
	}
	if strings.ContainsAny(c.Output, `/\`) {
		return errors.Newf("output %q must be a file name, not a path", c.Output)
	}
	if _, ok := constModeValueMap[c.Const]; !ok {
		return errors.Newf("invalid const mode %s", c.Const)
	}
	for _, tag := range c.BuildTags {
		if strings.TrimSpace(tag) == "" || strings.Contains(tag, "\n") {
			return errors.Newf("invalid build constraint %q", tag)
		}
	}

	return nil
}

// Parse decodes the configuration over the defaults. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}

// Load reads the configuration from path. A missing file is not an error
// when it is the default one.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}
