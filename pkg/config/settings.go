package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gpak-tools/textminator/pkg/errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into Settings
const EnvPrefix = "TEXTMINATOR_"

// Settings are the flag defaults that can be preset from the environment,
// e.g. TEXTMINATOR_CONFIG=/etc/textminator.toml. Flags given on the command
// line always win.
type Settings struct {
	Config      string `koanf:"config"`
	StatsFormat string `koanf:"stats_format"`
	LogFile     string `koanf:"log_file"`
	Quiet       bool   `koanf:"quiet"`
	Trace       bool   `koanf:"trace"`
}

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"config":       "",
		"stats_format": "auto",
		"log_file":     "",
		"quiet":        false,
		"trace":        false,
	}
}

// LoadSettings merges built-in defaults with TEXTMINATOR_* variables
func LoadSettings() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigSource, "failed to load environment settings")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigSource, "invalid TEXTMINATOR_* setting")
	}

	return &s, nil
}
