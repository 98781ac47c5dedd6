package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/precise/decimal"
	"github.com/calebcase/precise/internal/calc"
)

// Error is the error class for configuration failures.
var Error = errs.Class("config")

// EnvPrefix is prepended to environment overrides (DECCALC_PRECISION...).
const EnvPrefix = "DECCALC"

type ConfigOptions struct {
	LogLevel string `mapstructure:"log_level"`

	Precision int    `mapstructure:"precision"`
	Rounding  string `mapstructure:"rounding"`

	Format string `mapstructure:"format"`

	Tolerance decimal.Decimal `mapstructure:"tolerance"`
}

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "hex"}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("precision", decimal.DefaultPrecision)
	v.SetDefault("rounding", "none")
	v.SetDefault("format", "text")
	v.SetDefault("tolerance", "0")
}

// LoadConfig reads configFile (if set) into v and decodes the result.
func LoadConfig(v *viper.Viper, configFile string) (config ConfigOptions, err error) {
	defer Error.WrapP(&err)

	if configFile != "" {
		v.SetConfigFile(configFile)

		err = v.ReadInConfig()
		if err != nil {
			return ConfigOptions{}, err
		}
	}

	err = v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)))
	if err != nil {
		return ConfigOptions{}, err
	}

	err = config.Validate()
	if err != nil {
		return ConfigOptions{}, err
	}

	return config, nil
}

// Validate checks the option values.
func (c ConfigOptions) Validate() (err error) {
	_, err = c.RoundingPolicy()
	if err != nil {
		return err
	}

	found := false
	for _, f := range Formats {
		if c.Format == f {
			found = true
		}
	}
	if !found {
		return Error.New("unknown format: %q", c.Format)
	}

	if c.Tolerance.IsNegative() {
		return Error.New("negative tolerance: %s", c.Tolerance)
	}

	return nil
}

// RoundingPolicy returns the configured result rounding.
func (c ConfigOptions) RoundingPolicy() (calc.Rounding, error) {
	return calc.ParseRounding(c.Rounding, c.Precision)
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHookFunc converts numbers from config documents into decimals.
// Strings are left to the text unmarshaler hook.
func decimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != decimalType {
			return data, nil
		}

		switch n := data.(type) {
		case int:
			return decimal.Of(n), nil
		case int64:
			return decimal.Of(n), nil
		case uint64:
			return decimal.Of(n), nil
		case float64:
			return decimal.Of(n), nil
		}

		return data, nil
	}
}
