package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calebcase/precise/decimal"
	"github.com/calebcase/precise/internal/calc"
	"github.com/calebcase/precise/internal/config"
	"github.com/calebcase/precise/internal/logging"
)

var (
	cfgFile string

	opts     config.ConfigOptions
	rounding calc.Rounding
)

var rootCmd = &cobra.Command{
	Use:   "deccalc",
	Short: "Bounded precision decimal calculator",
	Long: `deccalc evaluates decimal arithmetic with a 64 bit mantissa and a
base 10 scale. Invalid input and overflow produce NaN.

Settings are read from --config, DECCALC_* environment variables and flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "log level: error, warn, info or debug")
	pf.String("format", "text", "output format: text, json or hex")
	pf.Int("precision", decimal.DefaultPrecision, "fractional digits kept when rounding")
	pf.String("rounding", "none", "result rounding: none, truncate, round, up or down")
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) (err error) {
	keys := map[string]string{
		"log_level": "log-level",
		"format":    "format",
		"precision": "precision",
		"rounding":  "rounding",
		"tolerance": "tolerance",
	}

	for key, name := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}

		err = v.BindPFlag(key, f)
		if err != nil {
			return err
		}
	}

	return nil
}

func setup(cmd *cobra.Command, args []string) (err error) {
	v := config.New()

	err = bindFlags(v, cmd)
	if err != nil {
		return err
	}

	opts, err = config.LoadConfig(v, cfgFile)
	if err != nil {
		return err
	}

	logging.SetupLogging(cmd.ErrOrStderr(), opts.LogLevel)

	rounding, err = opts.RoundingPolicy()
	if err != nil {
		return err
	}

	slog.Debug("configured",
		"config", cfgFile,
		"format", opts.Format,
		"rounding", rounding,
		"precision", opts.Precision,
	)

	return nil
}

// parseArg reads a command line decimal. Unlike decimal.Parse it rejects
// malformed text; "NaN" is accepted.
func parseArg(s string) (d decimal.Decimal, err error) {
	err = d.UnmarshalText([]byte(s))

	return d, err
}
