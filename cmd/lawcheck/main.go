package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/okutsen/lawcheck/pkg/laws"
)

const envPrefix = "LAWCHECK"

var (
	configFile string
	trials     int
	seed       int64
	workers    int
	intMin     int
	intMax     int
	seqMin     int
	seqMax     int
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "lawcheck",
	Short: "Verify functor and monad laws for the optional and result containers",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfiguration(cmd, configFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger(viper.GetString("log-level"))
		defer logger.Sync()

		cfg := laws.Config{
			Trials:    viper.GetInt("trials"),
			IntMin:    viper.GetInt("int-min"),
			IntMax:    viper.GetInt("int-max"),
			SeqLenMin: viper.GetInt("seq-min"),
			SeqLenMax: viper.GetInt("seq-max"),
			Seed:      viper.GetInt64("seed"),
			Workers:   viper.GetInt("workers"),
		}

		h, err := laws.New(cfg, laws.WithLogger(logger))
		if err != nil {
			return err
		}

		report, err := h.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(report)
		if !report.AllPassed() {
			// exit-code policy lives here, not in the harness
			os.Exit(1)
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	def := laws.DefaultConfig()
	rootCmd.Flags().StringVar(&configFile, "config", "", "configuration file")
	rootCmd.Flags().IntVar(&trials, "trials", def.Trials, "trials per law")
	rootCmd.Flags().Int64Var(&seed, "seed", def.Seed, "base seed for input generation")
	rootCmd.Flags().IntVar(&workers, "workers", def.Workers, "parallel trial workers")
	rootCmd.Flags().IntVar(&intMin, "int-min", def.IntMin, "lower bound for generated integers")
	rootCmd.Flags().IntVar(&intMax, "int-max", def.IntMax, "upper bound for generated integers")
	rootCmd.Flags().IntVar(&seqMin, "seq-min", def.SeqLenMin, "minimum generated sequence length")
	rootCmd.Flags().IntVar(&seqMax, "seq-max", def.SeqLenMax, "maximum generated sequence length")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
}

func initConfiguration(cmd *cobra.Command, configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("fail to read config file %q: %w", configFile, err)
		}
	}

	bindFlags(cmd)
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and
// environment variable).
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		envName := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		_ = viper.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envName))
		_ = viper.BindPFlag(f.Name, f)
	})
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	if atomicLevel, err := zap.ParseAtomicLevel(level); err == nil {
		loggerCfg.Level = atomicLevel
	}

	logger, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}
	return logger
}
