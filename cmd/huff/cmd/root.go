package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bytepress/huff/config"
)

var (
	cfg = config.DefaultConfig()

	cfgFile     string
	logLevel    = levelValue{zapcore.InfoLevel}
	printConfig bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "huff",
	Short: "Huffman chunk compressor",
	Long: `huff compresses and decompresses arbitrary byte streams with a
self-describing Huffman code over 8-bit chunks. The coding tree travels
inside the stream header, so decompression needs nothing but the stream.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if printConfig {
			spew.Dump(cfg)
		}
		return initLogger()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().UintVar(&cfg.BufferSize, "buffersize", cfg.BufferSize, "file buffer size, in bytes")
	rootCmd.PersistentFlags().StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "compressed file name suffix")
	rootCmd.PersistentFlags().BoolVar(&cfg.DisableSpaceChecks, "disable-space-checks", false, "skip the free disk space preflight")
	rootCmd.PersistentFlags().BoolVar(&printConfig, "printConfig", false, "print the used config")
	rootCmd.PersistentFlags().Var(&logLevel, "logLevel", "log level (debug, info, warn, error, dpanic, panic, fatal)")
}

func loadConfig(cmd *cobra.Command) error {
	if cfgFile == "" {
		return nil
	}

	vip := viper.New()
	vip.SetConfigFile(cfgFile)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := vip.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	// Ensure cli args are higher priority than the config file.
	flags := cmd.Flags()
	if flags.Changed("buffersize") {
		cfg.BufferSize, _ = flags.GetUint("buffersize")
	}
	if flags.Changed("suffix") {
		cfg.Suffix, _ = flags.GetString("suffix")
	}
	if flags.Changed("disable-space-checks") {
		cfg.DisableSpaceChecks, _ = flags.GetBool("disable-space-checks")
	}

	return nil
}

func initLogger() error {
	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(logLevel.l),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	var err error
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// levelValue adapts zapcore.Level to the pflag.Value interface.
type levelValue struct {
	l zapcore.Level
}

func (v *levelValue) String() string { return v.l.String() }

func (v *levelValue) Set(s string) error { return v.l.Set(s) }

func (v *levelValue) Type() string { return "level" }
