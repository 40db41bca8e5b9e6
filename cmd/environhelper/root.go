package environhelper

import (
	"context"
	"fmt"
	"os"

	"github.com/environhelper/environhelper/internal/environment/catalog"
	"github.com/environhelper/environhelper/internal/export"
	"github.com/environhelper/environhelper/internal/filesystems"
	"github.com/environhelper/environhelper/internal/generator"
	"github.com/environhelper/environhelper/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	verbosity int
	jsonLog   bool
)

var rootCmd = &cobra.Command{
	Use:   "environhelper",
	Short: "Generate a .env file from a settings file",
	Long: `environhelper reads a Python settings file and collects every
env(...) / env.<type>(...) call into a starter .env file:
1. Parse - Walk the settings file's syntax tree
2. Extract - Keep calls with a literal key and an optional default
3. Normalize - Render boolean-like defaults as True/False
4. Export - Write KEY=value lines (or json/yaml) to the output file`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsFile := viper.GetString("settings_file")
		outputFile := viper.GetString("output_file")

		fmt.Fprintf(cmd.OutOrStdout(), "Settings file path: %s\n", settingsFile)
		fmt.Fprintf(cmd.OutOrStdout(), "Output file path: %s\n", outputFile)

		if err := runGenerate(cmd.Context(), settingsFile, outputFile); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Done!")
		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.environhelper.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "write logs as JSON")
	rootCmd.PersistentFlags().StringP("settings-file", "s", "settings.py", "Path to the settings file.")
	rootCmd.PersistentFlags().String("catalog", "", "TOML file describing the accepted env accessors")
	rootCmd.PersistentFlags().Bool("fast", false, "scan line by line instead of parsing (misses multi-line calls)")

	rootCmd.Flags().StringP("output-file", "o", ".env", "Path to the output .env file.")
	rootCmd.Flags().String("format", "dotenv", "output format: dotenv, json or yaml")

	cobra.CheckErr(viper.BindPFlag("settings_file", rootCmd.PersistentFlags().Lookup("settings-file")))
	cobra.CheckErr(viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog")))
	cobra.CheckErr(viper.BindPFlag("fast", rootCmd.PersistentFlags().Lookup("fast")))
	cobra.CheckErr(viper.BindPFlag("output_file", rootCmd.Flags().Lookup("output-file")))
	cobra.CheckErr(viper.BindPFlag("format", rootCmd.Flags().Lookup("format")))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".environhelper")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runGenerate(ctx context.Context, settingsFile, outputFile string) error {
	log, err := logger.New(jsonLog, verbosity)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	exporter, err := export.NewExporter(viper.GetString("format"))
	if err != nil {
		return err
	}

	gen, err := newGenerator(log, generator.WithExporter(exporter))
	if err != nil {
		return err
	}

	_, err = gen.Run(ctx, settingsFile, outputFile)
	return err
}

// newGenerator builds a generator on the local disk with the catalog,
// scanning mode and logger taken from flags and config.
func newGenerator(log *zap.SugaredLogger, opts ...generator.Option) (*generator.Generator, error) {
	filesystem := filesystems.NewLocalFS()

	accessors, err := loadCatalog(filesystem)
	if err != nil {
		return nil, err
	}

	opts = append([]generator.Option{
		generator.WithLogger(log),
		generator.WithCatalog(accessors),
		generator.WithLineScanner(viper.GetBool("fast")),
	}, opts...)
	return generator.New(filesystem, opts...), nil
}

// loadCatalog returns the catalog from --catalog (or the default one),
// extended with the "accessors" list from the config file.
func loadCatalog(filesystem filesystems.FileSystem) (*catalog.Catalog, error) {
	accessors := catalog.Default()

	if path := viper.GetString("catalog"); path != "" {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		if accessors, err = catalog.Decode(string(data)); err != nil {
			return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
		}
	}

	if extra := viper.GetStringSlice("accessors"); len(extra) > 0 {
		accessors = accessors.With(extra...)
	}
	return accessors, nil
}
