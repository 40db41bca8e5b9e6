package environhelper

import (
	"fmt"

	"github.com/environhelper/environhelper/internal/errors"
	"github.com/environhelper/environhelper/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errCheckFailed = errors.New("env file is missing variables")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare an existing .env file with the settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsFile := viper.GetString("settings_file")
		envFile, err := cmd.Flags().GetString("env-file")
		if err != nil {
			return err
		}

		log, err := logger.New(jsonLog, verbosity)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		gen, err := newGenerator(log)
		if err != nil {
			return err
		}

		report, err := gen.Check(cmd.Context(), settingsFile, envFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, key := range report.Missing {
			fmt.Fprintf(out, "missing: %s\n", key)
		}
		for _, key := range report.Extra {
			fmt.Fprintf(out, "extra: %s\n", key)
		}

		if !report.OK() {
			return errors.Wrapf(errCheckFailed, "%s lacks %d variable(s)", envFile, len(report.Missing))
		}
		fmt.Fprintf(out, "%s declares every variable read by %s\n", envFile, settingsFile)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("env-file", "e", ".env", "Path to the .env file to check.")
	rootCmd.AddCommand(checkCmd)
}
