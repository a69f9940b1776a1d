package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/crytic/solc-artifacts/cmd/exitcodes"
	"github.com/crytic/solc-artifacts/logging"
	"github.com/crytic/solc-artifacts/roundtrip"
	"github.com/crytic/solc-artifacts/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// checkCmd represents the command provider for artifact validation
var checkCmd = &cobra.Command{
	Use:               "check [path ...]",
	Short:             "Round-trip validates solc JSON artifacts",
	Long:              `Parses each given artifact file (or every .json file under each given directory) through the typed models and verifies decode/encode stability`,
	Args:              cmdValidateCheckArgs,
	ValidArgsFunction: cmdValidCheckArgs,
	RunE:              cmdRunCheck,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add all the flags allowed for the check command
	addCheckFlags()

	// Add the check command and its associated flags to the root command
	rootCmd.AddCommand(checkCmd)
}

// cmdValidCheckArgs will return which flags and sub-commands are valid for dynamic completion for the check command
func cmdValidCheckArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Gather a list of flags that are available to be used in the current command but have not been used yet
	var unusedFlags []string

	// Examine all the flags, and add any flags that have not been set in the current command line
	// to a list of unused flags
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed {
			unusedFlags = append(unusedFlags, "--"+flag.Name)
		}
	})

	// Paths are positional, so file completion stays enabled alongside the flags.
	return unusedFlags, cobra.ShellCompDirectiveDefault
}

// cmdValidateCheckArgs makes sure that at least one path is provided to the check command
func cmdValidateCheckArgs(cmd *cobra.Command, args []string) error {
	// Make sure we have at least one positional arg
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		err = fmt.Errorf("check requires at least one artifact file or directory to validate")
		cmdLogger.Error("Failed to validate args to the check command", err)
		return err
	}
	return nil
}

// cmdRunCheck executes the CLI check command. Each argument is validated as a single
// artifact file or, if it names a directory, as a corpus of .json artifacts. A report
// is printed per directory, and the process exits non-zero if any document fails.
func cmdRunCheck(cmd *cobra.Command, args []string) error {
	// Parse the log level
	levelFlag, err := cmd.Flags().GetString("log-level")
	if err != nil {
		cmdLogger.Error("Failed to run the check command", err)
		return err
	}
	level, err := zerolog.ParseLevel(levelFlag)
	if err != nil {
		cmdLogger.Error("Failed to run the check command", err)
		return err
	}
	cmdLogger.SetLevel(level)

	// Structured output goes to a log file, if one was requested.
	logFilePath, err := cmd.Flags().GetString("log-file")
	if err != nil {
		cmdLogger.Error("Failed to run the check command", err)
		return err
	}
	if logFilePath != "" {
		logFile, err := utils.CreateFile(filepath.Dir(logFilePath), filepath.Base(logFilePath))
		if err != nil {
			cmdLogger.Error("Failed to create the log file", err)
			return err
		}
		defer logFile.Close()
		cmdLogger.AddWriter(logFile, logging.STRUCTURED)
	}

	validator := roundtrip.NewValidator(cmdLogger)

	failures := 0
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			cmdLogger.Error("Failed to access the artifact path", err)
			return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
		}

		if info.IsDir() {
			report, err := validator.ValidateDirectory(path)
			if err != nil {
				cmdLogger.Error("Failed to validate the artifact directory", err)
				return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
			}
			failures += len(report.Failures)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			cmdLogger.Error("Failed to read the artifact file", err)
			return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
		}
		kind, err := validator.Validate(data)
		if err != nil {
			cmdLogger.Error("Validation failed for ", path, err)
			failures++
			continue
		}
		cmdLogger.Info("Validated ", path, " as ", string(kind))
	}

	if failures > 0 {
		return exitcodes.NewErrorWithExitCode(
			fmt.Errorf("%d document(s) failed validation", failures),
			exitcodes.ExitCodeValidationFailed,
		)
	}
	return nil
}
