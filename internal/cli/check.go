package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/checkfiles/internal/configloader"
	"github.com/yaklabco/checkfiles/internal/logging"
	"github.com/yaklabco/checkfiles/internal/vcs"
	"github.com/yaklabco/checkfiles/pkg/config"
	"github.com/yaklabco/checkfiles/pkg/reporter"
	"github.com/yaklabco/checkfiles/pkg/runner"
)

// ErrProblemsFound is returned when violations or per-file errors were
// recorded. It carries no message of its own; it only drives the exit
// code.
var ErrProblemsFound = errors.New("problems found")

// ErrInvalidUsage is returned for contradictory flag combinations.
var ErrInvalidUsage = errors.New("invalid usage")

// ErrConfig is returned when configuration cannot be loaded or is
// invalid. Invalid configuration is fatal before any scanning begins.
var ErrConfig = errors.New("configuration error")

type checkFlags struct {
	fix     bool
	quiet   bool
	debug   bool
	changed bool
	tabSize int
	jobs    int
	ignore  []string
	exts    []string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check files for tabs and trailing whitespace",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.fix, "fixup", "f", false,
		"fix files by expanding tabs and removing trailing whitespace")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false,
		"hide per-file output and only report summary counts")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false,
		"show settings and details about each file considered")
	cmd.Flags().BoolVar(&flags.changed, "changed", false,
		"check files modified in the enclosing git working tree")
	cmd.Flags().IntVarP(&flags.tabSize, "tabsize", "t", 0,
		"tab width for fixing (default: 8 or the configured tab_size)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = sequential)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "paths to skip")
	cmd.Flags().StringSliceVar(&flags.exts, "ext", nil, "extensions to check (overrides config)")

	return cmd
}

const checkLongDescription = `Check text files for tab characters and trailing whitespace.

By default, checks all files with a checked extension under the current
directory. Specify paths to check specific files or directories, or use
--changed to check the files modified in the enclosing git working tree.
A file named explicitly is checked regardless of its extension.

  --quiet hides filenames and only reports summary information
  --debug shows settings and details about each file considered,
          including the location of offending characters in each line
  --fixup rewrites offending files in place

If problems are found, the command exits 1, otherwise 0. Fixing the
problems in the same run does not change the exit status.

Examples:
  checkfiles check                  # Check current directory
  checkfiles check src/ README.md   # Check specific paths
  checkfiles check --changed        # Check modified files only
  checkfiles check --fixup -t 4     # Fix with a tab width of 4`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	if flags.quiet && flags.debug {
		return fmt.Errorf("%w: --quiet and --debug are mutually exclusive", ErrInvalidUsage)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(configPath, workDir, flags)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	logger.Debug("configuration loaded",
		logging.FieldTabSize, cfg.TabSize,
		logging.FieldExtensions, cfg.Extensions,
		logging.FieldIgnored, cfg.IgnoreFiles,
		logging.FieldFix, cfg.Fix,
		logging.FieldChanged, cfg.Changed,
		logging.FieldJobs, cfg.Jobs,
	)

	paths := args
	if cfg.Changed {
		if len(args) > 0 {
			return fmt.Errorf("%w: --changed cannot be combined with explicit paths", ErrInvalidUsage)
		}
		paths, err = vcs.ChangedFiles(workDir)
		if err != nil {
			return errors.Join(errors.New("failed to enumerate changed files"), err)
		}
		logger.Debug("changed files enumerated", logging.FieldFiles, len(paths))
		if len(paths) == 0 {
			logger.Info("no changed files to check")
			return nil
		}
	}

	runOpts := runner.Options{
		Paths:       paths,
		Enumerated:  cfg.Changed,
		WorkingDir:  workDir,
		Extensions:  cfg.Extensions,
		IgnoreFiles: cfg.IgnoreFiles,
		TabSize:     cfg.TabSize,
		Fix:         cfg.Fix,
		Jobs:        cfg.Jobs,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Mode:       outputMode(flags),
		Color:      colorMode,
		WorkingDir: workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesChecked, result.Summary.FilesChecked,
		logging.FieldFilesWithIssues, result.Summary.FilesWithViolations,
		logging.FieldViolationsTotal, result.Summary.TotalViolations,
		logging.FieldFilesFixed, result.Summary.FilesFixed,
	)

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrProblemsFound
	}

	return nil
}

// loadConfig resolves the run configuration: file and env sources first,
// then CLI flags on top.
func loadConfig(configPath, workDir string, flags *checkFlags) (*config.Config, error) {
	loadResult, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}
	cfg := loadResult.Config

	if len(loadResult.LoadedFrom) > 0 {
		logging.Default().Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	if flags.tabSize != 0 {
		cfg.TabSize = flags.tabSize
	}
	if len(flags.exts) > 0 {
		cfg.Extensions = flags.exts
	}
	cfg.IgnoreFiles = append(cfg.IgnoreFiles, flags.ignore...)
	cfg.Fix = flags.fix
	cfg.Changed = flags.changed
	cfg.Jobs = flags.jobs

	// Flags can push the config back out of bounds.
	if err := configloader.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// outputMode maps the verbosity flags onto the reporter's closed mode
// enumeration. Mutual exclusivity is checked before this point.
func outputMode(flags *checkFlags) reporter.Mode {
	switch {
	case flags.quiet:
		return reporter.ModeQuiet
	case flags.debug:
		return reporter.ModeDebug
	default:
		return reporter.ModeNormal
	}
}
