package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ecstyle/import-checker/pkg/checker"
	"github.com/ecstyle/import-checker/pkg/classify"
	"github.com/ecstyle/import-checker/pkg/messages"
	"github.com/ecstyle/import-checker/pkg/pytree"
	"github.com/ecstyle/import-checker/pkg/scanner"
	"github.com/ecstyle/import-checker/pkg/utils"
	"github.com/ecstyle/import-checker/pkg/version"
)

const (
	UseDescription   = "pyimportlint [flags] PATH"
	ShortDescription = "Python import style checker - PEP 8 import grouping and ordering"
	LongDescription  = `pyimportlint checks the import statements of Python source files against
the PEP 8 import conventions:

  C7001  imports should be on separate lines
  C7002  imports should be at the top of the file
  C7003  imports should be grouped: standard library, third party, local
  C7004  imports should additionally be sorted alphabetically in each group
  C7005  relative imports are discouraged

PATH can be either a single Python file or a directory. When a directory is
specified, all Python source files in the directory and subdirectories will
be checked.

The provenance of each import is inferred from where the module physically
lives: modules found under the application root are local, modules found
under the standard library root (outside site-packages) are standard
library, and everything else, including unresolvable names, is third party.`
)

var (
	appRoot     string
	stdlibRoot  string
	searchPath  []string
	verbose     bool
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appRoot, "app-root", "", "Application root used to classify local imports (defaults to the working directory)")
	rootCmd.PersistentFlags().StringVar(&stdlibRoot, "stdlib-root", "", "Standard library installation root (defaults to $PYTHONHOME)")
	rootCmd.PersistentFlags().StringSliceVar(&searchPath, "search-path", []string{}, "Comma-separated module search path (defaults to the app root plus $PYTHONPATH)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		if versionStr == "" || versionStr == "(devel)" {
			fmt.Println(version.Get().String())
		} else {
			fmt.Printf("Python Import Lint version %s\n", versionStr)
		}
		return nil
	}

	logger := newLogger(verbose)

	root := appRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("%s: %w", messages.ErrMsgFailedToGetWorkingDir, err)
		}
		root = wd
	}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		root = real
	}

	if stdlibRoot == "" {
		stdlibRoot = os.Getenv("PYTHONHOME")
	}
	paths := searchPath
	if len(paths) == 0 {
		paths = append([]string{root}, filepath.SplitList(os.Getenv("PYTHONPATH"))...)
		if stdlibRoot != "" {
			paths = append(paths, stdlibRoot)
		}
	}

	fsys := afero.NewOsFs()
	cl := classify.New(classify.Config{
		StdlibRoot: stdlibRoot,
		AppRoot:    root,
		Resolver:   classify.NewFileResolver(fsys, paths...),
	})

	rep := &printReporter{cmd: cmd}
	chk := checker.New(cl, rep)

	target := args[0]
	isDir, err := utils.IsDirectory(target)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.ErrMsgFailedToCheckPath, err)
	}

	files := []string{target}
	if isDir {
		files, err = utils.FindPythonFiles(target)
		if err != nil {
			return fmt.Errorf("%s: %w", messages.ErrMsgFailedToFindPyFiles, err)
		}
		if len(files) == 0 {
			logger.Info().Str("dir", target).Msg(messages.InfoMsgNoPyFilesFound)
			return nil
		}
		logger.Info().Int("files", len(files)).Str("dir", target).Msg("checking directory")
	}

	for _, f := range files {
		logger.Debug().Str("file", f).Msg("checking")
		mod, err := scanner.ScanFile(fsys, f, utils.ModuleName(f, root))
		if err != nil {
			logger.Error().Err(err).Str("file", f).Msg(messages.ErrMsgFailedToScanFile)
			continue
		}
		rep.file = f
		pytree.Walk(mod, chk)
	}

	if rep.count > 0 {
		return fmt.Errorf(messages.ErrMsgViolationsFound, rep.count)
	}
	return nil
}

var _ checker.Reporter = (*printReporter)(nil)

// printReporter writes violations to the command's stdout, one per line,
// prefixed with the file and position they attach to.
type printReporter struct {
	cmd   *cobra.Command
	file  string
	count int
}

func (r *printReporter) Report(v checker.Violation) {
	r.count++
	fmt.Fprintf(r.cmd.OutOrStdout(), "%s:%d:%d: %s %s\n", r.file, v.Loc.Line, v.Loc.Col, v.Code, v.Message())
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
