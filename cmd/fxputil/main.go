package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/absoluteskid/fxputil-go/pkg"
	"github.com/absoluteskid/fxputil-go/pkg/fxp"
	"github.com/absoluteskid/fxputil-go/pkg/logging"
	"github.com/absoluteskid/fxputil-go/pkg/sigdb"
)

const version = "1.0.0"

var (
	dbPath      string
	logLevel    string
	rootCmd     *cobra.Command
	versionFlag bool

	infoFile     string
	compareFileA string
	compareFileB string
	compareBytes string
	setCodeFile  string
	setCodeValue string
)

func getTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func newLogger() hclog.Logger {
	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	return logging.NewLogger("fxputil", level, os.Stderr)
}

func openStore(logger hclog.Logger) *sigdb.Store {
	path := dbPath
	if path == "" {
		path = os.Getenv("FXPUTIL_DB")
	}
	if path == "" {
		path = "signatures.json"
	}
	store, err := sigdb.Open(path, logger)
	if err != nil {
		fatal(logger, "Failed to open signature table", err)
	}
	return store
}

func fatal(logger hclog.Logger, msg string, err error) {
	logger.Error("❌ "+msg, "error", err)
	os.Exit(1)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "fxputil",
		Short: "Inspect and edit VST preset (.fxp) files",
		Long:  `Inspect and edit VST preset (.fxp) files`,
		Run: func(cmd *cobra.Command, args []string) {
			if versionFlag {
				printVersion()
				return
			}
			_ = cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to signatures.json (defaults to FXPUTIL_DB or ./signatures.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show plugin and program information for a preset",
		Run:   runInfo,
	}
	infoCmd.Flags().StringVarP(&infoFile, "file", "f", "", "Path to preset file (required)")
	mustFlag(infoCmd.MarkFlagRequired("file"))

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two preset files byte by byte",
		Run:   runCompare,
	}
	compareCmd.Flags().StringVarP(&compareFileA, "file1", "1", "", "Path to first preset file (required)")
	compareCmd.Flags().StringVarP(&compareFileB, "file2", "2", "", "Path to second preset file (required)")
	compareCmd.Flags().StringVarP(&compareBytes, "bytes", "n", "100", "Number of bytes to compare")
	mustFlag(compareCmd.MarkFlagRequired("file1"))
	mustFlag(compareCmd.MarkFlagRequired("file2"))

	setCodeCmd := &cobra.Command{
		Use:   "set-code",
		Short: "Overwrite the 4-byte plugin code of a preset in place",
		Run:   runSetCode,
	}
	setCodeCmd.Flags().StringVarP(&setCodeFile, "file", "f", "", "Path to preset file (required)")
	setCodeCmd.Flags().StringVarP(&setCodeValue, "code", "c", "", "New plugin code, exactly 4 characters (required)")
	mustFlag(setCodeCmd.MarkFlagRequired("file"))
	mustFlag(setCodeCmd.MarkFlagRequired("code"))

	rootCmd.AddCommand(infoCmd, compareCmd, setCodeCmd, newDBCommand())
}

func mustFlag(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("fxputil %s\n", version)
	fmt.Printf("Built: %s\n", getTimestamp())
}

func runInfo(cmd *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger)

	info, err := pkg.ReadInfo(infoFile, store, logger)
	if err != nil {
		fatal(logger, "Failed to read preset", err)
	}
	printInfo(info)
}

func runCompare(cmd *cobra.Command, args []string) {
	logger := newLogger()

	window, err := fxp.ParseWindow(compareBytes)
	if err != nil {
		fatal(logger, "Bad comparison window", err)
	}

	store := openStore(logger)
	cmp, err := pkg.ComparePresets(compareFileA, compareFileB, window, store, logger)
	if err != nil {
		fatal(logger, "Failed to compare presets", err)
	}
	printComparison(cmp)
}

func runSetCode(cmd *cobra.Command, args []string) {
	logger := newLogger()

	if err := pkg.SetCode(setCodeFile, setCodeValue, logger); err != nil {
		fatal(logger, "Failed to set plugin code", err)
	}
	printSetCodeResult(setCodeFile, setCodeValue)
}
