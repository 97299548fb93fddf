package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/felixgeelhaar/todo/pkg/config"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AnnotationStorage marks commands that need an open storage backend.
const AnnotationStorage = "todo/storage"

var (
	cfgFile string
	verbose bool
	logger  *slog.Logger
	cfg     *config.Config
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a personal task tracker",
	Long: `todo keeps a list of tasks in a local JSON file, a SQLite database
or a PostgreSQL database, selected by the storage URL in the config file.

	Set DATABASE_URL to override the configured storage for one run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c := GetConfig()
		if cfgFile != "" {
			c.ConfigPath = cfgFile
		}
		if verbose {
			logger = observability.NewLogger(observability.LogConfig{
				Level:       observability.LogLevelDebug,
				Format:      observability.LogFormat(c.LogFormat),
				ServiceName: "todo",
			})
		}

		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		ctx := context.WithValue(cmd.Context(), commandContextKey{}, info)
		ctx = observability.WithCorrelationID(ctx, info.correlationID.String())
		ctx = observability.WithOperation(ctx, cmd.Name())
		cmd.SetContext(ctx)
		GetLogger().DebugContext(ctx, "command start", "command", cmd.CommandPath())

		if cmd.Annotations[AnnotationStorage] == "true" {
			return ensureApp(ctx)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		observability.LogDuration(cmd.Context(), GetLogger(), cmd.CommandPath(), info.startedAt)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	closeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand adds commands to the root command.
func AddCommand(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// GetLogger returns the CLI logger, falling back to slog's default.
func GetLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// SetConfig sets the configuration the CLI runs with.
func SetConfig(c *config.Config) {
	cfg = c
}

// GetConfig returns the CLI configuration, loading it from the environment
// on first use.
func GetConfig() *config.Config {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			GetLogger().Warn("failed to load config, using defaults", "error", err)
			loaded = &config.Config{}
		}
		cfg = loaded
	}
	return cfg
}
