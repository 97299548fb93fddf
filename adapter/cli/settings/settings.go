// Package settings holds the "config" subcommands that manage the storage
// configuration file.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/felixgeelhaar/todo/internal/app"
	"github.com/felixgeelhaar/todo/pkg/config"
	"github.com/spf13/cobra"
)

var (
	initStorage string
	initSchema  bool
	initForce   bool
)

// Cmd is the config command group.
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the storage configuration",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the storage configuration in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cli.GetConfig()

		sc, err := cfg.Storage()
		if err != nil {
			return err
		}
		backend, err := sc.Backend()
		if err != nil {
			return err
		}

		source := cfg.ConfigPath
		switch {
		case cfg.DatabaseURL != "":
			source = "DATABASE_URL"
		case !fileExists(cfg.ConfigPath):
			source = "default"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n", cfg.ConfigPath)
		fmt.Fprintf(out, "Source:      %s\n", source)
		fmt.Fprintf(out, "Backend:     %s\n", backend)
		fmt.Fprintf(out, "Storage:     %s\n", sc.Redacted())
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the storage configuration file",
	Long: `Write the storage configuration file. Without --storage the default
local file store is used.

Examples:
  todo config init
  todo config init --storage sqlite:///home/me/todo.db --schema
  todo config init --storage postgresql://me@localhost/todo --schema`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cli.GetConfig()

		if fileExists(cfg.ConfigPath) && !initForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", cfg.ConfigPath)
		}

		var (
			sc  config.StorageConfig
			err error
		)
		if initStorage != "" {
			sc, err = config.NewStorageConfig(initStorage)
		} else {
			sc, err = config.DefaultStorageConfig()
		}
		if err != nil {
			return err
		}

		if err := sc.WriteFile(cfg.ConfigPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.ConfigPath)

		if initSchema {
			_, closer, err := app.OpenRepository(cmd.Context(), sc, cli.GetLogger(),
				app.WithMaxConns(cfg.MaxConns), app.WithEnsureSchema())
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			if err := closer.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s storage\n", backendOf(sc))
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initStorage, "storage", "s", "", "storage URL (file://, sqlite://, postgresql://)")
	initCmd.Flags().BoolVar(&initSchema, "schema", false, "create the storage (file or tasks table) now")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")

	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(initCmd)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

func backendOf(sc config.StorageConfig) config.Backend {
	b, _ := sc.Backend()
	return b
}
