// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the SoftWear core
// using the Cobra library. It defines the root command, subcommands (login,
// audit, maintenance), flags, and the main entry point for execution.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JustTzyy/softwear/buildvars"
	"github.com/JustTzyy/softwear/internal/config"
	"github.com/JustTzyy/softwear/internal/db"
	"github.com/JustTzyy/softwear/internal/i18n"
	"github.com/JustTzyy/softwear/internal/logging"
)

var cfgFile string
var verbose bool
var appConfig config.Config

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

// newRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "softwear",
		Short: "SoftWear is the backend core of a retail inventory system.",
		Long: `SoftWear holds the credential authentication and audit history core
of a retail inventory system. The database is the source of truth: users
and roles drive sign-in, and every significant action leaves one immutable
audit entry that can be filtered, paged, and exported from here.`,
		PersistentPreRunE: setupServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(loginCmd)
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(maintenanceCmd)

	cmd.Version = buildvars.VersionOrDefault("dev")

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets debug level for app and DB logs)")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches the user and system config dirs, then the current directory)")
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (e.g., sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "./softwear.db", "Database connection string (DSN)")
	cmd.PersistentFlags().String("language", "en", `CLI language ("en", "fil")`)

	return cmd
}

// setupServices loads configuration and initializes i18n and the database.
// It runs before every command.
func setupServices(cmd *cobra.Command, args []string) error {
	logging.SetDebug(verbose)
	db.SetDebug(verbose)

	var explicit *string
	if cfgFile != "" {
		explicit = &cfgFile
	}

	defaults := map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./softwear.db",
		"language":      "en",
	}

	var err error
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, explicit)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// First run, or the config file was deleted. Persist the defaults so
		// subsequent runs have a file to inspect and edit.
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			// The app can still run on in-memory defaults.
			logging.Warnf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	i18n.Init(appConfig.Language)
	if err := db.InitDB(appConfig.Database.Type, appConfig.Database.DSN); err != nil {
		return fmt.Errorf(i18n.T("config.error_init_db"), err)
	}
	return nil
}

// promptLine reads one line from stdin after printing the given prompt.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
