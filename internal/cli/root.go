// Package cli provides the command-line interface for muhafiz.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/cennetul/muhafiz-go/internal/config"
	"github.com/cennetul/muhafiz-go/internal/persona"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose     bool
	personaFile string

	// Loaded once in PersistentPreRunE
	cfg config.Config
	pol persona.Persona
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "muhafiz",
	Short: "Sales agent chat for the Cennetul Esma shop",
	Long: `Muhafiz is a customer-facing chat agent with a fixed persona and a
structured order-capture tool call.

The serve command runs the backend that the embedded widget talks to; the
chat command runs the widget itself in the terminal.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
		if personaFile != "" {
			cfg.PersonaFile = personaFile
		}

		var err error
		pol, err = persona.Load(cfg.PersonaFile)
		if err != nil {
			return fmt.Errorf("load persona: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the muhafiz version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "muhafiz %s\n", Version)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&personaFile, "persona", "", "YAML file overriding the default persona")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(versionCmd)
}
