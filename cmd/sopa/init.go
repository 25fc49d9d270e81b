package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artepepep/Sopa-de-Letras/internal/config"
)

//go:embed templates/sopa.yaml
var configTemplate embed.FS

// configTemplatePath is the embedded template location.
const configTemplatePath = "templates/sopa.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new sopa configuration file",
		Long: `Initialize creates a new .sopa configuration file in the current directory.

The generated file includes:
- Default board size and placement limits
- Example presets with word lists
- Comments describing every option

Examples:
  # Create .sopa in current directory
  sopa init

  # Create config file at a specific path
  sopa init -o ~/.config/sopa/config.yaml

  # Force overwrite existing file
  sopa init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(configTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to set:")
	fmt.Fprintln(out, "  - The default board size")
	fmt.Fprintln(out, "  - Named presets with their own words and seeds")
	fmt.Fprintln(out, "\nThen run 'sopa generate --preset <name>' or 'sopa batch'.")

	return nil
}
