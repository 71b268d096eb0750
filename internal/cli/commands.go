// Package cli implements the vs command line tool: scaffolding, running and
// maintaining voice skill projects.
package cli

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/telekom/voice-skill-sdk/skill"
)

var configFile string

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vs [command] [flags]",
	Short: "vs - the voice skill SDK command line tool",
	Long: `vs manages voice skill projects built with the skill SDK.

Examples:
  # Scaffold a new skill project
  vs init my-skill

  # Run the skill in the current directory
  vs run

  # Extract message keys into a translation template
  vs translate -o locale/template.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "skill.conf", "Path to the skill configuration file")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newTranslateCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the SDK version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("voice skill SDK %s (SPI %s)\n", skill.Version, skill.SPIVersion)
		},
	}
}
