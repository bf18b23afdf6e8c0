package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for aioready.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aioready",
		Short: "Score web pages for AI Overview readiness",
		Long: `aioready evaluates web pages for AI Overview (AIO) readiness.

Each page is scored 0-100 in five categories: crawl/index health,
answerability, trust, structured data and content consistency. Rule-based
scores are blended with an Azure OpenAI judge when AZ_OPENAI_ENDPOINT,
AZ_OPENAI_DEPLOYMENT and AZ_OPENAI_KEY are set.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
