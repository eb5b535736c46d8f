package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/carp/cmd/carp"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := carp.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if msg := carp.Describe(err); msg != "" {
			errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
			fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
		}
		os.Exit(1)
	}
}
