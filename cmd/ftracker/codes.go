package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/garrettladley/ftracker/internal/theme"
	"github.com/garrettladley/ftracker/internal/training"
)

func codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List supported activity codes and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := theme.New()
			out := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())

			for _, code := range training.Codes() {
				label := code.Label()
				line := lipgloss.JoinHorizontal(lipgloss.Top,
					t.Base().Width(5).Render(code.String()),
					t.Label(label).Width(15).Render(label),
					t.Muted().Render(strings.Join(code.Fields(), " ")),
				)
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
