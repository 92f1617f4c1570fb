package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games linked into brickbreak",
	Args:  cobra.NoArgs,
	Run:   runList,
}

var (
	listHeader = lipgloss.NewStyle().Bold(true)
	listID     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	listHint   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "no games linked in")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}
	pad := func(id string) string { return id + strings.Repeat(" ", idWidth-len(id)) }

	fmt.Fprintln(out, listHeader.Render(pad("ID")+"  Title"))
	for _, g := range games {
		marker := ""
		if g.ID == registry.DefaultGame {
			marker = " (default)"
		}
		fmt.Fprintf(out, "%s  %s%s\n", listID.Render(pad(g.ID)), g.Title, marker)
	}
	fmt.Fprintln(out, listHint.Render("brickbreak play <id> to start one"))
}
