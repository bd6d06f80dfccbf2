package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barrierkit/pkg/barrier"
)

// kindsCommand creates the kinds command.
func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the barrier kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), kindsTable())
			return nil
		},
	}
}

func kindsTable() string {
	var rows [][]string
	for _, k := range barrier.Kinds() {
		rows = append(rows, []string{
			strconv.Itoa(int(k)),
			k.String(),
			yesNo(k.Randomized()),
			yesNo(k.Clustered()),
			k.Description(),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Random", "Centers", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorCyan)
			case col == 1:
				return base.Foreground(colorWhite)
			case col == 4:
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorDim)
		})

	return t.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
