package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tvogel/dotpad/pkg/snapshot"
)

// listCommand creates the list command showing graph contents as tables.
func (c *CLI) listCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the nodes and edges of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.snapshotPath(file)
			if err != nil {
				return fmt.Errorf("resolve snapshot path: %w", err)
			}
			g, _, err := snapshot.LoadGraph(path)
			if err != nil {
				return err
			}

			if g.NodeCount() == 0 {
				printInfo("Graph is empty")
				return nil
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			borderStyle := lipgloss.NewStyle().Foreground(colorDim)

			nodeRows := [][]string{}
			for _, n := range g.Nodes() {
				nodeRows = append(nodeRows, []string{n.ID.String(), n.Label})
			}
			nodes := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(borderStyle).
				Headers("ID", "Label").
				Rows(nodeRows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return lipgloss.NewStyle()
				})
			fmt.Println(nodes.Render())

			if g.EdgeCount() > 0 {
				edgeRows := [][]string{}
				for _, e := range g.Edges() {
					edgeRows = append(edgeRows, []string{e.ID.String(), e.From.String(), e.To.String(), e.Label})
				}
				edges := table.New().
					Border(lipgloss.RoundedBorder()).
					BorderStyle(borderStyle).
					Headers("ID", "From", "To", "Label").
					Rows(edgeRows...).
					StyleFunc(func(row, col int) lipgloss.Style {
						if row == -1 {
							return headerStyle
						}
						return lipgloss.NewStyle()
					})
				fmt.Println(edges.Render())
			}

			printDetail("%d nodes · %d edges", g.NodeCount(), g.EdgeCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (default: configured or XDG data dir)")

	return cmd
}
