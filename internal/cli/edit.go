package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tvogel/dotpad/pkg/edit"
	"github.com/tvogel/dotpad/pkg/snapshot"
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a graph interactively",
		Long: `Edit a graph interactively.

The editor loads the snapshot (or starts an empty graph if none exists) and
accepts one command per line: add, rename, and delete nodes; link, relabel,
and delete edges; undo and redo. Deleting a node removes its incident edges
with it, and a single undo brings all of them back.

Every change is saved to the snapshot immediately. With autorender enabled
(the default), the SVG next to the snapshot is refreshed after each change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.snapshotPath(file)
			if err != nil {
				return fmt.Errorf("resolve snapshot path: %w", err)
			}

			g, docID, err := snapshot.LoadGraph(path)
			if err != nil {
				return err
			}
			c.Logger.Debug("loaded snapshot", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())

			model := newEditorModel(c, edit.New(g), path, docID)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (default: configured or XDG data dir)")

	return cmd
}
