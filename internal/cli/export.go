package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tvogel/dotpad/pkg/render"
	"github.com/tvogel/dotpad/pkg/snapshot"
)

// exportCommand creates the export command for DOT output.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the graph as Graphviz DOT",
		Long: `Export the graph as Graphviz DOT.

Output goes to stdout unless --output is given, so it can be piped straight
into the Graphviz tools or checked into version control for diffing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.snapshotPath(file)
			if err != nil {
				return fmt.Errorf("resolve snapshot path: %w", err)
			}
			g, _, err := snapshot.LoadGraph(path)
			if err != nil {
				return err
			}

			dot := render.ToDOT(g, c.renderOptions())
			if output == "" {
				fmt.Fprint(os.Stdout, dot)
				return nil
			}
			if err := writeOutput(output, []byte(dot)); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (default: configured or XDG data dir)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
