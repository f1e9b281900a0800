package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tvogel/dotpad/pkg/cache"
	"github.com/tvogel/dotpad/pkg/render"
	"github.com/tvogel/dotpad/pkg/snapshot"
)

// Supported render formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
)

// artifactTTL bounds how long rendered artifacts stay in the cache.
const artifactTTL = 30 * 24 * time.Hour

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		file    string
		format  string
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the graph to SVG or PNG",
		Long: `Render the graph to SVG or PNG.

The graph is laid out with the embedded Graphviz engine; no external
binaries are required. Rendered artifacts are cached by the DOT source,
so re-rendering an unchanged graph is instant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatSVG && format != formatPNG {
				return fmt.Errorf("unsupported format %q (svg, png)", format)
			}
			path, err := c.snapshotPath(file)
			if err != nil {
				return fmt.Errorf("resolve snapshot path: %w", err)
			}
			return c.runRender(cmd.Context(), path, format, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (default: configured or XDG data dir)")
	cmd.Flags().StringVar(&format, "format", formatSVG, "output format: svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: next to the snapshot)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// runRender loads the snapshot and renders it, consulting the artifact cache.
func (c *CLI) runRender(ctx context.Context, path, format, output string, noCache bool) error {
	g, _, err := snapshot.LoadGraph(path)
	if err != nil {
		return err
	}

	store := c.newCache(ctx, noCache)
	defer store.Close()

	dot := render.ToDOT(g, c.renderOptions())
	key := cache.ArtifactKey(dot, format)

	spinner := newSpinnerWithContext(ctx, "Rendering graph...")
	spinner.Start()

	data, cacheHit, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Debug("cache get failed", "err", err)
	}
	if !cacheHit {
		data, err = renderArtifact(ctx, dot, format)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		if err := store.Set(ctx, key, data, artifactTTL); err != nil {
			c.Logger.Debug("cache set failed", "err", err)
		}
	}
	spinner.Stop()

	if output == "" {
		output = siblingPath(path, "."+format)
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}

	printSuccess("Rendered %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	printFile(output)
	return nil
}

func renderArtifact(ctx context.Context, dot, format string) ([]byte, error) {
	if format == formatPNG {
		return render.PNG(ctx, dot)
	}
	return render.SVG(ctx, dot)
}

// renderOptions maps the config onto DOT generation options.
func (c *CLI) renderOptions() render.Options {
	return render.Options{
		RankDir: c.Config.RankDir,
		ShowIDs: c.Config.ShowIDs,
	}
}

// siblingPath swaps the extension of path, so graph.json becomes graph.svg.
func siblingPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// writeOutput writes an artifact, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
