package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/tvogel/dotpad/pkg/render"
	"github.com/tvogel/dotpad/pkg/snapshot"
)

// previewPage wraps the SVG in a minimal page that reloads itself, so the
// browser tracks edits made in a parallel editor session.
const previewPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="2">
<title>dotpad</title>
<style>body { margin: 2rem; font-family: sans-serif; } img { max-width: 100%; }</style>
</head>
<body>
<img src="/graph.svg" alt="graph">
</body>
</html>
`

// serveCommand creates the preview server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		file string
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the graph over HTTP",
		Long: `Serve a live preview of the graph over HTTP.

The server re-reads the snapshot on every request, so a browser pointed at
it shows edits from a parallel 'dotpad edit' session as they happen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.snapshotPath(file)
			if err != nil {
				return fmt.Errorf("resolve snapshot path: %w", err)
			}
			return c.runServe(cmd.Context(), path, addr)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "snapshot file (default: configured or XDG data dir)")
	cmd.Flags().StringVar(&addr, "addr", "localhost:7878", "listen address")

	return cmd
}

// runServe starts the preview server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, path, addr string) error {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, previewPage)
	})

	router.Get("/graph.svg", func(w http.ResponseWriter, r *http.Request) {
		g, _, err := snapshot.LoadGraph(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		svg, err := render.SVG(r.Context(), render.ToDOT(g, c.renderOptions()))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	})

	router.Get("/graph.dot", func(w http.ResponseWriter, r *http.Request) {
		g, _, err := snapshot.LoadGraph(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		fmt.Fprint(w, render.ToDOT(g, c.renderOptions()))
	})

	router.Get("/graph.json", func(w http.ResponseWriter, r *http.Request) {
		g, docID, err := snapshot.LoadGraph(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := snapshot.Write(snapshot.FromGraph(g, docID), w); err != nil {
			c.Logger.Error("write snapshot response", "err", err)
		}
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	c.Logger.Info("preview server running", "addr", "http://"+addr)
	printInfo("Previewing %s", path)
	printNextStep("Open", "http://"+addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
