package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/tracklinehq/trackline/pkg/engine"
	tlerrors "github.com/tracklinehq/trackline/pkg/errors"
	"github.com/tracklinehq/trackline/pkg/timeline"
)

// serveCommand creates the serve command for the local development server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		itemsPath  string
		count      int
		addr       string
		width      float64
		height     float64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP for local development",
		Long: `Serve the engine over HTTP for local development.

The serve command runs one engine instance over a simulated layout and
exposes it as a small JSON API:

  GET  /api/frame            current frame
  GET  /api/items            content items
  POST /api/scroll           set scroll offset {"offset": 1200}
  POST /api/resize           set viewport {"width": 375, "height": 700}
  POST /api/nav/next         advance one item (arrow navigation)
  POST /api/nav/prev         step back one item (arrow navigation)
  POST /api/nav/{index}      jump to an item (arrow navigation)

Scroll and resize recompute synchronously and return the new frame, so a
frontend prototype can poll-free drive the engine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSetup(configPath, itemsPath, count)
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), s, addr, timeline.Viewport{Width: width, Height: height})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&itemsPath, "items", "", "content file (.toml, .yaml)")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "synthetic item count when no content file is given")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8423", "listen address")
	cmd.Flags().Float64Var(&width, "width", 1280, "initial simulated viewport width")
	cmd.Flags().Float64Var(&height, "height", 800, "initial simulated viewport height")

	return cmd
}

// runServe builds the engine and serves the JSON API until ctx is done.
func (c *CLI) runServe(ctx context.Context, s setup, addr string, viewport timeline.Viewport) error {
	geo := newSimGeometry(s.cfg, len(s.items), viewport)

	e, err := engine.New(s.cfg, timeline.StaticSource(s.items), geo,
		engine.SinkFunc(func(timeline.Frame) {}),
		engine.WithLogger(c.Logger))
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	defer e.Destroy()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServeRouter(e, geo),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("serving engine API", "addr", addr, "items", len(s.items),
		"navigation", s.cfg.NavigationType)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve on %s: %w", addr, err)
	}
	return ctx.Err()
}

// =============================================================================
// Router
// =============================================================================

// newServeRouter builds the chi router for one engine instance.
func newServeRouter(e *engine.Engine, geo *simGeometry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/frame", func(w http.ResponseWriter, _ *http.Request) {
			frame, ok := e.Frame()
			if !ok {
				writeError(w, http.StatusServiceUnavailable, "no frame published yet")
				return
			}
			writeJSON(w, http.StatusOK, frame)
		})

		r.Get("/items", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, e.Items())
		})

		r.Post("/scroll", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Offset float64 `json:"offset"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
				return
			}
			geo.SetScroll(body.Offset)
			e.Refresh()
			writeFrame(w, e)
		})

		r.Post("/resize", func(w http.ResponseWriter, req *http.Request) {
			var body timeline.Viewport
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
				return
			}
			geo.SetViewport(body)
			e.Refresh()
			writeFrame(w, e)
		})

		r.Post("/nav/next", func(w http.ResponseWriter, _ *http.Request) {
			navResponse(w, e, e.Next())
		})

		r.Post("/nav/prev", func(w http.ResponseWriter, _ *http.Request) {
			navResponse(w, e, e.Prev())
		})

		r.Post("/nav/{index}", func(w http.ResponseWriter, req *http.Request) {
			i, err := strconv.Atoi(chi.URLParam(req, "index"))
			if err != nil {
				writeError(w, http.StatusBadRequest, "index must be an integer")
				return
			}
			navResponse(w, e, e.GoTo(i))
		})
	})

	return r
}

// =============================================================================
// Response Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeFrame(w http.ResponseWriter, e *engine.Engine) {
	frame, ok := e.Frame()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "layout unavailable")
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

// navResponse maps navigation errors to HTTP statuses.
func navResponse(w http.ResponseWriter, e *engine.Engine, err error) {
	switch {
	case err == nil:
		writeFrame(w, e)
	case tlerrors.Is(err, tlerrors.ErrCodeUnsupported):
		writeError(w, http.StatusConflict, tlerrors.UserMessage(err))
	case tlerrors.Is(err, tlerrors.ErrCodeNoGeometry):
		writeError(w, http.StatusServiceUnavailable, tlerrors.UserMessage(err))
	case tlerrors.Is(err, tlerrors.ErrCodeDestroyed):
		writeError(w, http.StatusGone, tlerrors.UserMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, tlerrors.UserMessage(err))
	}
}
