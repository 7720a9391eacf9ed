package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formhelpers/components/timezones"
	"github.com/goliatone/go-formhelpers/pkg/helpers"
)

type serveConfig struct {
	dir      string
	engine   string
	ext      string
	dataPath string
	logger   *slog.Logger
	options  []helpers.Option
}

func serveCmd(flags *globalFlags) *cobra.Command {
	cfg := serveConfig{}
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <template-dir>",
		Short: "Serve a live preview of a template directory",
		Long: `Serve every template in a directory at its own path, rendered with the
data file on each request. /about renders about.tpl, / renders index.tpl.

The timezone options endpoint is mounted at /api/timezones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.helperOptions()
			if err != nil {
				return err
			}
			cfg.dir = args[0]
			cfg.options = opts
			cfg.logger = flags.logger()
			if cfg.ext == "" {
				cfg.ext = defaultExtension(cfg.engine)
			}

			router, err := newRouter(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return listen(ctx, addr, router, cfg.logger)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().StringVarP(&cfg.engine, "engine", "e", enginePongo, "Template engine: pongo or html")
	cmd.Flags().StringVar(&cfg.ext, "ext", "", "Template extension (default .tpl, or .tmpl for html)")
	cmd.Flags().StringVarP(&cfg.dataPath, "data", "d", "", "JSON or YAML data file")

	return cmd
}

func newRouter(cfg serveConfig) (http.Handler, error) {
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	host, err := newHost(cfg.engine, cfg.dir, cfg.ext, cfg.options)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	if _, err := timezones.RegisterRoutes(r, "/"); err != nil {
		return nil, err
	}

	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		name := strings.Trim(path.Clean("/"+chi.URLParam(req, "*")), "/")
		if name == "" {
			name = "index"
		}

		data, err := loadData(cfg.dataPath)
		if err != nil {
			cfg.logger.Error("load preview data", "path", cfg.dataPath, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		out, err := host.RenderTemplate(name, data)
		if err != nil {
			cfg.logger.Error("render preview", "template", name, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(out))
	})

	return r, nil
}

func listen(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving form previews", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
