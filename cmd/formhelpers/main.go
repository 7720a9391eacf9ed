package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
)

// Version information set at build time.
var version = "dev"

type globalFlags struct {
	namespace  string
	errorClass string
	separator  string
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "formhelpers",
		Short: "Render form markup with template helpers",
		Long: `formhelpers renders HTML form elements from templates.

Helpers (form, input, select, field_errors and their _validation variants)
are registered into a pongo2 or html/template engine, optionally under a
namespace, and applied to a data file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.namespace, "namespace", "n", "", "Prefix helper names with this namespace")
	pf.StringVar(&flags.errorClass, "error-class", "", "Class added by validation helpers (default \"validation-error\")")
	pf.StringVar(&flags.separator, "separator", "", "Separator between namespace and helper name (default \"-\")")
	pf.StringVarP(&flags.configPath, "config", "c", "", "JSON or YAML helper configuration file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log helper registration")

	rootCmd.AddCommand(
		renderCmd(flags),
		listCmd(flags),
		tryCmd(flags),
		serveCmd(flags),
	)
	return rootCmd
}

// helperOptions layers flag overrides on top of the optional config file.
func (f *globalFlags) helperOptions() ([]helpers.Option, error) {
	var opts []helpers.Option

	if f.configPath != "" {
		dir, file := filepath.Split(f.configPath)
		if dir == "" {
			dir = "."
		}
		cfg, err := helpers.LoadConfig(os.DirFS(dir), file)
		if err != nil {
			return nil, err
		}
		opts = append(opts, helpers.WithConfig(cfg))
	}
	if f.namespace != "" {
		opts = append(opts, helpers.WithNamespace(f.namespace))
	}
	if f.errorClass != "" {
		opts = append(opts, helpers.WithValidationErrorClass(f.errorClass))
	}
	if f.separator != "" {
		opts = append(opts, helpers.WithSeparator(f.separator))
	}
	opts = append(opts, helpers.WithLogger(f.logger()))
	return opts, nil
}

func (f *globalFlags) logger() *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
