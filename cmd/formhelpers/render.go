package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		dataPath string
		engine   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a template file",
		Long: `Render a template file with form helpers registered.

Examples:
  formhelpers render signup.tpl --data user.yaml
  formhelpers render signup.tmpl --engine html --namespace fh --separator _`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.helperOptions()
			if err != nil {
				return err
			}
			data, err := loadData(dataPath)
			if err != nil {
				return err
			}

			dir, file := filepath.Split(args[0])
			if dir == "" {
				dir = "."
			}
			ext := filepath.Ext(file)
			if ext == "" {
				ext = defaultExtension(engine)
			}
			host, err := newHost(engine, dir, ext, opts)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = host.RenderTemplate(file, data, cmd.OutOrStdout())
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if _, err := host.RenderTemplate(file, data, f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "JSON or YAML data file")
	cmd.Flags().StringVarP(&engine, "engine", "e", enginePongo, "Template engine: pongo or html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}
