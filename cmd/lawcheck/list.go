package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// catalogue is the --yaml form of the list output.
type catalogue struct {
	Suites []catalogueEntry `yaml:"suites"`
}

type catalogueEntry struct {
	Name string   `yaml:"name"`
	Laws []string `yaml:"laws"`
}

func newListCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the suites and the laws each one checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := a.lookup(a.cfg.Bound)
			if err != nil {
				return err
			}

			var c catalogue
			for _, s := range suites {
				e := catalogueEntry{Name: s.Name}
				for _, p := range s.Properties {
					e.Laws = append(e.Laws, p.Law)
				}
				c.Suites = append(c.Suites, e)
			}

			out := cmd.OutOrStdout()
			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(c); err != nil {
					return err
				}
				return enc.Close()
			}
			for _, e := range c.Suites {
				fmt.Fprintln(out, e.Name)
				for _, law := range e.Laws {
					fmt.Fprintf(out, "  %s\n", law)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalogue as YAML")
	return cmd
}
