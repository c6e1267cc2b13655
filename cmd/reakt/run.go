package main

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/reakt-dev/reakt/internal/demo"
	"github.com/reakt-dev/reakt/pkg/host/memdom"
	"github.com/reakt-dev/reakt/pkg/reakt"
)

func runCmd(flags *globalFlags) *cobra.Command {
	var (
		clicks  int
		title   string
		pretty  bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render the demo and click it",
		Long: `Render the counter demo into an in-memory document, click its
increment button the configured number of times and print the
resulting HTML and runtime counters.

Examples:
  reakt run
  reakt run --clicks 5 --pretty
  reakt run --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("clicks") {
				cfg.Demo.Clicks = clicks
			}
			if cmd.Flags().Changed("title") {
				cfg.Demo.Title = title
			}

			logger := newLogger(cfg, cmd.ErrOrStderr())
			doc := memdom.NewDocument()
			container := doc.Element("div")
			container.SetAttribute("id", "root")

			failures := &demo.Failures{}
			opts := append(runtimeOptions(cfg, logger, prometheus.NewRegistry()),
				reakt.WithErrorHandler(failures.Report))
			r := reakt.New(doc, opts...)
			app := demo.New(cfg.Demo.Title, logger)
			if err := r.Render(app.Root(), container); err != nil {
				return err
			}
			if err := demo.ClickN(container, demo.IncrementID, cfg.Demo.Clicks, failures); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Tree  *memdom.Snapshot `json:"tree"`
					Stats reakt.Stats      `json:"stats"`
				}{container.Snapshot(), r.Stats()})
			}

			for _, c := range container.Children() {
				if err := memdom.WriteHTML(out, c, memdom.HTMLOptions{Pretty: pretty}); err != nil {
					return err
				}
			}
			if !pretty {
				fmt.Fprintln(out)
			}
			s := r.Stats()
			fmt.Fprintf(out, "passes=%d slots=%d effects=%d updates=%d nodes=%d\n",
				s.Passes, s.Slots, s.EffectRuns, s.StateUpdates, s.NodesCreated)
			return nil
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 0, "Number of increment clicks (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "Header text (default from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the tree snapshot and stats as JSON")

	return cmd
}
