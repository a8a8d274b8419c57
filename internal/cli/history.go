package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/treykane/genssh/internal/events"
)

func newHistoryCmd() *cobra.Command {
	var (
		jsonOut     bool
		limit       int
		destination string
		since       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously generated descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := events.Query{Destination: destination, Limit: limit}
			if since > 0 {
				q.Since = time.Now().Add(-since)
			}
			evts, err := events.NewStore().Read(q)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOut {
				if evts == nil {
					evts = []events.Event{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(evts)
			}
			fmt.Fprintf(out, "%-20s %-32s %-6s %s\n", "TIME", "DESTINATION", "PORT", "OUTPUT")
			for _, e := range evts {
				dest := e.Destination
				if e.Template {
					dest += " (template)"
				}
				fmt.Fprintf(out, "%-20s %-32s %-6d %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"), dest, e.Port, e.Output)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output JSON")
	cmd.Flags().IntVar(&limit, "limit", 20, "show at most this many entries (0 for all)")
	cmd.Flags().StringVar(&destination, "destination", "", "only entries for this user@host")
	cmd.Flags().DurationVar(&since, "since", 0, "only entries newer than this duration, e.g. 24h")
	return cmd
}
