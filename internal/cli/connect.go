package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/treykane/genssh/internal/model"
	"github.com/treykane/genssh/internal/record"
	"github.com/treykane/genssh/internal/sshclient"
)

func newConnectCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "connect [file]",
		Short: "Open an ssh session from a written descriptor",
		Long: "Read a descriptor written by genssh (default: the output path) and\n" +
			"run 'ssh -p <port> <user>@<host>'. The masked password is ignored;\n" +
			"ssh asks for credentials itself.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.output
			if len(args) == 1 {
				path = args[0]
			}
			rec, err := record.NewStore(nil).Read(path)
			if err != nil {
				return err
			}
			client := sshclient.New()
			if dryRun {
				sshArgs, err := client.ConnectArgs(rec)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ssh "+strings.Join(sshArgs, " "))
				return nil
			}
			if err := sshclient.EnsureSSHBinary(); err != nil {
				return err
			}
			slog.Info("connecting", "destination", rec.Destination(), "port", rec.Port, "descriptor", path)
			return ConnectOnce(cmd.Context(), rec)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the ssh command instead of running it")
	return cmd
}

// ConnectOnce runs an interactive ssh session for rec until it exits or ctx
// is cancelled.
func ConnectOnce(ctx context.Context, rec model.ConnectionRecord) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return sshclient.New().RunInteractive(ctx, rec)
}
