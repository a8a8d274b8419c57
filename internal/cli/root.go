// Package cli provides the command-line interface for genssh.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/treykane/genssh/internal/appconfig"
	"github.com/treykane/genssh/internal/events"
	"github.com/treykane/genssh/internal/model"
	"github.com/treykane/genssh/internal/record"
	"github.com/treykane/genssh/internal/security"
	"github.com/treykane/genssh/internal/sshinfo"
	"github.com/treykane/genssh/internal/ui"
	"github.com/treykane/genssh/internal/util"
)

type rootOptions struct {
	output      string
	port        int
	interactive bool
	logLevel    string
	history     bool
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "genssh [ssh_info]",
		Short: "Generate SSH JSON from SSH connection info",
		Long: "Parse an SSH destination such as user@host:port or 'user@host -p port'\n" +
			"and write it as a JSON descriptor. Without ssh_info a placeholder\n" +
			"template is written instead.",
		Example: "  genssh alice@example.com:2222\n" +
			"  genssh 'bob@server -p 22' -o server.json\n" +
			"  genssh bob@server -p 22\n" +
			"  genssh",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.Load()
			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = opts.logLevel
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: appconfig.SlogLevel(level),
			})))
			if err != nil {
				slog.Warn("failed to load config, using defaults", "error", err)
			}
			if !cmd.Flags().Changed("output") {
				opts.output = cfg.Output
			}
			opts.history = cfg.History
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, isTemplate, err := resolveRecord(cmd, opts, args)
			if err != nil {
				return err
			}
			if err := record.NewStore(nil).Write(opts.output, rec); err != nil {
				return err
			}
			slog.Info("descriptor generated", "destination", rec.Destination(), "port", rec.Port)
			if opts.history {
				evt := events.Event{
					Destination: rec.Destination(),
					Port:        rec.Port,
					Output:      opts.output,
					Template:    isTemplate,
				}
				if err := events.NewStore().Append(evt); err != nil {
					slog.Warn("failed to record history", "error", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SSH information saved to %s\n", opts.output)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.output, "output", "o", util.DefaultOutputFile, "output JSON file name")
	pf.StringVar(&opts.logLevel, "log-level", appconfig.LogLevelWarn, "log level: debug, info, warn or error")
	root.Flags().IntVarP(&opts.port, "port", "p", 0, "port, for unquoted 'user@host -p port' input")
	root.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for ssh_info when it is not given")

	root.AddCommand(newConnectCmd(opts))
	root.AddCommand(newHistoryCmd())
	return root
}

// resolveRecord picks the record to write. The bool is true only when the
// placeholder template was chosen, never for parsed input that happens to
// equal it.
func resolveRecord(cmd *cobra.Command, opts *rootOptions, args []string) (model.ConnectionRecord, bool, error) {
	portSet := cmd.Flags().Changed("port")
	// Only a truly empty argument means "no input"; whitespace goes to the parser.
	if len(args) == 1 && args[0] != "" {
		raw := args[0]
		if portSet {
			raw = fmt.Sprintf("%s -p %d", raw, opts.port)
		}
		rec, err := sshinfo.Parse(raw)
		return rec, false, err
	}
	if portSet {
		return model.ConnectionRecord{}, false, fmt.Errorf("--port requires ssh_info")
	}
	if opts.interactive {
		return ui.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return sshinfo.Template(), true, nil
}

// ErrorMessage renders err for the terminal. Paths are redacted unless the
// config turns redaction off.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	slog.Debug("command failed", "detail", security.DebugMessage(err))
	if errors.Is(err, ui.ErrPromptCancelled) {
		return "cancelled"
	}
	redact := appconfig.Default().RedactErrors
	if path, pathErr := appconfig.FilePath(); pathErr == nil && fileExists(path) {
		if cfg, loadErr := appconfig.Load(); loadErr == nil {
			redact = cfg.RedactErrors
		}
	}
	return security.UserMessage(err, redact)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
