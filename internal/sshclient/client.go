// Package sshclient opens interactive sessions for a ConnectionRecord by
// shelling out to the system ssh binary. It does not implement the SSH
// protocol, so the user's keys, agent and ~/.ssh/config still apply.
//
// Arguments are passed through exec.Command's argv, never a shell.
package sshclient

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/creack/pty"
	"github.com/treykane/genssh/internal/model"
	"github.com/treykane/genssh/internal/util"
)

// Client launches ssh processes. It holds no state and is safe for concurrent use.
type Client struct{}

// New creates a new SSH client.
func New() *Client { return &Client{} }

// EnsureSSHBinary checks that the "ssh" binary is available on the system PATH.
func EnsureSSHBinary() error {
	if _, err := exec.LookPath("ssh"); err != nil {
		return fmt.Errorf("ssh binary not found in PATH")
	}
	return nil
}

// ConnectArgs builds the ssh argument vector for rec. The masked password is
// never part of it; ssh prompts for credentials itself.
//
// Example output: ["-p", "2222", "alice@example.com"]
func (c *Client) ConnectArgs(rec model.ConnectionRecord) ([]string, error) {
	if rec.Host == "" {
		return nil, fmt.Errorf("descriptor has no host")
	}
	if err := util.ValidatePort(rec.Port); err != nil {
		return nil, err
	}
	return []string{"-p", strconv.Itoa(rec.Port), rec.Destination()}, nil
}

// ConnectCommand creates, but does not start, an exec.Cmd for an interactive
// session to rec.
func (c *Client) ConnectCommand(rec model.ConnectionRecord) (*exec.Cmd, error) {
	args, err := c.ConnectArgs(rec)
	if err != nil {
		return nil, err
	}
	return exec.Command("ssh", args...), nil
}

// RunInteractive runs an ssh session for rec inside a pseudo-terminal and
// blocks until it exits. Cancelling ctx kills the ssh process.
func (c *Client) RunInteractive(ctx context.Context, rec model.ConnectionRecord) error {
	cmd, err := c.ConnectCommand(rec)
	if err != nil {
		return err
	}

	f, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start ssh: %w", err)
	}
	defer f.Close()

	// Ends on its own once the PTY is closed.
	go func() {
		_, _ = io.Copy(f, os.Stdin)
	}()

	stop := context.AfterFunc(ctx, func() {
		_ = cmd.Process.Kill()
	})
	defer stop()

	_, _ = io.Copy(os.Stdout, f)
	return cmd.Wait()
}
