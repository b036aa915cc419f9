// ABOUTME: Command runner seam for the external player and volume tools
// ABOUTME: Production implementation shells out; tests inject a fake

package player

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Default timeout for blocking status queries. Transport commands are
// fire-and-forget and never wait on the tool.
const queryTimeout = 5 * time.Second

// Runner executes external tool commands. The controller talks to the
// player and volume binaries exclusively through this interface so tests
// can substitute a fake.
type Runner interface {
	// Output runs a command and returns its trimmed stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// Start launches a command without waiting for it to finish.
	Start(name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Output runs the command and waits for its stdout, bounded by queryTimeout.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return strings.TrimSpace(string(out)), nil
}

// Start launches the command and reaps it in the background.
func (ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	// Reap the child so it never lingers as a zombie
	go func() { _ = cmd.Wait() }()

	return nil
}
