package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gezibash/mullvad-rpc/internal/observability"
)

// CommandConfig describes one command run against a Runtime.
type CommandConfig struct {
	// Name identifies the operation in spans, metrics and logs.
	Name string

	// Connect connects the daemon client before Run.
	Connect bool

	// Timeout bounds the whole run. Zero means no timeout.
	Timeout time.Duration

	// Run is the command's business logic.
	Run func(ctx context.Context) error
}

// RunCommand executes cfg.Run as a traced operation on rt.
func RunCommand(ctx context.Context, rt *Runtime, cfg CommandConfig) (err error) {
	if cfg.Name == "" {
		return errors.New("command name required")
	}
	if rt == nil {
		return errors.New("runtime required")
	}
	if cfg.Run == nil {
		return errors.New("run function required")
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	op, ctx := observability.StartOperation(ctx, rt.Obs.Metrics, cfg.Name)
	defer func() { op.End(err) }()

	if cfg.Connect {
		if err := rt.Connect(ctx); err != nil {
			return err
		}
	}
	if err := cfg.Run(ctx); err != nil {
		return fmt.Errorf("%s: %w", cfg.Name, err)
	}
	return nil
}
