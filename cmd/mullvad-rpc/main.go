package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gezibash/mullvad-rpc/internal/cli"
	"github.com/gezibash/mullvad-rpc/internal/config"
)

// app is shared by every subcommand. daemon is set by the root pre-run hook,
// or directly by tests.
type app struct {
	v      *viper.Viper
	rt     *cli.Runtime
	daemon Daemon
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{v: viper.New(), stdout: os.Stdout, stderr: os.Stderr}
	err := newRootCmd(a).ExecuteContext(ctx)
	// PersistentPostRunE is skipped when a command fails.
	_ = a.close(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mullvad-rpc",
		Short:         "Talk to the local Mullvad VPN daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.daemon != nil {
				return nil
			}
			configFile, _ := cmd.Flags().GetString("config")
			rt, err := cli.NewRuntime(cmd.Context(), a.v, cli.RuntimeOptions{
				ConfigFile: configFile,
				LogWriter:  a.stderr,
			})
			if err != nil {
				return a.fail(cmd, err)
			}
			a.rt = rt
			a.daemon = rt.Client
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close(context.WithoutCancel(cmd.Context()))
		},
	}

	config.BindFlags(rootCmd, a.v)
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json, markdown)")
	_ = a.v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(
		newStatusCmd(a),
		newConnectCmd(a),
		newDisconnectCmd(a),
		newReconnectCmd(a),
		newEventsCmd(a),
		newAccountCmd(a),
		newSettingsCmd(a),
		newCustomListCmd(a),
		newRelaysCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

func (a *app) close(ctx context.Context) error {
	if a.rt == nil {
		return nil
	}
	rt := a.rt
	a.rt = nil
	return rt.Close(ctx)
}

func (a *app) output() *cli.Output {
	return cli.NewOutput(cli.ParseFormat(a.v.GetString("output")), a.stdout)
}

// run executes fn as a named operation. With a live runtime the client is
// connected first and the run is traced; tests with an injected daemon call
// fn directly.
func (a *app) run(cmd *cobra.Command, name string, fn func(ctx context.Context) error) error {
	var err error
	if a.rt == nil {
		err = fn(cmd.Context())
	} else {
		err = cli.RunCommand(cmd.Context(), a.rt, cli.CommandConfig{
			Name:    name,
			Connect: true,
			Run:     fn,
		})
	}
	if err != nil {
		return a.fail(cmd, err)
	}
	return nil
}

// fail renders err in the selected output format and returns it so cobra
// exits non-zero.
func (a *app) fail(cmd *cobra.Command, err error) error {
	out := a.output()
	if out.Format() == cli.FormatText {
		out = cli.NewOutput(cli.FormatText, a.stderr)
	}
	if rerr := out.Error(cmd.Name(), err).Render(); rerr != nil {
		return fmt.Errorf("%w (render: %v)", err, rerr)
	}
	return err
}
