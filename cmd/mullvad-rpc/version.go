package main

import (
	"context"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gezibash/mullvad-rpc/internal/cli"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func newVersionCmd(a *app) *cobra.Command {
	var changelog bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client and daemon version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "version", func(ctx context.Context) error {
				daemonVersion, err := a.daemon.GetCurrentVersion(ctx)
				if err != nil {
					return err
				}
				info, err := a.daemon.GetVersionInfo(ctx)
				if err != nil {
					return err
				}

				out := a.output()
				kv := out.KV("version").
					Set("Client", version).
					Set("Commit", commit).
					Set("Built", buildDate).
					Set("Go", runtime.Version()).
					Set("Daemon", daemonVersion)
				supportTone := cli.ToneGood
				if !info.Supported {
					supportTone = cli.ToneBad
				}
				kv.SetStatus("Supported", info.Supported, supportTone)
				if u := info.SuggestedUpgrade; u != nil {
					label := u.Version
					if u.Beta {
						label += " (beta)"
					}
					kv.SetStatus("Upgrade", label, cli.ToneWarn)
					if changelog && u.Changelog != "" {
						notes := u.Changelog
						if out.Format() == cli.FormatText {
							notes = "\n" + cli.Paragraph(notes, 72, 2)
						}
						kv.Set("Changelog", notes)
					}
				}
				return kv.Render()
			})
		},
	}
	cmd.Flags().BoolVar(&changelog, "changelog", false, "include the changelog of a suggested upgrade")
	return cmd
}
