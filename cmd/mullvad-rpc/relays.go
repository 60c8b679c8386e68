package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gezibash/mullvad-rpc/internal/cli"
)

func newRelaysCmd(a *app) *cobra.Command {
	var (
		country    string
		activeOnly bool
		kind       string
	)
	cmd := &cobra.Command{
		Use:   "relays",
		Short: "List relays known to the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "relays", func(ctx context.Context) error {
				list, err := a.daemon.GetRelayLocations(ctx)
				if err != nil {
					return err
				}
				tbl := a.output().Table("relays", "Hostname", "Country", "City", "Type", "Provider", "Owned", "Active")
				for _, c := range list.Countries {
					if country != "" && !strings.EqualFold(c.Code, country) {
						continue
					}
					for _, city := range c.Cities {
						for _, r := range city.Relays {
							if activeOnly && !r.Active {
								continue
							}
							if kind != "" && r.EndpointType.String() != kind {
								continue
							}
							tbl.AddRow(r.Hostname, c.Name, city.Name, r.EndpointType.String(),
								cli.Truncate(r.Provider, 16), yesNo(r.Owned), yesNo(r.Active))
						}
					}
				}
				return tbl.Render()
			})
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "only relays in this country code")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active relays")
	cmd.Flags().StringVar(&kind, "type", "", "only relays of this type (wireguard, openvpn, bridge)")
	return cmd
}
