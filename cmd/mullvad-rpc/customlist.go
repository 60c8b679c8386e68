package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

func newCustomListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "custom-list",
		Aliases: []string{"lists"},
		Short:   "Manage custom relay lists",
	}
	cmd.AddCommand(newCustomListListCmd(a), newCustomListCreateCmd(a), newCustomListDeleteCmd(a))
	return cmd
}

func newCustomListListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "custom-list.list", func(ctx context.Context) error {
				s, err := a.daemon.GetSettings(ctx)
				if err != nil {
					return err
				}
				tbl := a.output().Table("custom-lists", "Name", "ID", "Locations")
				for _, l := range s.CustomLists {
					locs := make([]string, 0, len(l.Locations))
					for _, loc := range l.Locations {
						locs = append(locs, geoString(loc))
					}
					tbl.AddRow(l.Name, l.ID, strings.Join(locs, " "))
				}
				return tbl.Render()
			})
		},
	}
}

func newCustomListCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> [location...]",
		Short: "Create a custom list",
		Long:  "Locations are country, country-city or country-city-hostname codes, e.g. se, se-got or se-got-wg-001.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locations := make([]vpn.GeographicLocation, 0, len(args)-1)
			for _, arg := range args[1:] {
				locations = append(locations, parseGeo(arg))
			}
			return a.run(cmd, "custom-list.create", func(ctx context.Context) error {
				id, err := a.daemon.CreateCustomList(ctx, args[0], locations)
				if err != nil {
					return err
				}
				return a.output().Result("custom-list", "Created "+args[0]).With("ID", id).Render()
			})
		},
	}
}

func newCustomListDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "custom-list.delete", func(ctx context.Context) error {
				if err := a.daemon.DeleteCustomList(ctx, args[0]); err != nil {
					return err
				}
				return a.output().Result("custom-list", "Deleted").With("ID", args[0]).Render()
			})
		},
	}
}

// parseGeo splits "se-got-wg-001" into country, city and the full hostname.
func parseGeo(s string) vpn.GeographicLocation {
	parts := strings.SplitN(s, "-", 3)
	loc := vpn.GeographicLocation{Country: parts[0]}
	if len(parts) > 1 {
		loc.City = parts[1]
	}
	if len(parts) > 2 {
		loc.Hostname = s
	}
	return loc
}

func geoString(l vpn.GeographicLocation) string {
	switch {
	case l.Hostname != "":
		return l.Hostname
	case l.City != "":
		return l.Country + "-" + l.City
	default:
		return l.Country
	}
}
