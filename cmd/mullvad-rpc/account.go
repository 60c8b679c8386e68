package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gezibash/mullvad-rpc/internal/cli"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

func newAccountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the account and devices",
	}
	cmd.AddCommand(
		newAccountCreateCmd(a),
		newAccountLoginCmd(a),
		newAccountLogoutCmd(a),
		newAccountInfoCmd(a),
		newAccountHistoryCmd(a),
		newAccountVoucherCmd(a),
		newAccountDevicesCmd(a),
		newAccountRevokeCmd(a),
	)
	return cmd
}

func newAccountCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "account.create", func(ctx context.Context) error {
				number, err := a.daemon.CreateNewAccount(ctx)
				if err != nil {
					return err
				}
				return a.output().Result("account-create", "Account created").
					WithTone(cli.ToneGood).
					With("Account", number).
					Render()
			})
		},
	}
}

func newAccountLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <account-number>",
		Short: "Log in to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "account.login", func(ctx context.Context) error {
				if err := a.daemon.LoginAccount(ctx, args[0]); err != nil {
					return err
				}
				return a.output().Result("account-login", "Logged in").
					WithTone(cli.ToneGood).
					With("Account", args[0]).
					Render()
			})
		},
	}
}

func newAccountLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and remove this device from the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "account.logout", func(ctx context.Context) error {
				if err := a.daemon.LogoutAccount(ctx); err != nil {
					return err
				}
				return a.output().Result("account-logout", "Logged out").Render()
			})
		},
	}
}

// currentAccount returns args[0] or the logged in account number.
func (a *app) currentAccount(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	dev, err := a.daemon.GetDevice(ctx)
	if err != nil {
		return "", err
	}
	if dev.Kind != vpn.DeviceLoggedIn {
		return "", fmt.Errorf("device is %s; pass an account number", dev.Kind)
	}
	return dev.AccountNumber, nil
}

func newAccountInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [account-number]",
		Short: "Show device and account expiry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "account.info", func(ctx context.Context) error {
				dev, err := a.daemon.GetDevice(ctx)
				if err != nil {
					return err
				}
				number := dev.AccountNumber
				if len(args) > 0 {
					number = args[0]
				}

				kv := a.output().KV("account")
				tone := cli.ToneWarn
				if dev.Kind == vpn.DeviceLoggedIn {
					tone = cli.ToneGood
				}
				kv.SetStatus("Device State", dev.Kind.String(), tone)
				if dev.Device != nil {
					kv.Set("Device", dev.Device.Name)
					kv.Set("Device ID", dev.Device.ID)
				}
				if number == "" {
					return kv.Render()
				}
				kv.Set("Account", number)

				res, err := a.daemon.GetAccountData(ctx, number)
				if err != nil {
					return err
				}
				if res.Err != nil {
					kv.SetStatus("Lookup Error", res.Err.Kind.String(), cli.ToneBad)
					return kv.Render()
				}
				expiry := res.Data.Expiry
				expTone := cli.ToneGood
				if !expiry.After(time.Now()) {
					expTone = cli.ToneBad
				}
				kv.SetStatus("Expires", formatDate(expiry), expTone)
				return kv.Render()
			})
		},
	}
}

func newAccountHistoryCmd(a *app) *cobra.Command {
	var forget bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the previously used account number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "account.history", func(ctx context.Context) error {
				if forget {
					if err := a.daemon.ClearAccountHistory(ctx); err != nil {
						return err
					}
					return a.output().Result("account-history", "Account history cleared").Render()
				}
				last, err := a.daemon.GetAccountHistory(ctx)
				if err != nil {
					return err
				}
				kv := a.output().KV("account-history")
				if last == nil {
					return kv.Set("Last Account", "none").Render()
				}
				return kv.Set("Last Account", *last).Render()
			})
		},
	}
	cmd.Flags().BoolVar(&forget, "clear", false, "forget the stored account number")
	return cmd
}

func newAccountVoucherCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "voucher <code>",
		Short: "Redeem a voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "account.voucher", func(ctx context.Context) error {
				res, err := a.daemon.SubmitVoucher(ctx, args[0])
				if err != nil {
					return err
				}
				if res.Kind != vpn.VoucherSuccess {
					return fmt.Errorf("voucher rejected: %s", res.Kind)
				}
				added := time.Duration(res.SecondsAdded) * time.Second
				return a.output().Result("account-voucher", "Voucher redeemed").
					WithTone(cli.ToneGood).
					With("Days Added", int(added.Hours()/24)).
					With("New Expiry", formatDate(res.NewExpiry)).
					Render()
			})
		},
	}
}

func newAccountDevicesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "devices [account-number]",
		Short: "List devices on the account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "account.devices", func(ctx context.Context) error {
				number, err := a.currentAccount(ctx, args)
				if err != nil {
					return err
				}
				devices, err := a.daemon.ListDevices(ctx, number)
				if err != nil {
					return err
				}
				tbl := a.output().Table("devices", "Name", "ID", "Created")
				for _, d := range devices {
					tbl.AddRow(d.Name, d.ID, formatDate(d.Created))
				}
				return tbl.Render()
			})
		},
	}
}

func newAccountRevokeCmd(a *app) *cobra.Command {
	var account string
	cmd := &cobra.Command{
		Use:   "revoke <device-id>",
		Short: "Remove a device from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "account.revoke", func(ctx context.Context) error {
				var accountArgs []string
				if account != "" {
					accountArgs = []string{account}
				}
				number, err := a.currentAccount(ctx, accountArgs)
				if err != nil {
					return err
				}
				if args[0] == "" {
					return errors.New("device id required")
				}
				if err := a.daemon.RemoveDevice(ctx, vpn.DeviceRemoval{AccountNumber: number, DeviceID: args[0]}); err != nil {
					return err
				}
				return a.output().Result("account-revoke", "Device removed").With("Device ID", args[0]).Render()
			})
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "account number (default: logged in account)")
	return cmd
}
