package rpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/internal/convert"
	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

// accountError classifies a failed account call. Errors raised before the call
// reached the daemon are returned as they are.
func accountError(err error, byCode map[codes.Code]vpn.AccountErrorKind) error {
	if rpcerrors.Is(err, rpcerrors.ErrNoConnection) {
		return err
	}
	kind, ok := byCode[status.Code(err)]
	if !ok {
		kind = vpn.AccountCommunication
	}
	return &vpn.AccountError{Kind: kind, Err: err}
}

var loginErrors = map[codes.Code]vpn.AccountErrorKind{
	codes.ResourceExhausted: vpn.AccountTooManyDevices,
	codes.Unauthenticated:   vpn.AccountInvalid,
}

var accountDataErrors = map[codes.Code]vpn.AccountErrorKind{
	codes.Unauthenticated: vpn.AccountInvalid,
}

// CreateNewAccount creates an account, logs in with it and returns its number.
func (c *Client) CreateNewAccount(ctx context.Context) (string, error) {
	resp, err := callEmpty[wrapperspb.StringValue](ctx, c.conn, pb.ManagementService_CreateNewAccount_FullMethodName)
	if err != nil {
		return "", err
	}
	return resp.GetValue(), nil
}

// LoginAccount logs in with accountNumber. Daemon failures are returned as
// *vpn.AccountError.
func (c *Client) LoginAccount(ctx context.Context, accountNumber string) error {
	if _, err := callString[emptypb.Empty](ctx, c.conn, pb.ManagementService_LoginAccount_FullMethodName, accountNumber); err != nil {
		return accountError(err, loginErrors)
	}
	return nil
}

// LogoutAccount logs out of the current account.
func (c *Client) LogoutAccount(ctx context.Context) error {
	_, err := callEmpty[emptypb.Empty](ctx, c.conn, pb.ManagementService_LogoutAccount_FullMethodName)
	return err
}

// GetAccountData looks up an account. A daemon failure is reported in the
// result; the error is reserved for a missing connection or a malformed reply.
func (c *Client) GetAccountData(ctx context.Context, accountNumber string) (vpn.AccountDataResult, error) {
	resp, err := callString[pb.AccountData](ctx, c.conn, pb.ManagementService_GetAccountData_FullMethodName, accountNumber)
	if err != nil {
		aerr := accountError(err, accountDataErrors)
		if ae, ok := aerr.(*vpn.AccountError); ok {
			return vpn.AccountDataResult{Err: ae}, nil
		}
		return vpn.AccountDataResult{}, aerr
	}
	data, err := convert.AccountDataFromWire(resp)
	if err != nil {
		return vpn.AccountDataResult{}, err
	}
	return vpn.AccountDataResult{Data: &data}, nil
}

// GetAccountHistory returns the previously used account number, if any.
func (c *Client) GetAccountHistory(ctx context.Context) (*string, error) {
	resp, err := callEmpty[pb.AccountHistory](ctx, c.conn, pb.ManagementService_GetAccountHistory_FullMethodName)
	if err != nil {
		return nil, err
	}
	if resp.Number == nil {
		return nil, nil
	}
	n := *resp.Number
	return &n, nil
}

// ClearAccountHistory forgets the previously used account number.
func (c *Client) ClearAccountHistory(ctx context.Context) error {
	_, err := callEmpty[emptypb.Empty](ctx, c.conn, pb.ManagementService_ClearAccountHistory_FullMethodName)
	return err
}

// GetWwwAuthToken returns a token for logging in to the website.
func (c *Client) GetWwwAuthToken(ctx context.Context) (string, error) {
	resp, err := callEmpty[wrapperspb.StringValue](ctx, c.conn, pb.ManagementService_GetWwwAuthToken_FullMethodName)
	if err != nil {
		return "", err
	}
	return resp.GetValue(), nil
}

var voucherResults = map[codes.Code]vpn.VoucherResultKind{
	codes.NotFound:          vpn.VoucherInvalid,
	codes.ResourceExhausted: vpn.VoucherAlreadyUsed,
}

// SubmitVoucher redeems a voucher code. Rejections by the daemon are reported
// through the result kind; the error is reserved for a missing connection or a
// malformed reply.
func (c *Client) SubmitVoucher(ctx context.Context, voucher string) (vpn.VoucherResult, error) {
	resp, err := callString[pb.VoucherSubmission](ctx, c.conn, pb.ManagementService_SubmitVoucher_FullMethodName, voucher)
	if err != nil {
		if rpcerrors.Is(err, rpcerrors.ErrNoConnection) {
			return vpn.VoucherResult{}, err
		}
		kind, ok := voucherResults[status.Code(err)]
		if !ok {
			kind = vpn.VoucherError
			c.logger.WithError(err).Warn("submit voucher failed")
		}
		return vpn.VoucherResult{Kind: kind}, nil
	}
	return convert.VoucherFromWire(resp)
}
