package convert

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

var deviceStateKinds = map[pb.DeviceStateKind]vpn.DeviceStateKind{
	pb.DeviceStateKind_LOGGED_IN:  vpn.DeviceLoggedIn,
	pb.DeviceStateKind_LOGGED_OUT: vpn.DeviceLoggedOut,
	pb.DeviceStateKind_REVOKED:    vpn.DeviceRevoked,
}

var deviceEventCauses = map[pb.DeviceEventCause]vpn.DeviceEventCause{
	pb.DeviceEventCause_LOGGED_IN:   vpn.DeviceEventLoggedIn,
	pb.DeviceEventCause_LOGGED_OUT:  vpn.DeviceEventLoggedOut,
	pb.DeviceEventCause_REVOKED:     vpn.DeviceEventRevoked,
	pb.DeviceEventCause_UPDATED:     vpn.DeviceEventUpdated,
	pb.DeviceEventCause_ROTATED_KEY: vpn.DeviceEventRotatedKey,
}

func timestamp(field string, ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, missing(field)
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, invalid(field, "%v", err)
	}
	return ts.AsTime(), nil
}

// AccountDataFromWire converts account data.
func AccountDataFromWire(a *pb.AccountData) (vpn.AccountData, error) {
	if a == nil {
		return vpn.AccountData{}, missing("account_data")
	}
	expiry, err := timestamp("account_data.expiry", a.Expiry)
	if err != nil {
		return vpn.AccountData{}, err
	}
	return vpn.AccountData{ID: a.Id, Expiry: expiry}, nil
}

// VoucherFromWire converts a successful voucher submission.
func VoucherFromWire(v *pb.VoucherSubmission) (vpn.VoucherResult, error) {
	if v == nil {
		return vpn.VoucherResult{}, missing("voucher_submission")
	}
	expiry, err := timestamp("voucher_submission.new_expiry", v.NewExpiry)
	if err != nil {
		return vpn.VoucherResult{}, err
	}
	return vpn.VoucherResult{Kind: vpn.VoucherSuccess, NewExpiry: expiry, SecondsAdded: v.SecondsAdded}, nil
}

// DeviceFromWire converts a device.
func DeviceFromWire(d *pb.Device) (vpn.Device, error) {
	return device("device", d)
}

func device(field string, d *pb.Device) (vpn.Device, error) {
	if d == nil {
		return vpn.Device{}, missing(field)
	}
	created, err := timestamp(join(field, "created"), d.Created)
	if err != nil {
		return vpn.Device{}, err
	}
	return vpn.Device{ID: d.Id, Name: d.Name, Created: created}, nil
}

// DevicesFromWire converts a device list.
func DevicesFromWire(l *pb.DeviceList) ([]vpn.Device, error) {
	if l == nil {
		return nil, missing("device_list")
	}
	return devices("device_list.devices", l.Devices)
}

func devices(field string, ds []*pb.Device) ([]vpn.Device, error) {
	out := make([]vpn.Device, 0, len(ds))
	for _, d := range ds {
		dev, err := device(field, d)
		if err != nil {
			return nil, err
		}
		out = append(out, dev)
	}
	return out, nil
}

// DeviceStateFromWire converts the device login state.
func DeviceStateFromWire(s *pb.DeviceState) (vpn.DeviceState, error) {
	return deviceState("device_state", s)
}

func deviceState(field string, s *pb.DeviceState) (vpn.DeviceState, error) {
	if s == nil {
		return vpn.DeviceState{}, missing(field)
	}
	kind, err := enum(join(field, "state"), deviceStateKinds, s.State)
	if err != nil {
		return vpn.DeviceState{}, err
	}
	out := vpn.DeviceState{Kind: kind}
	if kind != vpn.DeviceLoggedIn {
		return out, nil
	}
	if s.Device == nil {
		return vpn.DeviceState{}, missing(join(field, "device"))
	}
	out.AccountNumber = s.Device.AccountNumber
	if s.Device.Device != nil {
		d, err := device(join(field, "device.device"), s.Device.Device)
		if err != nil {
			return vpn.DeviceState{}, err
		}
		out.Device = &d
	}
	return out, nil
}

func deviceEvent(field string, e *pb.DeviceEvent) (vpn.DeviceEvent, error) {
	if e == nil {
		return vpn.DeviceEvent{}, missing(field)
	}
	cause, err := enum(join(field, "cause"), deviceEventCauses, e.Cause)
	if err != nil {
		return vpn.DeviceEvent{}, err
	}
	state, err := deviceState(join(field, "new_state"), e.NewState)
	if err != nil {
		return vpn.DeviceEvent{}, err
	}
	return vpn.DeviceEvent{Cause: cause, State: state}, nil
}

// DeviceRemovalToWire converts a device removal request.
func DeviceRemovalToWire(r vpn.DeviceRemoval) (*pb.DeviceRemoval, error) {
	if r.AccountNumber == "" {
		return nil, invalidInput("device_removal.account_number", "missing")
	}
	if r.DeviceID == "" {
		return nil, invalidInput("device_removal.device_id", "missing")
	}
	return &pb.DeviceRemoval{AccountNumber: r.AccountNumber, DeviceId: r.DeviceID}, nil
}

// AppVersionInfoFromWire converts version information.
func AppVersionInfoFromWire(v *pb.AppVersionInfo) (vpn.AppVersionInfo, error) {
	if v == nil {
		return vpn.AppVersionInfo{}, missing("app_version_info")
	}
	out := vpn.AppVersionInfo{Supported: v.Supported}
	if u := v.SuggestedUpgrade; u != nil {
		out.SuggestedUpgrade = &vpn.SuggestedUpgrade{Version: u.Version, Changelog: u.Changelog, Beta: u.Beta}
	}
	return out, nil
}
