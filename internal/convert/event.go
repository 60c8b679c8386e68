package convert

import (
	pb "github.com/gezibash/mullvad-rpc/api/management/v1"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

var upgradeErrorKinds = map[pb.AppUpgradeErrorKind]vpn.UpgradeErrorKind{
	pb.AppUpgradeErrorKind_GENERAL_ERROR:       vpn.UpgradeGeneralError,
	pb.AppUpgradeErrorKind_DOWNLOAD_FAILED:     vpn.UpgradeDownloadFailed,
	pb.AppUpgradeErrorKind_VERIFICATION_FAILED: vpn.UpgradeVerificationFailed,
}

// DaemonEventFromWire converts one message of the daemon event feed.
func DaemonEventFromWire(e *pb.DaemonEvent) (vpn.DaemonEvent, error) {
	if e == nil {
		return nil, missing("daemon_event")
	}
	switch {
	case e.TunnelState != nil:
		s, err := tunnelState("daemon_event.tunnel_state", e.TunnelState)
		if err != nil {
			return nil, err
		}
		return vpn.TunnelStateEvent{State: s}, nil
	case e.Settings != nil:
		s, err := settings("daemon_event.settings", e.Settings)
		if err != nil {
			return nil, err
		}
		return vpn.SettingsEvent{Settings: s}, nil
	case e.RelayList != nil:
		l, err := relayList("daemon_event.relay_list", e.RelayList)
		if err != nil {
			return nil, err
		}
		return vpn.RelayListEvent{RelayList: l}, nil
	case e.VersionInfo != nil:
		v, err := AppVersionInfoFromWire(e.VersionInfo)
		if err != nil {
			return nil, err
		}
		return vpn.VersionInfoEvent{Info: v}, nil
	case e.Device != nil:
		d, err := deviceEvent("daemon_event.device", e.Device)
		if err != nil {
			return nil, err
		}
		return vpn.DeviceStateEvent{Event: d}, nil
	case e.RemoveDevice != nil:
		ds, err := devices("daemon_event.remove_device.new_device_list", e.RemoveDevice.NewDeviceList)
		if err != nil {
			return nil, err
		}
		return vpn.DeviceRemovalEvent{AccountNumber: e.RemoveDevice.AccountNumber, Devices: ds}, nil
	case e.NewAccessMethod != nil:
		s, err := accessMethodSetting("daemon_event.new_access_method", e.NewAccessMethod)
		if err != nil {
			return nil, err
		}
		return vpn.NewAccessMethodEvent{Setting: s}, nil
	}
	return nil, invalid("daemon_event", "no event set")
}

// AppUpgradeEventFromWire converts one message of the app upgrade feed.
func AppUpgradeEventFromWire(e *pb.AppUpgradeEvent) (vpn.AppUpgradeEvent, error) {
	if e == nil {
		return nil, missing("app_upgrade_event")
	}
	switch {
	case e.DownloadStarting != nil:
		return vpn.UpgradeDownloadStarting{}, nil
	case e.DownloadProgress != nil:
		p := e.DownloadProgress
		if p.Progress > 100 {
			return nil, invalid("app_upgrade_event.download_progress.progress", "%d exceeds 100", p.Progress)
		}
		out := vpn.UpgradeDownloadProgress{Server: p.Server, Progress: p.Progress}
		if p.TimeLeft != nil {
			if err := p.TimeLeft.CheckValid(); err != nil {
				return nil, invalid("app_upgrade_event.download_progress.time_left", "%v", err)
			}
			d := p.TimeLeft.AsDuration()
			out.TimeLeft = &d
		}
		return out, nil
	case e.UpgradeAborted != nil:
		return vpn.UpgradeAborted{}, nil
	case e.VerifyingInstaller != nil:
		return vpn.UpgradeVerifyingInstaller{}, nil
	case e.VerifiedInstaller != nil:
		return vpn.UpgradeVerifiedInstaller{}, nil
	case e.Error != nil:
		kind, err := enum("app_upgrade_event.error.error", upgradeErrorKinds, e.Error.Error)
		if err != nil {
			return nil, err
		}
		return vpn.UpgradeError{Reason: kind}, nil
	}
	return nil, invalid("app_upgrade_event", "no event set")
}
