package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gezibash/mullvad-rpc/internal/cli"
	"github.com/gezibash/mullvad-rpc/pkg/vpn"
)

// tunnelView flattens a tunnel state into display fields.
type tunnelView struct {
	state    string
	tone     cli.Tone
	relay    string
	endpoint string
	location string
	features []string
	detail   string
}

func (t *tunnelView) Disconnected(s vpn.TunnelDisconnected) {
	t.tone = cli.ToneWarn
	t.location = locationString(s.Location)
	if s.LockedDown {
		t.detail = "traffic blocked"
	}
}

func (t *tunnelView) Connecting(s vpn.TunnelConnecting) {
	t.tone = cli.ToneWarn
	if s.Details != nil {
		t.relayInfo(*s.Details)
	}
	t.features = featureNames(s.Features)
}

func (t *tunnelView) Connected(s vpn.TunnelConnected) {
	t.tone = cli.ToneGood
	t.relayInfo(s.Details)
	t.features = featureNames(s.Features)
}

func (t *tunnelView) Disconnecting(s vpn.TunnelDisconnecting) {
	t.tone = cli.ToneWarn
	t.detail = "then " + s.After.String()
}

func (t *tunnelView) Error(s vpn.TunnelError) {
	t.tone = cli.ToneBad
	t.detail = s.State.Cause.String()
	if !s.State.IsBlocking() {
		t.detail += ", traffic not blocked"
	}
}

func (t *tunnelView) relayInfo(r vpn.RelayInfo) {
	ep := r.Endpoint
	t.endpoint = fmt.Sprintf("%s %s/%s", ep.TunnelType, ep.Address, ep.Protocol)
	t.location = locationString(r.Location)
	if r.Location != nil && r.Location.Hostname != nil {
		t.relay = *r.Location.Hostname
	}
}

func viewTunnel(s vpn.TunnelState) tunnelView {
	v := tunnelView{state: s.Name()}
	s.Accept(&v)
	return v
}

// summary is a one-line description used by the event stream.
func (t tunnelView) summary() string {
	parts := []string{t.state}
	if t.relay != "" {
		parts = append(parts, t.relay)
	}
	if t.location != "" {
		parts = append(parts, "("+t.location+")")
	}
	if t.detail != "" {
		parts = append(parts, "["+t.detail+"]")
	}
	return strings.Join(parts, " ")
}

func locationString(l *vpn.Location) string {
	if l == nil {
		return ""
	}
	if l.City != nil && *l.City != "" {
		return *l.City + ", " + l.Country
	}
	return l.Country
}

func featureNames(fs []vpn.FeatureIndicator) []string {
	names := make([]string, 0, len(fs))
	for _, f := range fs {
		names = append(names, f.String())
	}
	return names
}

// eventView renders daemon events for the event stream.
type eventView struct {
	text string
	data any
}

func (e *eventView) TunnelState(ev vpn.TunnelStateEvent) {
	v := viewTunnel(ev.State)
	e.text = v.summary()
	e.data = map[string]any{
		"state":    v.state,
		"relay":    v.relay,
		"location": v.location,
		"features": v.features,
		"detail":   v.detail,
	}
}

func (e *eventView) Settings(ev vpn.SettingsEvent) {
	e.text = "settings changed"
	e.data = settingsData(ev.Settings)
}

func (e *eventView) RelayList(ev vpn.RelayListEvent) {
	n := ev.RelayList.RelayCount()
	e.text = fmt.Sprintf("relay list updated, %d relays", n)
	e.data = map[string]any{"relays": n, "countries": len(ev.RelayList.Countries)}
}

func (e *eventView) VersionInfo(ev vpn.VersionInfoEvent) {
	e.data = versionData(ev.Info)
	if ev.Info.SuggestedUpgrade != nil {
		e.text = "upgrade available: " + ev.Info.SuggestedUpgrade.Version
		return
	}
	e.text = fmt.Sprintf("supported: %s", yesNo(ev.Info.Supported))
}

func (e *eventView) Device(ev vpn.DeviceStateEvent) {
	st := ev.Event.State
	e.text = st.Kind.String()
	data := map[string]any{"state": st.Kind.String()}
	if st.Device != nil {
		e.text += " as " + st.Device.Name
		data["device"] = st.Device.Name
	}
	e.data = data
}

func (e *eventView) DeviceRemoval(ev vpn.DeviceRemovalEvent) {
	names := make([]string, 0, len(ev.Devices))
	for _, d := range ev.Devices {
		names = append(names, d.Name)
	}
	e.text = fmt.Sprintf("%d devices remain", len(ev.Devices))
	e.data = map[string]any{"devices": names}
}

func (e *eventView) NewAccessMethod(ev vpn.NewAccessMethodEvent) {
	e.text = "using access method " + ev.Setting.Name
	e.data = map[string]any{"id": ev.Setting.ID, "name": ev.Setting.Name}
}

func viewEvent(ev vpn.DaemonEvent) eventView {
	var v eventView
	ev.Accept(&v)
	return v
}

// upgradeView renders app upgrade events.
type upgradeView struct {
	text string
	data any
}

func (u *upgradeView) DownloadStarting(vpn.UpgradeDownloadStarting) { u.text = "download starting" }

func (u *upgradeView) DownloadProgress(p vpn.UpgradeDownloadProgress) {
	u.text = fmt.Sprintf("downloading from %s: %d%%", p.Server, p.Progress)
	data := map[string]any{"server": p.Server, "progress": p.Progress}
	if p.TimeLeft != nil {
		u.text += fmt.Sprintf(", %s left", p.TimeLeft.Round(time.Second))
		data["seconds_left"] = int(p.TimeLeft.Seconds())
	}
	u.data = data
}

func (u *upgradeView) Aborted(vpn.UpgradeAborted) { u.text = "aborted" }

func (u *upgradeView) VerifyingInstaller(vpn.UpgradeVerifyingInstaller) {
	u.text = "verifying installer"
}

func (u *upgradeView) VerifiedInstaller(vpn.UpgradeVerifiedInstaller) {
	u.text = "installer verified"
}

func (u *upgradeView) Error(e vpn.UpgradeError) {
	switch e.Reason {
	case vpn.UpgradeDownloadFailed:
		u.text = "download failed"
	case vpn.UpgradeVerificationFailed:
		u.text = "verification failed"
	default:
		u.text = "upgrade failed"
	}
}

func viewUpgrade(ev vpn.AppUpgradeEvent) upgradeView {
	var v upgradeView
	ev.Accept(&v)
	return v
}

func settingsData(s vpn.Settings) map[string]any {
	return map[string]any{
		"allow_lan":               s.AllowLAN,
		"auto_connect":            s.AutoConnect,
		"block_when_disconnected": s.BlockWhenDisconnected,
		"enable_ipv6":             s.Tunnel.EnableIPv6,
		"dns":                     s.Tunnel.DNS.State.String(),
		"obfuscation":             s.Obfuscation.Selected.String(),
	}
}

func versionData(info vpn.AppVersionInfo) map[string]any {
	data := map[string]any{"supported": info.Supported}
	if u := info.SuggestedUpgrade; u != nil {
		data["suggested_upgrade"] = u.Version
		data["beta"] = u.Beta
	}
	return data
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateOnly)
}
