//go:build windows

package transport

import (
	"errors"

	"golang.org/x/sys/windows"
)

func statOwner(string) (uint32, error) {
	return 0, errors.New("unix sockets are not verified on windows")
}

func pipeOwner(path string) (bool, string, error) {
	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT, windows.OWNER_SECURITY_INFORMATION)
	if err != nil {
		return false, "", err
	}
	owner, _, err := sd.Owner()
	if err != nil {
		return false, "", err
	}
	if owner == nil {
		return false, "", errors.New("security descriptor has no owner")
	}
	trusted := owner.IsWellKnown(windows.WinBuiltinAdministratorsSid) ||
		owner.IsWellKnown(windows.WinLocalSystemSid)
	return trusted, owner.String(), nil
}
