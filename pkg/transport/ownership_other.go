//go:build !unix && !windows

package transport

import "errors"

var errOwnershipUnsupported = errors.New("ownership verification is not supported on this platform")

func statOwner(string) (uint32, error) { return 0, errOwnershipUnsupported }

func pipeOwner(string) (bool, string, error) { return false, "", errOwnershipUnsupported }
