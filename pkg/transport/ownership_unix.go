//go:build unix

package transport

import "golang.org/x/sys/unix"

func statOwner(path string) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return st.Uid, nil
}

func pipeOwner(string) (bool, string, error) {
	return false, "", errPipeUnsupported
}
