//go:build !unix

package modules

import "os"

func writable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}
