//go:build darwin

package scanner

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the file's birth time, which macOS exposes directly
// on the stat result, falling back to the status-change time.
func creationTime(_ string, info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		if st.Birthtimespec.Sec != 0 {
			return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
		}
		return time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	}
	return info.ModTime()
}
