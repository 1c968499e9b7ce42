//go:build linux

package scanner

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// creationTime returns the file's birth time when the kernel and filesystem
// expose it via statx, falling back to the status-change time. It never
// fails: the worst case is the stat result's modification time.
func creationTime(path string, info os.FileInfo) time.Time {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err == nil && stx.Mask&unix.STATX_BTIME != 0 && stx.Btime.Sec != 0 {
		return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
