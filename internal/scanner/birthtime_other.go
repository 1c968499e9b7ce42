//go:build !linux && !darwin

package scanner

import (
	"os"
	"time"
)

// creationTime approximates creation with the modification time on
// platforms without a portable birth or status-change timestamp.
func creationTime(_ string, info os.FileInfo) time.Time {
	return info.ModTime()
}
