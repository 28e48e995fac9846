// Package util has small formatting and hashing helpers shared by the CLI
// commands.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// FileChecksum returns the hex-encoded SHA256 digest of the file contents.
func FileChecksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, file); err != nil {
		return "", errors.Wrapf(err, "failed to hash %s", path)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// FormatBytes renders a byte count with a binary unit suffix, one decimal
// place above plain bytes.
func FormatBytes(n int64) string {
	const step = 1024
	if n < step {
		return fmt.Sprintf("%d B", n)
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	value := float64(n)
	unit := 0
	for value /= step; value >= step && unit < len(units)-1; unit++ {
		value /= step
	}

	return fmt.Sprintf("%.1f %s", value, units[unit])
}

// FormatDuration renders a duration rounded to whole seconds using the two
// largest units ("1h30m", "2m30s", "45s").
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}
