package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02")
}

func formatSizeMB(sizeMB float64) string {
	if sizeMB <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(sizeMB * 1024 * 1024))
}

func formatRating(rating int) string {
	if rating == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/10", rating)
}

func truncate(value string, max int) string {
	if max <= 3 || len(value) <= max {
		return value
	}
	return value[:max-3] + "..."
}
