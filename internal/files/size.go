package files

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/and161185/marketplace/internal/model"
)

// ParseSizeKB converts a human-readable size string ("512 KB", "2.4MB") into
// kilobytes. Anything unparseable contributes 0 rather than failing: the
// aggregate feeds UI rendering that must survive partial backend data.
func ParseSizeKB(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	cut := len(s)
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			cut = i
			break
		}
	}

	value, err := strconv.ParseFloat(s[:cut], 64)
	if err != nil || value < 0 {
		return 0
	}

	switch strings.ToUpper(strings.TrimSpace(s[cut:])) {
	case "KB":
		return value
	case "MB":
		return value * 1024
	default:
		return 0
	}
}

// AggregateSize sums the deliverable sizes and formats the total with two
// decimals, switching to megabytes once the total reaches 1024 KB.
func AggregateSize(fs []model.OrderFile) string {
	var totalKB float64
	for _, f := range fs {
		totalKB += ParseSizeKB(f.Size)
	}

	if totalKB >= 1024 {
		return fmt.Sprintf("%.2f MB", totalKB/1024)
	}
	return fmt.Sprintf("%.2f KB", totalKB)
}
