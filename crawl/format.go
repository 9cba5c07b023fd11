package crawl

import "fmt"

var byteUnits = []string{"KB", "MB", "GB"}

// FormatBytes formats a byte count with one decimal in the largest binary
// unit that keeps the value at or above one.
func FormatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n) / 1024
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", v, byteUnits[unit])
}
