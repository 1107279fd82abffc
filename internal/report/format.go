package report

import (
	"math"
	"strconv"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders a byte count using the largest power of 1024 not
// exceeding the value, rounded to at most two decimals with trailing zeros
// trimmed: 0 -> "0 Bytes", 1536 -> "1.5 KB".
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 Bytes"
	}
	if n < 0 {
		return "-" + FormatBytes(-n)
	}

	exp := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if exp >= len(byteUnits) {
		exp = len(byteUnits) - 1
	}
	value := float64(n) / math.Pow(1024, float64(exp))
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[exp]
}
