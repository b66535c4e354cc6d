package digest

import "encoding/hex"

// FormatHex renders a raw digest as lowercase hex, two digits per byte in byte order.
func FormatHex(sum []byte) string {
	return hex.EncodeToString(sum)
}
