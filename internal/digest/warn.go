//go:build !production

package digest

import "github.com/vvka-141/pqhash/pkg/pqhash"

const warnUnavailableEnabled = true

func warnUnavailable(logger pqhash.Logger) {
	logger.Warn("pqhash: no SHA-256 facility is available (native, subtle and legacy probes all failed); " +
		"queries will be sent without a persisted query digest")
}
