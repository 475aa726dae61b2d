package config

import (
	"fmt"
	"strings"
	"time"
)

var timestampProbe = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// validateTimestampFormat rejects layouts that produce nothing usable in a
// branch or directory name.
func validateTimestampFormat(layout string) error {
	out := timestampProbe.Format(layout)
	if out == layout {
		return fmt.Errorf("invalid timestamp_format %q: contains no time fields", layout)
	}
	if strings.ContainsAny(out, " /\\:~^?*[") {
		return fmt.Errorf("invalid timestamp_format %q: %q is not a valid ref component", layout, out)
	}
	return nil
}
