// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package format converts raw file metadata into the short labels shown in reports.
package format

import (
	"fmt"
	"io/fs"
	"strconv"
)

// POSIX permission bits, as in <sys/stat.h>.
const (
	ModeUserRead   = 0o400
	ModeUserWrite  = 0o200
	ModeUserExec   = 0o100
	ModeGroupRead  = 0o040
	ModeGroupWrite = 0o020
	ModeGroupExec  = 0o010
	ModeOtherRead  = 0o004
	ModeOtherWrite = 0o002
	ModeOtherExec  = 0o001
)

// sizeSuffixes are the SI decimal units walked by FormatSize, smallest first.
var sizeSuffixes = []string{"K", "M", "G", "T", "P", "E", "Z", "Y"} //nolint:gochecknoglobals

const (
	sizeStep = 1000.0
	// roundingBias keeps values just under 10 from printing as "10.0".
	roundingBias = 0.0499
)

// PermissionTriplet renders one actor's read/write/execute bits of mode.
func PermissionTriplet(mode, read, write, exec uint32) string {
	r, w, x := mode&read != 0, mode&write != 0, mode&exec != 0

	switch {
	case !r && !w && !x:
		return "---"
	case r && !w && !x:
		return "r--"
	case !r && w && !x:
		return "-w-"
	case !r && !w && x:
		return "--x"
	case r && !w && x:
		return "r-x"
	case r && w && !x:
		return "rw-"
	case !r && w && x:
		return "-wx"
	default:
		return "rwx"
	}
}

// ParsePermissions returns the 9-character symbolic form of the permission bits in mode,
// owner first. Bits above the low nine are ignored.
func ParsePermissions(mode uint32) string {
	user := PermissionTriplet(mode, ModeUserRead, ModeUserWrite, ModeUserExec)
	group := PermissionTriplet(mode, ModeGroupRead, ModeGroupWrite, ModeGroupExec)
	other := PermissionTriplet(mode, ModeOtherRead, ModeOtherWrite, ModeOtherExec)

	return user + group + other
}

// PermissionsOf is ParsePermissions for a Go file mode.
func PermissionsOf(mode fs.FileMode) string {
	return ParsePermissions(uint32(mode.Perm()))
}

// FormatSize renders a byte count with a 1000-based unit suffix, e.g. "512B", "2.0K", "13.4M".
func FormatSize(size uint64) string {
	if size < sizeStep {
		return strconv.FormatUint(size, 10) + "B"
	}

	return formatScaled(float64(size) / sizeStep)
}

// formatScaled walks the suffix table starting at K. It returns "" once the table is exhausted.
func formatScaled(current float64) string {
	for _, suffix := range sizeSuffixes {
		if current < 10.0 {
			return fmt.Sprintf("%.1f%s", current-roundingBias, suffix)
		}

		if current < sizeStep {
			return fmt.Sprintf("%.1f%s", current, suffix)
		}

		current /= sizeStep
	}

	return ""
}
