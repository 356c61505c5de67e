package mdcache

import (
	"fmt"
	"strings"
)

// stateDigits is the width of the zero-padded time state in stateful keys.
const stateDigits = 8

// StatelessKey returns the key of an entry valid for every time state.
func StatelessKey(fullName string) string { return fullName }

// StatefulKey returns the key of an entry valid for one time state only.
func StatefulKey(fullName string, timeState int) string {
	return fmt.Sprintf("%s%0*d", fullName, stateDigits, timeState)
}

// sameFile reports whether key names fullName at some or no time state.
// The comparison is exact-length: either the whole key equals fullName, or
// fullName is followed by exactly the padded state digits.
func sameFile(key, fullName string) bool {
	if key == fullName {
		return true
	}
	if len(key) != len(fullName)+stateDigits || !strings.HasPrefix(key, fullName) {
		return false
	}
	for _, c := range key[len(fullName):] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
