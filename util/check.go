// Package util provides po catalog format checks.
package util

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// CheckPoFile parses a po catalog and verifies that rebuilding it
// reproduces the file byte-for-byte. Catalogs not in normalized form
// (extra blank lines, missing trailing newline) still round-trip with the
// same entries and decoded values, but the next rewrite will normalize
// them; such files are reported and counted as not normalized.
func CheckPoFile(poFile string) (normalized bool, err error) {
	data, err := os.ReadFile(poFile)
	if err != nil {
		return false, fmt.Errorf("fail to read %s: %w", poFile, err)
	}

	entries := ParsePoEntries(data)
	if len(entries) == 0 {
		return false, fmt.Errorf("%s: no entries found", poFile)
	}
	rebuilt := BuildPoContent(entries)
	if !bytes.Equal(data, rebuilt) {
		log.Warnf("%s: %d entries, not in normalized form (a fill will reformat it)",
			poFile, len(entries))
		return false, nil
	}
	log.Infof("%s: %d entries, normalized", poFile, len(entries))
	return true, nil
}
