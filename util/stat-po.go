// Package util provides po catalog statistics.
package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// PoStats holds entry statistics for one po catalog.
type PoStats struct {
	Translated   int // entries with a non-empty translation, not fuzzy
	Untranslated int // entries with an empty msgstr
	Fillable     int // untranslated entries whose msgid is in the table
	Fuzzy        int // entries carrying the fuzzy flag
	Plural       int // entries with plural forms (opaque to the fill)
	Obsolete     int // obsolete entries (#~ lines)
}

// CountPoStats reads a po catalog and returns its entry statistics.
// The table may be nil, in which case Fillable stays zero.
func CountPoStats(poFile string, table map[string]string) (*PoStats, error) {
	data, err := os.ReadFile(poFile)
	if err != nil {
		return nil, fmt.Errorf("fail to read %s: %w", poFile, err)
	}

	stats := &PoStats{Obsolete: countObsoleteEntries(data)}
	for _, e := range ParsePoEntries(data) {
		msgid := e.MsgID()
		// Skip the header entry (empty msgid).
		if msgid == "" {
			continue
		}
		if e.HasPlural() {
			stats.Plural++
			continue
		}
		if isFuzzy(e) {
			stats.Fuzzy++
			continue
		}
		if e.MsgStr() == "" {
			stats.Untranslated++
			if table != nil {
				if _, ok := table[msgid]; ok {
					stats.Fillable++
				}
			}
			continue
		}
		stats.Translated++
	}
	return stats, nil
}

// isFuzzy returns true if the entry carries the fuzzy flag in a "#,"
// comment line.
func isFuzzy(e *PoEntry) bool {
	for _, line := range e.Comments {
		if !strings.HasPrefix(line, "#,") {
			continue
		}
		for _, f := range strings.Split(strings.TrimPrefix(line, "#,"), ",") {
			if strings.TrimSpace(f) == "fuzzy" {
				return true
			}
		}
	}
	return false
}

// countObsoleteEntries counts obsolete entries, which are kept as "#~"
// comment lines and never filled.
func countObsoleteEntries(data []byte) int {
	count := 0
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "#~ msgid ") {
			count++
		}
	}
	return count
}

// ShowPoStats logs the statistics of one catalog.
func ShowPoStats(poFile string, stats *PoStats) {
	log.Infof("%s: %d translated, %d untranslated (%d fillable), %d fuzzy, %d plural, %d obsolete",
		poFile,
		stats.Translated,
		stats.Untranslated,
		stats.Fillable,
		stats.Fuzzy,
		stats.Plural,
		stats.Obsolete)
}
