// Package util provides report utilities.
package util

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ShowFillResults reports the per-language fill counts and the total.
func ShowFillResults(results []FillResult) {
	showHorizontalLine()
	total := 0
	languages := 0
	for _, r := range results {
		if r.Skipped {
			log.Infof("%s: skipped", r.Lang)
			continue
		}
		log.Infof("%s: filled %d translations", r.Lang, r.Filled)
		total += r.Filled
		languages++
	}
	log.Infof("total: %d translations filled across %d languages", total, languages)
}

func showHorizontalLine() {
	fmt.Fprintln(os.Stderr, strings.Repeat("-", 78))
}
