// Package util provides the fill operation on po catalogs.
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/l10n-tools/po-fill-helper/config"
	"github.com/l10n-tools/po-fill-helper/flag"
	log "github.com/sirupsen/logrus"
)

// FillResult holds the outcome for one language of a fill run.
type FillResult struct {
	Lang    string
	PoFile  string
	Filled  int
	Skipped bool
}

// FillEntry fills the entry's translation from table when its decoded
// msgstr is empty and table has the decoded msgid, replacing the msgstr
// lines with a single-line encoding of the translated string. A non-empty
// translation is never overwritten, and plural entries are never touched.
func FillEntry(entry *PoEntry, table map[string]string) bool {
	if len(entry.MsgIDLines) == 0 || entry.HasPlural() {
		return false
	}
	if entry.MsgStr() != "" {
		return false
	}
	value, ok := table[entry.MsgID()]
	if !ok {
		return false
	}
	entry.MsgStrLines = EncodePoField("msgstr", value)
	return true
}

// FillPoFile fills empty translations in poFile from table and rewrites
// the file when at least one entry was filled. A catalog with nothing to
// fill is left byte-untouched. Returns the number of filled entries.
func FillPoFile(poFile string, table map[string]string) (int, error) {
	data, err := os.ReadFile(poFile)
	if err != nil {
		return 0, fmt.Errorf("fail to read %s: %w", poFile, err)
	}

	entries := ParsePoEntries(data)
	filled := 0
	for _, e := range entries {
		if FillEntry(e, table) {
			log.Debugf("fill %s: %q", poFile, e.MsgID())
			filled++
		}
	}
	if filled == 0 {
		return 0, nil
	}

	if flag.DryRun() {
		log.Infof("dryrun: will not rewrite %s (%d entries to fill)", poFile, filled)
		return filled, nil
	}
	if err := WriteFileAtomic(poFile, BuildPoContent(entries)); err != nil {
		return 0, fmt.Errorf("fail to rewrite %s: %w", poFile, err)
	}
	return filled, nil
}

// RunFill fills the catalogs under poDir for the given language codes, or
// for every language of table when langs is empty. Each catalog is read,
// filled and rewritten before the next one is processed. A missing catalog
// or a language absent from the table is reported as skipped; an I/O
// failure on one catalog is reported and the run continues with the
// remaining languages, returning an error at the end.
func RunFill(table *config.TranslationTable, poDir string, langs []string) error {
	if len(langs) == 0 {
		langs = table.LangCodes()
	}

	var (
		results []FillResult
		failed  int
	)
	for _, lang := range langs {
		poFile := filepath.Join(poDir, lang+".po")
		trans, ok := table.Lang(lang)
		if !ok {
			log.Warnf("SKIP: no translations defined for %q", lang)
			results = append(results, FillResult{Lang: lang, PoFile: poFile, Skipped: true})
			continue
		}
		if !IsFile(poFile) {
			log.Warnf("SKIP: %s not found", poFile)
			results = append(results, FillResult{Lang: lang, PoFile: poFile, Skipped: true})
			continue
		}
		filled, err := FillPoFile(poFile, trans)
		if err != nil {
			log.Errorf("fail to fill %s: %s", lang, err)
			failed++
			continue
		}
		results = append(results, FillResult{Lang: lang, PoFile: poFile, Filled: filled})
	}

	ShowFillResults(results)
	if failed > 0 {
		return fmt.Errorf("fail to fill %d of %d po files", failed, len(langs))
	}
	return nil
}
