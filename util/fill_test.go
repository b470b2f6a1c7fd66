package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/l10n-tools/po-fill-helper/config"
)

func TestFillEntryExactFill(t *testing.T) {
	entries := ParsePoEntries([]byte(`msgid "Warning"
msgstr ""
`))
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	table := map[string]string{"Warning": "Avertissement"}
	if !FillEntry(entries[0], table) {
		t.Fatal("expected entry to be filled")
	}
	if got := entries[0].MsgStr(); got != "Avertissement" {
		t.Errorf("got MsgStr=%q, want %q", got, "Avertissement")
	}
	if len(entries[0].MsgStrLines) != 1 || entries[0].MsgStrLines[0] != `msgstr "Avertissement"` {
		t.Errorf("got raw msgstr lines %v", entries[0].MsgStrLines)
	}
}

func TestFillEntryConservativeOverwrite(t *testing.T) {
	entries := ParsePoEntries([]byte(`msgid "Retry"
msgstr "Already Translated"
`))
	table := map[string]string{"Retry": "Réessayer"}
	if FillEntry(entries[0], table) {
		t.Fatal("expected entry not to be filled")
	}
	if got := entries[0].MsgStr(); got != "Already Translated" {
		t.Errorf("got MsgStr=%q, want %q", got, "Already Translated")
	}
}

func TestFillEntryMsgidNotInTable(t *testing.T) {
	entries := ParsePoEntries([]byte(`msgid "Unknown"
msgstr ""
`))
	if FillEntry(entries[0], map[string]string{"Warning": "Avertissement"}) {
		t.Fatal("expected entry not to be filled")
	}
	if entries[0].MsgStr() != "" {
		t.Errorf("msgstr changed: %v", entries[0].MsgStrLines)
	}
}

func TestFillEntryMultiLineMsgid(t *testing.T) {
	entries := ParsePoEntries([]byte(`msgid ""
"Part one "
"part two"
msgstr ""
`))
	table := map[string]string{"Part one part two": "translated"}
	if !FillEntry(entries[0], table) {
		t.Fatal("expected multi-line msgid entry to be filled")
	}
	if got := entries[0].MsgStr(); got != "translated" {
		t.Errorf("got MsgStr=%q", got)
	}
}

func TestFillEntrySkipsPlural(t *testing.T) {
	entries := ParsePoEntries([]byte(`msgid "One"
msgid_plural "Many"
msgstr[0] ""
msgstr[1] ""
`))
	table := map[string]string{"One": "Un"}
	if FillEntry(entries[0], table) {
		t.Fatal("expected plural entry not to be filled")
	}
}

func TestFillEntryEscapedMsgidKey(t *testing.T) {
	// Table keys are logical strings, so an escaped quote in the catalog
	// must match an unescaped key.
	entries := ParsePoEntries([]byte(`msgid "Delete \"all\"?"
msgstr ""
`))
	table := map[string]string{`Delete "all"?`: `Supprimer « tout » ?`}
	if !FillEntry(entries[0], table) {
		t.Fatal("expected entry to be filled")
	}
}

const fillPoContent = `# French catalog
msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

#: src/toast.rs:10
msgid "Warning"
msgstr ""

msgid "Retry"
msgstr "Réessayer déjà"

msgid "Unknown string"
msgstr ""
`

const fillPoExpected = `# French catalog
msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

#: src/toast.rs:10
msgid "Warning"
msgstr "Avertissement"

msgid "Retry"
msgstr "Réessayer déjà"

msgid "Unknown string"
msgstr ""
`

func TestFillPoFile(t *testing.T) {
	poFile := filepath.Join(t.TempDir(), "fr.po")
	if err := os.WriteFile(poFile, []byte(fillPoContent), 0644); err != nil {
		t.Fatal(err)
	}
	table := map[string]string{
		"Warning": "Avertissement",
		"Retry":   "Réessayer",
	}

	filled, err := FillPoFile(poFile, table)
	if err != nil {
		t.Fatalf("FillPoFile failed: %v", err)
	}
	if filled != 1 {
		t.Errorf("expected 1 filled entry, got %d", filled)
	}
	data, err := os.ReadFile(poFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte(fillPoExpected)) {
		t.Errorf("rewritten catalog mismatch:\ngot:\n%s\nwant:\n%s", data, fillPoExpected)
	}

	// Second run is idempotent: nothing left to fill, file untouched.
	filled, err = FillPoFile(poFile, table)
	if err != nil {
		t.Fatalf("second FillPoFile failed: %v", err)
	}
	if filled != 0 {
		t.Errorf("expected 0 filled entries on second run, got %d", filled)
	}
	data, err = os.ReadFile(poFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte(fillPoExpected)) {
		t.Error("catalog changed on second run")
	}
}

func TestFillPoFileNothingToFill(t *testing.T) {
	poFile := filepath.Join(t.TempDir(), "de.po")
	content := `msgid "Warning"
msgstr "Warnung"
`
	if err := os.WriteFile(poFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	filled, err := FillPoFile(poFile, map[string]string{"Warning": "Warnung"})
	if err != nil {
		t.Fatalf("FillPoFile failed: %v", err)
	}
	if filled != 0 {
		t.Errorf("expected 0 filled entries, got %d", filled)
	}
	data, _ := os.ReadFile(poFile)
	if string(data) != content {
		t.Error("catalog with nothing to fill was rewritten")
	}
}

func TestRunFillSkipsMissingFileAndLanguage(t *testing.T) {
	poDir := t.TempDir()
	poFile := filepath.Join(poDir, "fr.po")
	if err := os.WriteFile(poFile, []byte(fillPoContent), 0644); err != nil {
		t.Fatal(err)
	}
	table := &config.TranslationTable{
		Languages: map[string]map[string]string{
			"fr": {"Warning": "Avertissement"},
			"de": {"Warning": "Warnung"},
		},
	}

	// de.po does not exist, "xx" is not in the table; neither is fatal.
	if err := RunFill(table, poDir, []string{"fr", "de", "xx"}); err != nil {
		t.Fatalf("RunFill failed: %v", err)
	}
	data, err := os.ReadFile(poFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte(fillPoExpected)) {
		t.Errorf("fr.po mismatch after RunFill:\n%s", data)
	}
}

func TestRunFillAllTableLanguages(t *testing.T) {
	poDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(poDir, "fr.po"), []byte(fillPoContent), 0644); err != nil {
		t.Fatal(err)
	}
	table := &config.TranslationTable{
		Languages: map[string]map[string]string{
			"fr": {"Warning": "Avertissement"},
			"de": {"Warning": "Warnung"},
		},
	}
	// No explicit languages: every language of the table, missing files skipped.
	if err := RunFill(table, poDir, nil); err != nil {
		t.Fatalf("RunFill failed: %v", err)
	}
}
