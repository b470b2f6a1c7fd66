// Package config provides translation table structures and loading.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// TranslationTable maps a language code to a mapping from exact source
// string (decoded msgid) to exact translated string. Lookup keys are
// logical strings, not raw quoted representations.
type TranslationTable struct {
	Languages map[string]map[string]string `yaml:"languages"`
}

// defaultTable is the builtin translation table, used when no --table file
// is given.
//
//go:embed translations.yaml
var defaultTable []byte

// LangCodes returns the language codes of the table in sorted order.
func (v *TranslationTable) LangCodes() []string {
	codes := make([]string, 0, len(v.Languages))
	for code := range v.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lang returns the source-to-translation mapping for a language code.
func (v *TranslationTable) Lang(code string) (map[string]string, bool) {
	m, ok := v.Languages[code]
	return m, ok
}

// LoadTable loads the translation table from fileName, or the builtin
// table when fileName is empty. Files ending in ".json" are parsed as
// JSON, everything else as YAML.
func LoadTable(fileName string) (*TranslationTable, error) {
	if fileName == "" {
		return parseYAMLTable(defaultTable)
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("fail to read translation table: %w", err)
	}
	var table *TranslationTable
	if strings.EqualFold(filepath.Ext(fileName), ".json") {
		table, err = parseJSONTable(data)
	} else {
		table, err = parseYAMLTable(data)
	}
	if err != nil {
		return nil, fmt.Errorf("fail to parse translation table %s: %w", fileName, err)
	}
	return table, nil
}

func parseYAMLTable(data []byte) (*TranslationTable, error) {
	table := TranslationTable{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	if len(table.Languages) == 0 {
		return nil, fmt.Errorf("no languages defined")
	}
	return &table, nil
}

// parseJSONTable parses a JSON table. The top-level "languages" object is
// used when present, so both the yaml layout and a bare
// {lang: {msgid: msgstr}} object are accepted.
func parseJSONTable(data []byte) (*TranslationTable, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json")
	}
	root := gjson.ParseBytes(data)
	if languages := root.Get("languages"); languages.Exists() {
		root = languages
	}
	if !root.IsObject() {
		return nil, fmt.Errorf("not a json object")
	}
	table := TranslationTable{Languages: map[string]map[string]string{}}
	root.ForEach(func(lang, messages gjson.Result) bool {
		m := map[string]string{}
		messages.ForEach(func(msgid, msgstr gjson.Result) bool {
			m[msgid.String()] = msgstr.String()
			return true
		})
		table.Languages[lang.String()] = m
		return true
	})
	if len(table.Languages) == 0 {
		return nil, fmt.Errorf("no languages defined")
	}
	return &table, nil
}
