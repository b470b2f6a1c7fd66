package cmd

import (
	"path/filepath"

	"github.com/l10n-tools/po-fill-helper/config"
	"github.com/l10n-tools/po-fill-helper/flag"
	"github.com/l10n-tools/po-fill-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat [<lang>...]",
		Short: "Show translation statistics of XX.po files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	return v.cmd
}

func (v statCommand) Execute(args []string) error {
	table, err := config.LoadTable(flag.TableFile())
	if err != nil {
		return NewStandardErrorF("%v", err)
	}

	langs := args
	if len(langs) == 0 {
		langs = table.LangCodes()
	}
	poDir := util.ResolvePoDir()
	failed := 0
	for _, lang := range langs {
		poFile := filepath.Join(poDir, lang+".po")
		if !util.IsFile(poFile) {
			log.Warnf("SKIP: %s not found", poFile)
			continue
		}
		trans, _ := table.Lang(lang)
		stats, err := util.CountPoStats(poFile, trans)
		if err != nil {
			log.Errorf("%s", err)
			failed++
			continue
		}
		util.ShowPoStats(poFile, stats)
	}
	if failed > 0 {
		return NewStandardErrorF("fail to stat %d po files", failed)
	}
	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
