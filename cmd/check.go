package cmd

import (
	"path/filepath"

	"github.com/l10n-tools/po-fill-helper/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type checkCommand struct {
	cmd *cobra.Command
}

func (v *checkCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "check <XX.po>...",
		Short: "Check that XX.po files parse and are in normalized form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	return v.cmd
}

func (v checkCommand) Execute(args []string) error {
	if len(args) == 0 {
		return NewErrorWithUsage("no argument for check command")
	}
	failed := 0
	for _, arg := range args {
		poFile := arg
		if !util.IsFile(poFile) && filepath.Ext(poFile) == "" {
			// Allow bare language codes, e.g. "check fr".
			poFile = filepath.Join(util.ResolvePoDir(), arg+".po")
		}
		if _, err := util.CheckPoFile(poFile); err != nil {
			log.Errorf("%s", err)
			failed++
		}
	}
	if failed > 0 {
		return NewStandardErrorF("fail to check %d po files", failed)
	}
	return nil
}

var checkCmd = checkCommand{}

func init() {
	rootCmd.AddCommand(checkCmd.Command())
}
