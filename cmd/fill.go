package cmd

import (
	"github.com/l10n-tools/po-fill-helper/config"
	"github.com/l10n-tools/po-fill-helper/flag"
	"github.com/l10n-tools/po-fill-helper/util"
	"github.com/spf13/cobra"
)

type fillCommand struct {
	cmd *cobra.Command
}

func (v *fillCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "fill [<lang>...]",
		Short: "Fill empty translations in XX.po files from the translation table",
		Long: `Fill empty translations in XX.po files from the translation table.

Each catalog is parsed, entries whose msgstr is empty and whose msgid is
in the table for that language are filled, and the catalog is rewritten
with all other entries preserved byte-for-byte. With no argument every
language of the table is processed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	return v.cmd
}

func (v fillCommand) Execute(args []string) error {
	table, err := config.LoadTable(flag.TableFile())
	if err != nil {
		return NewStandardErrorF("%v", err)
	}
	if err := util.RunFill(table, util.ResolvePoDir(), args); err != nil {
		return NewStandardErrorF("%v", err)
	}
	return nil
}

var fillCmd = fillCommand{}

func init() {
	rootCmd.AddCommand(fillCmd.Command())
}
