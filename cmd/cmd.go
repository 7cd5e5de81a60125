package cmd

import (
	"github.com/opendaylight/vtn-sub010/std/utils"
	"github.com/opendaylight/vtn-sub010/tools"
	"github.com/spf13/cobra"
)

var CmdPhysDec = &cobra.Command{
	Use:     "physdec",
	Short:   "Physical network response decoder",
	Long:    `Decode, encode and store typed controller response streams`,
	Version: utils.PhysDecVersion,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdPhysDec.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdPhysDec.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdPhysDec.PersistentFlags().Lookup("help").Hidden = true

	tools.Configure(CmdPhysDec)
}
