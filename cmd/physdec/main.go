package main

import (
	"os"

	"github.com/opendaylight/vtn-sub010/cmd"
)

func main() {
	if err := cmd.CmdPhysDec.Execute(); err != nil {
		os.Exit(1)
	}
}
