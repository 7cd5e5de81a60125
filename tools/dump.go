package tools

import (
	"io"

	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/std/log"
	"github.com/opendaylight/vtn-sub010/std/utils/toolutils"
	"github.com/spf13/cobra"
)

type Dump struct {
	*settings
}

func (t *Dump) String() string {
	return "dump"
}

func (t *Dump) configure(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		GroupID: "codec",
		Use:     "dump CAPTURE",
		Short:   "Print the records of a capture file",
		Args:    cobra.ExactArgs(1),
		Example: `  physdec dump switches.cap`,
		Run:     t.run,
	})
}

func (t *Dump) run(cmd *cobra.Command, args []string) {
	if err := t.exec(cmd.OutOrStdout(), args); err != nil {
		log.Fatal(t, "Dump failed", "err", err)
	}
}

func (t *Dump) exec(out io.Writer, args []string) error {
	if _, err := t.load(); err != nil {
		return err
	}
	wire, err := readInput(args[0])
	if err != nil {
		return err
	}
	stream, err := ipc.ParseStream(wire)
	if err != nil {
		return err
	}

	p := toolutils.StatusPrinter{File: out, Padding: 8}
	p.Print("bytes", len(wire))
	p.Print("records", len(stream))
	stream.Dump(out)
	return nil
}
