package tools

import (
	"io"
	"os"

	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/physical"
	"github.com/opendaylight/vtn-sub010/std/log"
	"github.com/spf13/cobra"
)

type Encode struct {
	*settings
	outFile string
}

func (t *Encode) String() string {
	return "encode"
}

func (t *Encode) configure(root *cobra.Command) {
	cmd := &cobra.Command{
		GroupID: "codec",
		Use:     "encode KIND REQUEST",
		Short:   "Encode a JSON request body to a typed stream",
		Long: `Encode a JSON request body ("-" for stdin) to a typed stream.

Without --output the stream is printed in dump form.`,
		Args: cobra.ExactArgs(2),
		Example: `  physdec encode switch request.json -o request.cap
  echo '{"dataflow":{...}}' | physdec encode dataflow -`,
		Run: t.run,
	}
	cmd.Flags().StringVarP(&t.outFile, "output", "o", "", "Write the capture to this file")
	root.AddCommand(cmd)
}

func (t *Encode) run(cmd *cobra.Command, args []string) {
	if err := t.exec(cmd.OutOrStdout(), args); err != nil {
		log.Fatal(t, "Encode failed", "err", err)
	}
}

func (t *Encode) exec(out io.Writer, args []string) error {
	cfg, err := t.load()
	if err != nil {
		return err
	}
	kind, err := physical.ParseKind(args[0])
	if err != nil {
		return err
	}
	body, err := readInput(args[1])
	if err != nil {
		return err
	}

	stream, err := physical.NewEncoder(cfg.Vendors()).Encode(kind, body)
	if err != nil {
		return err
	}
	if t.outFile == "" {
		stream.Dump(out)
		return nil
	}
	log.Debug(t, "Writing capture", "file", t.outFile, "records", len(stream))
	return os.WriteFile(t.outFile, ipc.EncodeStream(stream), 0644)
}
