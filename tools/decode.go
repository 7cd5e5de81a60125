package tools

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/opendaylight/vtn-sub010/capture"
	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/physical"
	"github.com/opendaylight/vtn-sub010/std/log"
	"github.com/opendaylight/vtn-sub010/std/types/optional"
	"github.com/opendaylight/vtn-sub010/std/utils"
	"github.com/spf13/cobra"
)

type Decode struct {
	*settings
	op        string
	target    string
	show      bool
	fromStore bool
}

func (t *Decode) String() string {
	return "decode"
}

func (t *Decode) configure(root *cobra.Command) {
	cmd := &cobra.Command{
		GroupID: "codec",
		Use:     "decode KIND CAPTURE",
		Short:   "Decode a captured response stream to JSON",
		Long: `Decode a captured response stream to JSON.

CAPTURE is a capture file ("-" for stdin), or a capture id with --from-store.`,
		Args: cobra.ExactArgs(2),
		Example: `  physdec decode switch switches.cap --op detail
  physdec decode port port.cap --show --target running
  physdec decode dataflow dataflow/0123456789abcdef --from-store`,
		Run: t.run,
	}
	cmd.Flags().StringVar(&t.op, "op", "", "Operation: normal, count, detail (default normal)")
	cmd.Flags().StringVar(&t.target, "target", "", "Database: state, running, startup (default state)")
	cmd.Flags().BoolVar(&t.show, "show", false, "Decode a single instance instead of a list")
	cmd.Flags().BoolVar(&t.fromStore, "from-store", false, "Read the capture from the configured store")
	root.AddCommand(cmd)
}

func (t *Decode) run(cmd *cobra.Command, args []string) {
	if err := t.exec(cmd.OutOrStdout(), args); err != nil {
		log.Fatal(t, "Decode failed", "err", err)
	}
}

func (t *Decode) context() (physical.Context, error) {
	var op optional.Optional[physical.Operation]
	var target optional.Optional[physical.Target]
	if t.op != "" {
		o, err := physical.ParseOperation(t.op)
		if err != nil {
			return physical.Context{}, err
		}
		op.Set(o)
	}
	if t.target != "" {
		tg, err := physical.ParseTarget(t.target)
		if err != nil {
			return physical.Context{}, err
		}
		target.Set(tg)
	}
	p := utils.If(t.show, physical.Show, physical.List)
	return physical.NewContext(op, p, target), nil
}

func (t *Decode) exec(out io.Writer, args []string) error {
	cfg, err := t.load()
	if err != nil {
		return err
	}
	kind, err := physical.ParseKind(args[0])
	if err != nil {
		return err
	}
	ctx, err := t.context()
	if err != nil {
		return err
	}

	var stream ipc.Stream
	if t.fromStore {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		if stream, err = capture.GetStream(store, args[1]); err != nil {
			return err
		}
	} else if stream, err = readStream(args[1]); err != nil {
		return err
	}

	log.Debug(t, "Decoding", "kind", kind, "records", len(stream), "context", ctx)
	obj, err := physical.NewDecoder(cfg.Vendors(), log.Default()).Decode(kind, stream, ctx)
	if err != nil {
		return err
	}
	text, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(text))
	return err
}
