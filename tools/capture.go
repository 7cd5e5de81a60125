package tools

import (
	"fmt"
	"io"
	"os"

	"github.com/opendaylight/vtn-sub010/capture"
	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/physical"
	"github.com/opendaylight/vtn-sub010/std/log"
	"github.com/spf13/cobra"
)

type Capture struct {
	*settings
	outFile string
}

func (t *Capture) String() string {
	return "capture"
}

func (t *Capture) configure(root *cobra.Command) {
	cmd := &cobra.Command{
		GroupID: "store",
		Use:     "capture",
		Short:   "Manage the capture store",
		Long: `Manage the capture store.

Captures are kept under store_dir from the configuration and are
addressed by KIND/HASH ids.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "put KIND CAPTURE",
		Short:   "Store a capture file and print its id",
		Args:    cobra.ExactArgs(2),
		Example: `  physdec capture put switch switches.cap -c physdec.yml`,
		Run:     t.wrap(t.put),
	})

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Print a stored capture, or write it with --output",
		Args:  cobra.ExactArgs(1),
		Run:   t.wrap(t.get),
	}
	get.Flags().StringVarP(&t.outFile, "output", "o", "", "Write the capture to this file")
	cmd.AddCommand(get)

	cmd.AddCommand(&cobra.Command{
		Use:   "list [KIND]",
		Short: "List stored capture ids",
		Args:  cobra.MaximumNArgs(1),
		Run:   t.wrap(t.list),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm ID",
		Short: "Remove a stored capture",
		Args:  cobra.ExactArgs(1),
		Run:   t.wrap(t.remove),
	})

	root.AddCommand(cmd)
}

type storeFunc func(store capture.Store, out io.Writer, args []string) error

func (t *Capture) wrap(f storeFunc) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := t.exec(f, cmd.OutOrStdout(), args); err != nil {
			log.Fatal(t, "Capture command failed", "cmd", cmd.Name(), "err", err)
		}
	}
}

func (t *Capture) exec(f storeFunc, out io.Writer, args []string) error {
	cfg, err := t.load()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return f(store, out, args)
}

func (t *Capture) put(store capture.Store, out io.Writer, args []string) error {
	kind, err := physical.ParseKind(args[0])
	if err != nil {
		return err
	}
	wire, err := readInput(args[1])
	if err != nil {
		return err
	}
	// reject garbage before it is stored
	if _, err := ipc.ParseStream(wire); err != nil {
		return err
	}
	id, err := store.Put(kind.String(), wire)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, id)
	return err
}

func (t *Capture) get(store capture.Store, out io.Writer, args []string) error {
	stream, err := capture.GetStream(store, args[0])
	if err != nil {
		return err
	}
	if t.outFile != "" {
		return os.WriteFile(t.outFile, ipc.EncodeStream(stream), 0644)
	}
	stream.Dump(out)
	return nil
}

func (t *Capture) list(store capture.Store, out io.Writer, args []string) error {
	kind := ""
	if len(args) > 0 {
		k, err := physical.ParseKind(args[0])
		if err != nil {
			return err
		}
		kind = k.String()
	}
	ids, err := store.List(kind)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}

func (t *Capture) remove(store capture.Store, _ io.Writer, args []string) error {
	wire, err := store.Get(args[0])
	if err != nil {
		return err
	}
	if wire == nil {
		return fmt.Errorf("capture %s not found", args[0])
	}
	return store.Remove(args[0])
}
