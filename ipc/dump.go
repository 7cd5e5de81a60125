package ipc

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human readable listing of the stream, one record per line.
func (s Stream) Dump(w io.Writer) {
	for i, v := range s {
		fmt.Fprintf(w, "[%d] ", i)
		dumpValue(w, v, 0)
	}
}

func dumpValue(w io.Writer, v Value, depth int) {
	st, ok := v.(*Struct)
	if !ok {
		fmt.Fprintf(w, "%s %s\n", v.Kind(), v)
		return
	}

	pad := strings.Repeat("  ", depth+1)
	fmt.Fprintf(w, "struct %s\n", st.Name())
	for _, f := range st.Fields() {
		val := "-"
		if f.Value != nil {
			val = fmt.Sprintf("%s %s", f.Value.Kind(), f.Value)
		}
		fmt.Fprintf(w, "%s%s = %s (%s)\n", pad, f.Name, val, f.Valid)
	}
	for _, in := range st.Inners() {
		fmt.Fprintf(w, "%s%s: ", pad, in.Name)
		dumpValue(w, in.Struct, depth+1)
	}
}
