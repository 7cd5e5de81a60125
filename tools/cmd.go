package tools

import "github.com/spf13/cobra"

// Configure adds the decoder tools to a root command.
func Configure(root *cobra.Command) {
	s := &settings{}
	s.bind(root)

	root.AddGroup(&cobra.Group{ID: "codec", Title: "Stream Codec"})
	(&Decode{settings: s}).configure(root)
	(&Encode{settings: s}).configure(root)
	(&Dump{settings: s}).configure(root)

	root.AddGroup(&cobra.Group{ID: "store", Title: "Capture Store"})
	(&Capture{settings: s}).configure(root)
}
