package main

import (
	"github.com/example/go-pinyin-tones/internal/textfile"
	"github.com/spf13/cobra"
)

func newTextCmd() *cobra.Command {
	var echo bool

	cmd := &cobra.Command{
		Use:   "text INPUT OUTPUT",
		Short: "Convert a plain-text file",
		Long: "Reads INPUT, converts every numbered-tone syllable to tone marks and writes\n" +
			"the result to OUTPUT. Use '-' for stdin or stdout.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			opts := textfile.Options{
				Input:     args[0],
				Output:    args[1],
				Normalize: cfg.Text.Normalize,
				Stdin:     cmd.InOrStdin(),
				Stdout:    cmd.OutOrStdout(),
			}
			if echo && args[1] != textfile.StdioPath {
				opts.Echo = cmd.OutOrStdout()
			}

			return textfile.Convert(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&echo, "echo", false, "Also print the converted text to stdout")

	return cmd
}
