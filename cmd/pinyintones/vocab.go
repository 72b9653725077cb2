package main

import (
	"log/slog"

	"github.com/example/go-pinyin-tones/internal/vocab"
	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab INPUT OUTPUT",
		Short: "Convert the pinyin column of a vocabulary CSV",
		Long: "Reads a delimited vocabulary list with a header row, converts the pinyin\n" +
			"column to tone marks and writes term, pinyin and translation without a header.\n" +
			"Repeated terms are reported as warnings; every row is still written.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			delim, err := cfg.Vocab.DelimiterRune()
			if err != nil {
				return err
			}

			t := vocab.New(
				vocab.WithDelimiter(delim),
				vocab.WithColumns(vocab.Columns{
					Term:        cfg.Vocab.TermColumn,
					Pinyin:      cfg.Vocab.PinyinColumn,
					Translation: cfg.Vocab.TranslationColumn,
				}),
				vocab.WithNormalize(cfg.Vocab.Normalize),
				vocab.WithLogger(slog.Default()),
			)

			stats, err := t.TransformFile(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			slog.Default().Info("vocabulary written",
				slog.String("output", args[1]),
				slog.Int("rows", stats.Rows),
				slog.Int("duplicates", stats.Duplicates),
			)
			return nil
		},
	}

	return cmd
}
