// Package textfile converts whole plain-text files from tone numbers to tone
// marks.
package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/example/go-pinyin-tones/internal/pinyin"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrWriteFailure is returned when the output cannot be created or written.
	ErrWriteFailure = errors.New("write failure")
)

// StdioPath selects stdin for Input and stdout for Output.
const StdioPath = "-"

// Options describes one conversion.
type Options struct {
	Input  string // input path, or StdioPath
	Output string // output path, or StdioPath

	// Echo, when set, also receives the converted text.
	Echo io.Writer
	// Normalize applies Unicode NFC to the whole content before conversion.
	// Off leaves every non-syllable byte untouched.
	Normalize bool

	Stdin  io.Reader
	Stdout io.Writer
}

// Convert reads Input, converts its whole content and writes it to Output.
func Convert(ctx context.Context, opts Options) error {
	content, err := readInput(opts.Input, opts.Stdin)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	result := ConvertString(content, opts.Normalize)

	if err := writeOutput(opts.Output, result, opts.Stdout); err != nil {
		return err
	}
	if opts.Echo != nil {
		if _, err := io.WriteString(opts.Echo, result); err != nil {
			return fmt.Errorf("%w: echo: %w", ErrWriteFailure, err)
		}
	}
	return nil
}

// ConvertString converts text, optionally NFC-normalizing it first.
func ConvertString(text string, normalize bool) string {
	if normalize {
		text = norm.NFC.String(text)
	}
	return pinyin.NumbersToMarks(text)
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == StdioPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func writeOutput(path, content string, stdout io.Writer) error {
	if path == StdioPath {
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteFailure, err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	return nil
}
