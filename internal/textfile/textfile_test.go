package textfile_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/go-pinyin-tones/internal/testutil"
	"github.com/example/go-pinyin-tones/internal/textfile"
)

func TestConvert_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", "Ni3hao3!\nWo3 shi4 lao3shi1.\n")
	out := filepath.Join(dir, "out.txt")

	err := textfile.Convert(context.Background(), textfile.Options{Input: in, Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	testutil.AssertFileContent(t, out, "Nǐhǎo!\nWǒ shì lǎoshī.\n")
}

func TestConvert_Echo(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", "ma1")
	out := filepath.Join(dir, "out.txt")

	var echo bytes.Buffer
	err := textfile.Convert(context.Background(), textfile.Options{Input: in, Output: out, Echo: &echo})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if echo.String() != "mā" {
		t.Errorf("echo = %q; want %q", echo.String(), "mā")
	}
	testutil.AssertFileContent(t, out, "mā")
}

func TestConvert_Stdio(t *testing.T) {
	var stdout bytes.Buffer
	err := textfile.Convert(context.Background(), textfile.Options{
		Input:  textfile.StdioPath,
		Output: textfile.StdioPath,
		Stdin:  strings.NewReader("xie4xie5"),
		Stdout: &stdout,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if stdout.String() != "xièxie" {
		t.Errorf("stdout = %q; want %q", stdout.String(), "xièxie")
	}
}

func TestConvert_InputNotFound(t *testing.T) {
	dir := t.TempDir()

	err := textfile.Convert(context.Background(), textfile.Options{
		Input:  filepath.Join(dir, "missing.txt"),
		Output: filepath.Join(dir, "out.txt"),
	})
	if !errors.Is(err, textfile.ErrInputNotFound) {
		t.Errorf("Convert() error = %v; want ErrInputNotFound", err)
	}
}

func TestConvert_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", "ma1")

	err := textfile.Convert(context.Background(), textfile.Options{
		Input:  in,
		Output: filepath.Join(dir, "missing", "out.txt"),
	})
	if !errors.Is(err, textfile.ErrWriteFailure) {
		t.Errorf("Convert() error = %v; want ErrWriteFailure", err)
	}
}

func TestConvert_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", "ma1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := textfile.Convert(ctx, textfile.Options{Input: in, Output: filepath.Join(dir, "out.txt")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v; want context.Canceled", err)
	}
}

func TestConvertString_Normalize(t *testing.T) {
	decomposed := "lu\u03084"

	if got := textfile.ConvertString(decomposed, true); got != "lǜ" {
		t.Errorf("ConvertString(normalize) = %q; want %q", got, "lǜ")
	}

	if got := textfile.ConvertString(decomposed, false); got != decomposed {
		t.Errorf("ConvertString(no normalize) = %q; want unchanged", got)
	}
}

func TestConvert_DefaultLeavesDecomposedTextAlone(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "in.txt", "cafe\u0301 ni3")
	out := filepath.Join(dir, "out.txt")

	err := textfile.Convert(context.Background(), textfile.Options{Input: in, Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	testutil.AssertFileContent(t, out, "cafe\u0301 nǐ")
}
