package cmd

import (
	"io"
	"os"

	"github.com/confix-lang/confix/lang"
)

// stdio is the special path indicating stdin or stdout.
const stdio = "-"

// readSource returns the contents of the named file, or of stdin when path
// is "-".
func readSource(path string) (string, error) {
	if path == stdio {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// openOutput opens the named file for writing, or returns stdout when path
// is "-". The returned close function is a no-op for stdout.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == stdio {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return file, file.Close, nil
}

// translator constructs a lang.Translator honoring the strict-redefine flag.
func translator(strict bool) lang.Translator {
	opts := []lang.Option{}
	if strict {
		opts = append(opts, lang.WithStrictRedefine())
	}

	return lang.NewTranslator(opts...)
}
