package reader

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/handegar/aicac/settings"
)

// ReadSource returns the source lines of the input file. With -cpp
// the file is run through the external C preprocessor first, so
// #include and #define work as in the original assembler dialect.
func ReadSource(filename string) ([]string, error) {
	if settings.UseCPP {
		return preprocess(filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open '%s'", filename)
	}
	defer f.Close()

	return scanLines(bufio.NewScanner(f))
}

func preprocess(filename string) ([]string, error) {
	cmd := exec.Command("cpp", "-P", filename)
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "Preprocessing '%s' failed", filename)
	}
	return scanLines(bufio.NewScanner(bytes.NewReader(out)))
}

func scanLines(scanner *bufio.Scanner) ([]string, error) {
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Reading source failed")
	}
	return lines, nil
}
