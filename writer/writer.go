package writer

import (
	"bytes"
	"encoding/binary"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/handegar/aicac/asm"
)

// WriteText writes the emitted assembler lines to the output file.
func WriteText(filename string, lines []string) error {
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		return errors.Wrapf(err, "Could not write '%s'", filename)
	}
	return nil
}

// WriteImage writes the assembled tables as a big-endian binary blob
// in upload order: COEF, MADRS, TEMP, then the MPRO step words.
func WriteImage(filename string, img *asm.Image) error {
	data, err := encodeImage(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "Could not write '%s'", filename)
	}
	return nil
}

func encodeImage(img *asm.Image) ([]byte, error) {
	var buf bytes.Buffer
	for _, section := range []interface{}{
		img.COEF, img.MADRS, img.TEMP, img.MPRO,
	} {
		if err := binary.Write(&buf, binary.BigEndian, section); err != nil {
			return nil, errors.Wrap(err, "Encoding image failed")
		}
	}
	return buf.Bytes(), nil
}
