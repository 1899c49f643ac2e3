package writer

import (
	"testing"

	"github.com/handegar/aicac/asm"
	"github.com/handegar/aicac/base"
)

func Test_ImageLayout(t *testing.T) {
	img := &asm.Image{}
	img.COEF[0] = 0x0102
	img.MADRS[0] = 0x0304
	img.TEMP[0] = 0x05060708
	img.MPRO[0] = base.Step(0x090a0b0c0d0e0f10)

	data, err := encodeImage(img)
	if err != nil {
		t.Fatalf("encodeImage failed: %s", err)
	}

	expectedSize := base.COEFSize*2 + base.MADRSSize*2 +
		base.TEMPSize*4 + base.MPROSize*8
	if len(data) != expectedSize {
		t.Fatalf("Image size != %d. Got %d", expectedSize, len(data))
	}

	t.Run("SectionOffsets", func(t *testing.T) {
		coefAt := 0
		madrsAt := base.COEFSize * 2
		tempAt := madrsAt + base.MADRSSize*2
		mproAt := tempAt + base.TEMPSize*4

		if data[coefAt] != 0x01 || data[coefAt+1] != 0x02 {
			t.Errorf("COEF section not big-endian at offset %d", coefAt)
		}
		if data[madrsAt] != 0x03 || data[madrsAt+1] != 0x04 {
			t.Errorf("MADRS section misplaced at offset %d", madrsAt)
		}
		if data[tempAt] != 0x05 || data[tempAt+3] != 0x08 {
			t.Errorf("TEMP section misplaced at offset %d", tempAt)
		}
		if data[mproAt] != 0x09 || data[mproAt+7] != 0x10 {
			t.Errorf("MPRO section misplaced at offset %d", mproAt)
		}
	})
}
