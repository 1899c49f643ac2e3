package utils

import (
	"testing"
)

func parseTest(t *testing.T, in string, expected int64) {
	v, err := ParseInt(in)
	if err != nil {
		t.Fatalf("ParseInt('%s') failed: %s", in, err)
	}
	if v != expected {
		t.Errorf("ParseInt('%s') != %d. Got %d", in, expected, v)
	}
}

func Test_ParseInt(t *testing.T) {
	parseTest(t, "0", 0)
	parseTest(t, "42", 42)
	parseTest(t, "-17", -17)
	parseTest(t, "0x10", 16)
	parseTest(t, "0X7f", 127)
	parseTest(t, "-0x20", -32)
	parseTest(t, " 12 ", 12)
}

func Test_ParseInt_Errors(t *testing.T) {
	for _, in := range []string{"", "abc", "0x", "12.5", "1f"} {
		if _, err := ParseInt(in); err == nil {
			t.Errorf("ParseInt('%s') should have failed", in)
		}
	}
}
