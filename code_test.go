package huffpack

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, expect: `""`},
		{size: 1, bits: 0x00, expect: `"0"`},
		{size: 1, bits: 0x01, expect: `"1"`},
		{size: 3, bits: 0x01, expect: `"100"`},
		{size: 3, bits: 0x06, expect: `"011"`},
		{size: 4, bits: 0xff, expect: `"1111"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(row.expect, func(t *testing.T) {
			actual := hc.String()
			if actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	for _, str := range []string{"", "0", "1", "0110", "1111111100000000"} {
		t.Run(str, func(t *testing.T) {
			hc, err := ParseCode(str)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if int(hc.Size) != len(str) {
				t.Errorf("expected size %d, got %d", len(str), hc.Size)
			}
			expect := `"` + str + `"`
			if actual := hc.String(); actual != expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
			}
		})
	}

	if _, err := ParseCode("012"); err == nil {
		t.Error("expected an error for a non-binary digit")
	}
}

func TestCode_hasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "0110", prefix: "", expect: true},
		{code: "0110", prefix: "0", expect: true},
		{code: "0110", prefix: "011", expect: true},
		{code: "0110", prefix: "0110", expect: true},
		{code: "0110", prefix: "1", expect: false},
		{code: "0110", prefix: "010", expect: false},
		{code: "01", prefix: "011", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, _ := ParseCode(row.code)
			prefix, _ := ParseCode(row.prefix)
			if actual := hc.hasPrefix(prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
