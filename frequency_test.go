package huffpack

import (
	"io"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies([]byte("abracadabra\x00"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tLen() = 6\n",
		"\tTotal() = 12\n",
		"\tCount(0) = 1\n",
		"\tCount(97) = 5\n",
		"\tCount(98) = 2\n",
		"\tCount(99) = 1\n",
		"\tCount(100) = 1\n",
		"\tCount(114) = 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	ft := CountFrequencies(nil)
	if ft.Len() != 0 {
		t.Errorf("expected 0 symbols, got %d", ft.Len())
	}
	if ft.Total() != 0 {
		t.Errorf("expected total 0, got %d", ft.Total())
	}
}

func TestFrequencyTable_Write(t *testing.T) {
	input := strings.Repeat("the quick brown fox jumps over the lazy dog ", 100)

	var ft FrequencyTable
	n, err := io.Copy(&ft, strings.NewReader(input))
	if err != nil {
		t.Fatalf("io.Copy failed: %v", err)
	}
	if n != int64(len(input)) {
		t.Errorf("expected %d bytes copied, got %d", len(input), n)
	}

	expect := CountFrequencies([]byte(input))
	if ft != expect {
		t.Errorf("streamed counts differ from one-shot counts")
	}
	if ft.Total() != uint64(len(input)) {
		t.Errorf("expected total %d, got %d", len(input), ft.Total())
	}
}
