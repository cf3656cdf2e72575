package huffpack

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func mustParseEntries(t *testing.T, pairs ...interface{}) []Entry {
	t.Helper()
	entries := make([]Entry, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		hc, err := ParseCode(pairs[i+1].(string))
		if err != nil {
			t.Fatalf("ParseCode failed: %v", err)
		}
		var symbol Symbol
		switch x := pairs[i].(type) {
		case int:
			symbol = Symbol(x)
		case rune:
			symbol = Symbol(x)
		default:
			t.Fatalf("unexpected symbol type %T", x)
		}
		entries = append(entries, Entry{Symbol: symbol, Code: hc})
	}
	return entries
}

func TestAssignCodes(t *testing.T) {
	ct := AssignCodes(BuildTree(makeTestFrequencies()))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	bits, ok := ct.EncodedBits(makeTestFrequencies())
	if !ok {
		t.Fatal("EncodedBits reported a missing code")
	}
	if bits != 224 {
		t.Errorf("expected 224 encoded bits, got %d", bits)
	}
}

func TestAssignCodes_SingleSymbol(t *testing.T) {
	ct := AssignCodes(BuildTree(CountFrequencies([]byte{0, 0, 0})))

	hc, ok := ct.Encode(0)
	if !ok {
		t.Fatal("symbol 0 has no code")
	}
	if expect := MakeCode(1, 0); hc != expect {
		t.Errorf("expected code %s, got %s", expect, hc)
	}
	if ct.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", ct.Len())
	}
}

func TestCodeTable_Invert(t *testing.T) {
	ct := AssignCodes(BuildTree(makeTestFrequencies()))
	inv, err := ct.Invert()
	if err != nil {
		t.Fatalf("Invert failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"InverseCodeTable{\n",
		"\tLookup(\"0\") = 5\n",
		"\tLookup(\"100\") = 2\n",
		"\tLookup(\"101\") = 3\n",
		"\tLookup(\"111\") = 4\n",
		"\tLookup(\"1100\") = 0\n",
		"\tLookup(\"1101\") = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = inv.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	for _, str := range []string{"", "1", "10", "11", "110", "00"} {
		hc, _ := ParseCode(str)
		if symbol, found := inv.Lookup(hc); found {
			t.Errorf("Lookup(%s) unexpectedly found symbol %d", hc, symbol)
		}
	}
}

func TestMakeCodeTable_Invalid(t *testing.T) {
	type testRow struct {
		name    string
		entries []Entry
	}

	testData := []testRow{
		{name: "collision", entries: mustParseEntries(t, 1, "0", 2, "0")},
		{name: "prefix", entries: mustParseEntries(t, 1, "0", 2, "01", 3, "11")},
		{name: "long-prefix", entries: mustParseEntries(t, 1, "1", 2, "0", 3, "0001")},
		{name: "duplicate", entries: mustParseEntries(t, 1, "0", 1, "1")},
		{name: "empty-code", entries: []Entry{{Symbol: 7}}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := MakeCodeTable(row.entries)
			if !errors.Is(err, ErrInvalidCodeTable) {
				t.Errorf("expected ErrInvalidCodeTable, got %v", err)
			}
		})
	}
}

func TestMakeCodeTable_RoundTrip(t *testing.T) {
	original := AssignCodes(BuildTree(CountFrequencies([]byte("mississippi river"))))
	rebuilt, err := MakeCodeTable(original.Entries())
	if err != nil {
		t.Fatalf("MakeCodeTable failed: %v", err)
	}
	if rebuilt != original {
		t.Errorf("rebuilt table differs from the original")
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 50; iter++ {
		var ft FrequencyTable
		numSymbols := 2 + rng.IntN(NumSymbols-1)
		for i := 0; i < numSymbols; i++ {
			ft.counts[rng.IntN(NumSymbols)] += 1 + rng.Uint64N(1000)
		}

		entries := AssignCodes(BuildTree(ft)).Entries()
		if len(entries) != ft.Len() {
			t.Fatalf("expected %d codes, got %d", ft.Len(), len(entries))
		}
		for i, a := range entries {
			for j, b := range entries {
				if i != j && b.Code.hasPrefix(a.Code) {
					t.Fatalf("code %s for %d is a prefix of code %s for %d", a.Code, a.Symbol, b.Code, b.Symbol)
				}
			}
		}
	}
}

// bruteForceCost returns the least total encoded size over every assignment
// of code lengths that satisfies the Kraft inequality, i.e. over every
// prefix-free code for these weights.
func bruteForceCost(weights []uint64) uint64 {
	n := len(weights)
	maxLen := n - 1
	budget := uint64(1) << maxLen
	best := ^uint64(0)

	var search func(i int, used uint64, cost uint64)
	search = func(i int, used uint64, cost uint64) {
		if cost >= best {
			return
		}
		if i == n {
			best = cost
			return
		}
		for l := 1; l <= maxLen; l++ {
			share := uint64(1) << (maxLen - l)
			if used+share > budget {
				continue
			}
			search(i+1, used+share, cost+weights[i]*uint64(l))
		}
	}
	search(0, 0, 0)
	return best
}

func TestAssignCodes_Optimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for iter := 0; iter < 200; iter++ {
		numSymbols := 2 + rng.IntN(5)
		var ft FrequencyTable
		weights := make([]uint64, numSymbols)
		for i := range weights {
			weights[i] = 1 + rng.Uint64N(50)
			ft.counts['a'+i] = weights[i]
		}

		actual, ok := AssignCodes(BuildTree(ft)).EncodedBits(ft)
		if !ok {
			t.Fatal("EncodedBits reported a missing code")
		}
		expect := bruteForceCost(weights)
		if actual != expect {
			t.Errorf("weights %v: expected optimal cost %d, got %d", weights, expect, actual)
		}
	}
}

func TestByCode_Sort(t *testing.T) {
	var keys byCode
	for _, str := range []string{"100", "1", "011", "0000", "110", "0"} {
		hc, _ := ParseCode(str)
		keys = append(keys, hc)
	}
	keys.Sort()

	expect := []string{`"0"`, `"1"`, `"011"`, `"100"`, `"110"`, `"0000"`}
	for i, hc := range keys {
		if actual := hc.String(); actual != expect[i] {
			t.Errorf("position %d: expected %s, got %s", i, expect[i], actual)
		}
	}
}
