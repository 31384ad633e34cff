package schedule

import (
	"errors"
	"strings"
	"testing"
)

func TestCharMapKeyBits(t *testing.T) {
	// Key with only bit 0 and bit 31 set: 'A' and '7' map true,
	// everything else false.
	cm := NewCharMap(1 | 1<<31)
	if !cm['A'] {
		t.Fatalf("'A' should carry key bit 0")
	}
	if !cm['7'] {
		t.Fatalf("'7' should carry key bit 31")
	}
	if cm['B'] || cm['Z'] || cm['2'] {
		t.Fatalf("unset key bits must map to false")
	}
}

func TestCharMapOverridePrecedence(t *testing.T) {
	// Structural markers win regardless of the key.
	for _, key := range []uint32{0, ^uint32(0), 0xDEADBEEF} {
		cm := NewCharMap(key)
		if !cm['#'] {
			t.Fatalf("key %#x: '#' must map true", key)
		}
		if cm['.'] {
			t.Fatalf("key %#x: '.' must map false", key)
		}
		if len(cm) != len(Alphabet)+2 {
			t.Fatalf("key %#x: map has %d entries, want %d", key, len(cm), len(Alphabet)+2)
		}
	}
}

func TestParseTableErrors(t *testing.T) {
	cm := NewCharMap(0)
	if _, err := ParseTable("AB\nC*", cm); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("unmapped glyph: got %v, want ErrInvalidCharacter", err)
	}
	if _, err := ParseTable("ABC\nAB", cm); !errors.Is(err, ErrRaggedTable) {
		t.Fatalf("ragged rows: got %v, want ErrRaggedTable", err)
	}
}

func TestParseTableShape(t *testing.T) {
	cm := NewCharMap(0)
	for _, tmpl := range []string{TransposeTemplate, ShiftTemplate} {
		table, err := ParseTable(tmpl, cm)
		if err != nil {
			t.Fatalf("ParseTable: %v", err)
		}
		if len(table) != 16 {
			t.Fatalf("template has %d rows, want 16", len(table))
		}
		for r, row := range table {
			if len(row) != 16 {
				t.Fatalf("row %d has %d cells, want 16", r, len(row))
			}
		}
	}
}

// With key 0 every alphabet glyph decodes to false, so the seeded grid is
// exactly the '#' skeleton of the template.
func TestGoldenSeedZeroKey(t *testing.T) {
	table, err := ParseTable(TransposeTemplate, NewCharMap(0))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	lines := strings.Split(TransposeTemplate, "\n")
	for r, row := range table {
		for c, got := range row {
			want := lines[r][c] == '#'
			if got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v (glyph %q)", r, c, got, want, lines[r][c])
			}
		}
	}
}

// With an all-ones key every glyph except '.' decodes to true.
func TestGoldenSeedFullKey(t *testing.T) {
	table, err := ParseTable(ShiftTemplate, NewCharMap(^uint32(0)))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	lines := strings.Split(ShiftTemplate, "\n")
	for r, row := range table {
		for c, got := range row {
			want := lines[r][c] != '.'
			if got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v (glyph %q)", r, c, got, want, lines[r][c])
			}
		}
	}
}

func TestSeedDeterministic(t *testing.T) {
	t1, s1, err := Seed(0xCAFEF00D)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	t2, s2, err := Seed(0xCAFEF00D)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if t1.String() != t2.String() || s1.String() != s2.String() {
		t.Fatalf("identical keys seeded different grids")
	}
	if t1.String() == s1.String() {
		t.Fatalf("transpose and shift grids should differ")
	}

	t3, _, err := Seed(0xCAFEF00E)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if t1.String() == t3.String() {
		t.Fatalf("distinct keys seeded identical transpose grids")
	}
}

func TestKeyFromPassphrase(t *testing.T) {
	k1, err := KeyFromPassphrase("correct horse battery staple")
	if err != nil {
		t.Fatalf("KeyFromPassphrase: %v", err)
	}
	k2, err := KeyFromPassphrase("correct horse battery staple")
	if err != nil {
		t.Fatalf("KeyFromPassphrase: %v", err)
	}
	if k1 != k2 {
		t.Fatalf("derivation not deterministic: %#x vs %#x", k1, k2)
	}
	k3, err := KeyFromPassphrase("correct horse battery stable")
	if err != nil {
		t.Fatalf("KeyFromPassphrase: %v", err)
	}
	if k1 == k3 {
		t.Fatalf("distinct passphrases derived the same key")
	}
}

func TestRandomKey(t *testing.T) {
	if _, err := RandomKey(); err != nil {
		t.Fatalf("RandomKey: %v", err)
	}
}
