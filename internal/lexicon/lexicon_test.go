package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLevantineTables(t *testing.T) {
	tables := DefaultLevantine()

	if tables.Version == "" {
		t.Error("version must be set")
	}
	if len(tables.Indicators) == 0 || len(tables.Markers) == 0 {
		t.Fatal("built-in tables must carry indicators and markers")
	}
	if len(tables.FunctionWords) == 0 || len(tables.PlaceholderPatterns) == 0 {
		t.Fatal("built-in tables must carry function words and placeholder patterns")
	}

	for _, term := range tables.Indicators {
		if term.Weight != 1 && term.Weight != 2 {
			t.Errorf("indicator %q weight = %v, want 1 or 2", term.Term, term.Weight)
		}
	}
	for _, term := range tables.Markers {
		if term.Weight != 1.5 {
			t.Errorf("marker %q weight = %v, want 1.5", term.Term, term.Weight)
		}
	}
}

func TestLoadCustomTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "egyptian.yaml")
	data := `version: egyptian-test
indicators:
  - term: ازيك
    weight: 2
  - term: خالص
    weight: 1
markers:
  - term: يا سلام
    weight: 1.5
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if tables.Version != "egyptian-test" {
		t.Errorf("version = %q, want egyptian-test", tables.Version)
	}
	if len(tables.Indicators) != 2 || tables.Indicators[0].Term != "ازيك" {
		t.Errorf("indicators = %v", tables.Indicators)
	}

	// Sections the file omits are backfilled from the built-in tables so a
	// custom lexicon never silently disables the quality scorer.
	if len(tables.FunctionWords) == 0 {
		t.Error("function words should be backfilled")
	}
	if len(tables.PlaceholderPatterns) == 0 {
		t.Error("placeholder patterns should be backfilled")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadRejectsEmptyIndicators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("version: x\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a lexicon with no indicators")
	}
}
