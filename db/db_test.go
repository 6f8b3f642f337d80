package db

import "testing"

type demoRow struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Skipped string `db:"-"`
	NoTag   string
	Count   int `db:"count"`
}

func TestGetCols(t *testing.T) {
	cols := GetCols(demoRow{})

	if len(cols) != 3 {
		t.Fatal("Expected 3 columns, got", len(cols))
	}

	expected := []string{"id", "name", "count"}

	for i := range expected {
		if cols[i] != expected[i] {
			t.Errorf("Expected column %d to be %s, got %s", i, expected[i], cols[i])
		}
	}
}
