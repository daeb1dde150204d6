package table

import (
	"testing"
)

func buildTestTable() Table {
	return New(
		[]string{"age", "sex", "note"},
		[][]string{
			{"63", "1", "a"},
			{"37", "0", "b"},
			{"41", "0", ""},
			{"56", "1"},
		},
	)
}

func TestNew_PadsShortRows(t *testing.T) {
	tbl := buildTestTable()

	if tbl.NumRows() != 4 {
		t.Fatalf("Expected 4 rows, got %d", tbl.NumRows())
	}
	if tbl.NumCols() != 3 {
		t.Fatalf("Expected 3 columns, got %d", tbl.NumCols())
	}

	row := tbl.Row(3)
	if row[2] != Missing {
		t.Errorf("Short row should be padded with the missing marker, got %q", row[2])
	}
}

func TestColumn_AbsentColumn(t *testing.T) {
	tbl := buildTestTable()

	if _, ok := tbl.Column("cholesterol"); ok {
		t.Error("Expected ok=false for an absent column")
	}
	if tbl.HasColumn("cholesterol") {
		t.Error("HasColumn should report false for an absent column")
	}
}

func TestFloatColumn_SkipsNonNumeric(t *testing.T) {
	tbl := buildTestTable()

	ages, ok := tbl.FloatColumn("age")
	if !ok {
		t.Fatal("Expected age column to exist")
	}
	if len(ages) != 4 {
		t.Fatalf("Expected 4 parsed ages, got %d", len(ages))
	}

	notes, ok := tbl.FloatColumn("note")
	if !ok {
		t.Fatal("Expected note column to exist")
	}
	if len(notes) != 0 {
		t.Errorf("Non-numeric cells should be skipped, got %d values", len(notes))
	}
}

func TestWithColumn_DoesNotModifyReceiver(t *testing.T) {
	tbl := buildTestTable()

	replaced, ok := tbl.WithColumn("sex", []string{"Male", "Female", "Female", "Male"})
	if !ok {
		t.Fatal("Expected WithColumn to succeed")
	}

	original, _ := tbl.Column("sex")
	if original[0] != "1" {
		t.Errorf("Original table was modified: sex[0] = %q", original[0])
	}

	updated, _ := replaced.Column("sex")
	if updated[0] != "Male" {
		t.Errorf("Replacement not applied: sex[0] = %q", updated[0])
	}
}

func TestWithColumn_LengthMismatch(t *testing.T) {
	tbl := buildTestTable()

	if _, ok := tbl.WithColumn("sex", []string{"Male"}); ok {
		t.Error("Expected ok=false when value count differs from row count")
	}
}

func TestIsNumericColumn(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		numeric bool
	}{
		{"numeric column", "age", true},
		{"coded column still numeric", "sex", true},
		{"label column", "note", false},
		{"absent column", "missing", false},
	}

	tbl := buildTestTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tbl.IsNumericColumn(tt.column); got != tt.numeric {
				t.Errorf("IsNumericColumn(%q) = %v, want %v", tt.column, got, tt.numeric)
			}
		})
	}
}

func TestIsNumericColumn_AllMissing(t *testing.T) {
	tbl := New([]string{"x"}, [][]string{{""}, {""}})
	if tbl.IsNumericColumn("x") {
		t.Error("A column with no non-missing cells should not count as numeric")
	}
}

func TestCountValues_DeterministicOrder(t *testing.T) {
	tbl := New([]string{"v"}, [][]string{
		{"b"}, {"a"}, {"b"}, {"c"}, {"a"}, {""},
	})

	counts, ok := tbl.CountValues("v")
	if !ok {
		t.Fatal("Expected column v to exist")
	}

	// Highest count first, ties broken by label; missing cells excluded.
	want := []CountPair{{"a", 2}, {"b", 2}, {"c", 1}}
	if len(counts) != len(want) {
		t.Fatalf("Expected %d distinct values, got %d", len(want), len(counts))
	}
	for i, p := range want {
		if counts[i] != p {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], p)
		}
	}
	if counts.Total() != 5 {
		t.Errorf("Total() = %d, want 5", counts.Total())
	}
	if counts.Get("zzz") != 0 {
		t.Errorf("Get on absent value should be 0, got %d", counts.Get("zzz"))
	}
}

func TestHeadTail(t *testing.T) {
	tbl := buildTestTable()

	head := tbl.Head(2)
	if len(head) != 2 || head[0][0] != "63" {
		t.Errorf("Head(2) wrong: %v", head)
	}

	tail := tbl.Tail(2)
	if len(tail) != 2 || tail[1][0] != "56" {
		t.Errorf("Tail(2) wrong: %v", tail)
	}

	// Requests larger than the table are clipped.
	if got := len(tbl.Head(100)); got != 4 {
		t.Errorf("Head(100) returned %d rows, want 4", got)
	}
}
