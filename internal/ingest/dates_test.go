package ingest

import (
	"testing"
	"time"
)

// TestParseDateLayoutRoundTrip проверяет разбор каждого явного шаблона.
func TestParseDateLayoutRoundTrip(t *testing.T) {
	want := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)

	for _, layout := range dateLayouts {
		formatted := want.Format(layout)

		got, ok := ParseDate(formatted)
		if !ok {
			t.Fatalf("expected %q (layout %s) to parse", formatted, layout)
		}
		if !got.Equal(want) {
			t.Fatalf("layout %s: expected %v, got %v", layout, want, got)
		}
	}
}

// TestParseDateISO проверяет строгий разбор ISO-8601.
func TestParseDateISO(t *testing.T) {
	got, ok := ParseDate("2024-03-01T10:30:00Z")
	if !ok {
		t.Fatal("expected ISO timestamp to parse")
	}

	want := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestParseDateSerial проверяет интерпретацию серийного номера таблицы.
func TestParseDateSerial(t *testing.T) {
	got, ok := ParseDate("45000")
	if !ok {
		t.Fatal("expected serial number to parse")
	}

	want := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestParseDateInvalidCalendar проверяет отказ на календарно невозможных датах.
func TestParseDateInvalidCalendar(t *testing.T) {
	if _, ok := ParseDate("2024-02-30"); ok {
		t.Fatal("expected February 30 to be rejected")
	}
	if _, ok := ParseDate("2024-04-31"); ok {
		t.Fatal("expected April 31 to be rejected")
	}
}

// TestParseDateUnresolved проверяет сигнал о нераспознанном значении.
func TestParseDateUnresolved(t *testing.T) {
	if _, ok := ParseDate(""); ok {
		t.Fatal("expected empty input to be unresolved")
	}
	if _, ok := ParseDate("not a date"); ok {
		t.Fatal("expected garbage input to be unresolved")
	}
}
