package validate_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"stockroom/internal/validate"
)

func TestNoteCapsOnRuneBoundary(t *testing.T) {
	if got := validate.Note("  restock  "); got != "restock" {
		t.Fatalf("expected trimmed note, got %q", got)
	}

	// 199 ASCII bytes followed by a 3-byte rune straddling the 200-byte cap:
	// the whole rune must be dropped, not split.
	long := strings.Repeat("a", 199) + "日日日"
	got := validate.Note(long)
	if len(got) > 200 {
		t.Fatalf("note exceeds cap: %d bytes", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("note is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("a", 199) {
		t.Fatalf("unexpected cut point: %q", got[190:])
	}
}

func TestQuantityAndStock(t *testing.T) {
	if _, ok := validate.Quantity("0"); ok {
		t.Fatal("zero quantity accepted")
	}
	if _, ok := validate.Quantity("-3"); ok {
		t.Fatal("negative quantity accepted")
	}
	if n, ok := validate.Quantity(" 7 "); !ok || n != 7 {
		t.Fatalf("expected 7, got %d (%v)", n, ok)
	}
	if n, ok := validate.Stock("0"); !ok || n != 0 {
		t.Fatalf("zero stock should be valid, got %d (%v)", n, ok)
	}
	if _, ok := validate.Stock("-1"); ok {
		t.Fatal("negative stock accepted")
	}
}
