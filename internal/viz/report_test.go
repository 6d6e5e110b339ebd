package viz

import (
	"errors"
	"strings"
	"testing"
)

func TestInspect(t *testing.T) {
	out := Inspect("hello", 5)

	for _, want := range []string{
		"2cf24dba5fb0a30e26e83b2ac5b9e29e",
		"1b161e5c1fa7425e73043362938b9824",
		"5x5",
		"black",
		"14/25",
		"row density",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q:\n%s", want, out)
		}
	}
}

func TestInspect_SmallSizes(t *testing.T) {
	for _, size := range []int{0, 1} {
		out := Inspect("hello", size)
		if strings.Contains(out, "row density") {
			t.Errorf("size %d: expected no plot", size)
		}
		if !strings.Contains(out, "color") {
			t.Errorf("size %d: expected color line", size)
		}
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	for _, p := range []float64{-1, 0, 0.5, 1, 2} {
		bar := ProgressBar(p, 10)
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Errorf("ProgressBar(%v) has %d cells, want 10", p, n)
		}
	}
}

func TestSeparator(t *testing.T) {
	if !strings.Contains(Separator(20), "◆") {
		t.Error("expected diamond in wide separator")
	}
	if strings.Contains(Separator(4), "◆") {
		t.Error("expected plain line in narrow separator")
	}
}

func TestError(t *testing.T) {
	out := Error(errors.New("boom"))
	if !strings.Contains(out, "error:") || !strings.Contains(out, "boom") {
		t.Errorf("unexpected error line: %q", out)
	}
}
