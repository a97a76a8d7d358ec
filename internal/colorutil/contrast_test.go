package colorutil

import "testing"

func TestContrastRatio(t *testing.T) {
	cases := []struct {
		name     string
		fg, bg   RGB
		minRatio float64
	}{
		{"blackOnWhite", Black, White, 20.9},
		{"whiteOnBlack", White, Black, 20.9},
		{"darkRedOnWhite", RGB{185, 28, 28}, White, 4.5},
	}
	for _, tc := range cases {
		ratio := ContrastRatio(tc.fg, tc.bg)
		if ratio < tc.minRatio {
			t.Fatalf("%s contrast ratio %.2f < %.2f", tc.name, ratio, tc.minRatio)
		}
	}
	if got := ContrastRatio(RGB{10, 20, 30}, RGB{10, 20, 30}); got != 1 {
		t.Fatalf("identical colors should have ratio 1, got %.2f", got)
	}
}

func TestAutoTextColor(t *testing.T) {
	cases := []struct {
		name string
		bg   RGB
		want RGB
	}{
		{"lightBackground", RGB{255, 247, 237}, Black},
		{"darkBackground", RGB{15, 23, 42}, White},
		{"medium", RGB{120, 113, 108}, White},
	}
	for _, tc := range cases {
		if got := AutoTextColor(tc.bg); got != tc.want {
			t.Fatalf("%s AutoTextColor=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestMix(t *testing.T) {
	if got := Mix(Black, White, 0.5); got != (RGB{128, 128, 128}) {
		t.Fatalf("Mix midpoint = %v", got)
	}
	if got := Mix(RGB{1, 2, 3}, White, -1); got != (RGB{1, 2, 3}) {
		t.Fatalf("Mix below range = %v", got)
	}
	if got := Mix(RGB{1, 2, 3}, White, 2); got != White {
		t.Fatalf("Mix above range = %v", got)
	}
}

func TestEnsureContrast(t *testing.T) {
	green := RGB{34, 197, 94}
	if got := EnsureContrast(green, Black, 4.5); got != green {
		t.Fatalf("readable color should be kept, got %v", got)
	}

	ensured := EnsureContrast(green, White, 4.5)
	if ContrastRatio(ensured, White) < 4.5 {
		t.Fatalf("expected EnsureContrast to meet ratio, got %.2f", ContrastRatio(ensured, White))
	}
	if ensured == Black {
		t.Fatal("hue should survive when a partial shift is enough")
	}
	if ensured.G <= ensured.R || ensured.G <= ensured.B {
		t.Fatalf("adjusted color lost its green hue: %v", ensured)
	}
}
