package units

import "testing"

func TestCanonicalizeSize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4x12", "4x12"},
		{"12x4", "4x12"},
		{"4*12", "4x12"},
		{"12×4", "4x12"},
		{" 4 X 12 ", "4x12"},
		{"6x18", "6x18"},
		{"18*6", "6x18"},
		{"2x6", "2x6"},
		{"banner", "banner"},
		{"4x", "4x"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CanonicalizeSize(tc.in); got != tc.want {
			t.Errorf("CanonicalizeSize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalizeSizeOrderInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"12x4", "4x12"},
		{"18x6", "6x18"},
		{"24x8", "8x24"},
		{"9x3", "3x9"},
		{"6x2", "2x6"},
	}
	for _, p := range pairs {
		if CanonicalizeSize(p[0]) != CanonicalizeSize(p[1]) {
			t.Errorf("expected %q and %q to canonicalize equally", p[0], p[1])
		}
	}
}

func TestCanonicalizeSizeIdempotent(t *testing.T) {
	for _, in := range []string{"12*4", "4x12", "banner", "8×24"} {
		once := CanonicalizeSize(in)
		if twice := CanonicalizeSize(once); twice != once {
			t.Errorf("CanonicalizeSize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCanonicalizeLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"vip", LevelVIP},
		{"VIP", LevelVIP},
		{"premium", LevelExcellent},
		{"excellent", LevelExcellent},
		{"ممتاز", LevelExcellent},
		{"عادي", LevelStandard},
		{"", LevelStandard},
		{"unknown tier", LevelStandard},
	}
	for _, tc := range cases {
		if got := CanonicalizeLevel(tc.in); got != tc.want {
			t.Errorf("CanonicalizeLevel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMergeCategories(t *testing.T) {
	merged := MergeCategories([]string{"عادي", "وكالات", "", " شركات إعلانية "})
	want := []string{"عادي", "المدينة", "مسوق", "شركات", "وكالات", "شركات إعلانية"}
	if len(merged) != len(want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Fatalf("merged[%d] = %q, want %q", i, merged[i], want[i])
		}
	}
}
