package album

import (
	"sort"
	"testing"
)

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		less bool
	}{
		{"numeric runs compare as integers", "img2.jpg", "img10.jpg", true},
		{"reverse of numeric order", "img10.jpg", "img2.jpg", false},
		{"case insensitive text", "a.jpg", "B.jpg", true},
		{"case insensitive text reversed", "B.jpg", "a.jpg", false},
		{"plain text order", "apple.png", "banana.png", true},
		{"leading zeros break value tie", "img01.jpg", "img1.jpg", true},
		{"multi chunk", "DSC_2.jpg", "DSC_10.jpg", true},
		{"digit run before text run", "2.jpg", "a.jpg", true},
		{"digit-bearing name before plain suffix", "img2.jpg", "img.jpg", true},
		{"identical", "same.jpg", "same.jpg", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NaturalLess(tc.a, tc.b); got != tc.less {
				t.Errorf("NaturalLess(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.less)
			}
		})
	}
}

func TestNaturalSortOrder(t *testing.T) {
	files := []string{"img10.jpg", "IMG3.jpg", "img1.jpg", "cover.png", "img2.jpg"}
	want := []string{"cover.png", "img1.jpg", "img2.jpg", "IMG3.jpg", "img10.jpg"}

	sort.Slice(files, func(i, j int) bool { return NaturalLess(files[i], files[j]) })

	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("sorted order mismatch at %d: got %v, want %v", i, files, want)
		}
	}
}
