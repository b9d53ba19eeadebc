package seo

import (
	"strings"
	"testing"
)

func TestScoreWeights(t *testing.T) {
	tests := []struct {
		name string
		in   SignalSet
		want int
	}{
		{"empty", SignalSet{}, 0},
		{"meta only", SignalSet{HasMetaDescription: true}, 20},
		{"one backlink", SignalSet{Backlinks: 1}, 20},
		{"two backlinks", SignalSet{Backlinks: 2}, 20},
		{"three backlinks", SignalSet{Backlinks: 3}, 30},
		{"density lower bound", SignalSet{KeywordDensity: 1.5}, 30},
		{"density upper bound", SignalSet{KeywordDensity: 2.5}, 30},
		{"density too low", SignalSet{KeywordDensity: 1.49}, 0},
		{"density too high", SignalSet{KeywordDensity: 2.51}, 0},
		{"views at threshold", SignalSet{Views: 100}, 0},
		{"views above threshold", SignalSet{Views: 101}, 10},
		{"no images", SignalSet{ImageCount: 0, ImagesWithAlt: 0}, 0},
		{"missing alt", SignalSet{ImageCount: 3, ImagesWithAlt: 2}, 0},
		{"all alt", SignalSet{ImageCount: 3, ImagesWithAlt: 3}, 10},
		{"everything", SignalSet{
			HasMetaDescription: true, Backlinks: 5, KeywordDensity: 2,
			Views: 1000, ImageCount: 2, ImagesWithAlt: 2,
		}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.in); got != tt.want {
				t.Errorf("Score(%+v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestScoreBoundedAndMonotone(t *testing.T) {
	metas := []bool{false, true}
	backlinks := []int{0, 1, 2, 3, 10}
	densities := []float64{0, 2}
	views := []int64{0, 100, 101, 5000}
	alts := []int{0, 1, 2} // ImageCount 固定为 2

	for _, m := range metas {
		for _, b := range backlinks {
			for _, d := range densities {
				for _, v := range views {
					for _, a := range alts {
						base := SignalSet{HasMetaDescription: m, Backlinks: b, KeywordDensity: d, Views: v, ImageCount: 2, ImagesWithAlt: a}
						s := Score(base)
						if s < 0 || s > 100 {
							t.Fatalf("score %d out of range for %+v", s, base)
						}

						up := base
						up.HasMetaDescription = true
						if Score(up) < s {
							t.Errorf("adding meta description lowered score: %+v", base)
						}
						up = base
						up.Backlinks++
						if Score(up) < s {
							t.Errorf("adding a backlink lowered score: %+v", base)
						}
						up = base
						up.Views++
						if Score(up) < s {
							t.Errorf("adding a view lowered score: %+v", base)
						}
						up = base
						if up.ImagesWithAlt < up.ImageCount {
							up.ImagesWithAlt++
						}
						if Score(up) < s {
							t.Errorf("adding alt text lowered score: %+v", base)
						}
						up = base
						up.KeywordDensity = 2
						if Score(up) < s {
							t.Errorf("moving density into range lowered score: %+v", base)
						}
					}
				}
			}
		}
	}
}

func TestRecommendations(t *testing.T) {
	perfect := SignalSet{HasMetaDescription: true, Backlinks: 3, KeywordDensity: 2, Views: 101, ImageCount: 1, ImagesWithAlt: 1}
	if recs := Recommendations(perfect); len(recs) != 0 {
		t.Fatalf("expected no recommendations for a perfect product, got %v", recs)
	}

	recs := Recommendations(SignalSet{KeywordDensity: 4, ImageCount: 2, ImagesWithAlt: 1})
	joined := strings.Join(recs, "\n")
	for _, want := range []string{"blog yazısı", "azaltın", "Meta açıklaması", "alt", "trafiği"} {
		if !strings.Contains(joined, want) {
			t.Errorf("recommendations missing %q: %v", want, recs)
		}
	}
}
