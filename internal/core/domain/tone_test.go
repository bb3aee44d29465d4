package domain

import "testing"

func TestDominantEmotion(t *testing.T) {
	tests := []struct {
		name      string
		scores    map[string]float64
		wantLabel string
		wantScore float64
	}{
		{
			name:      "empty map yields neutral zero",
			scores:    map[string]float64{},
			wantLabel: LabelNeutral,
			wantScore: 0.0,
		},
		{
			name:      "nil map yields neutral zero",
			scores:    nil,
			wantLabel: LabelNeutral,
			wantScore: 0.0,
		},
		{
			name:      "picks maximum score",
			scores:    map[string]float64{"joy": 0.12, "sadness": 0.81, "anger": 0.33},
			wantLabel: "sadness",
			wantScore: 0.81,
		},
		{
			name:      "single entry",
			scores:    map[string]float64{"fear": 0.5},
			wantLabel: "fear",
			wantScore: 0.5,
		},
		{
			name:      "tie breaks toward lexically smaller label",
			scores:    map[string]float64{"sadness": 0.4, "anger": 0.4, "joy": 0.1},
			wantLabel: "anger",
			wantScore: 0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DominantEmotion(tt.scores)
			if got.Label != tt.wantLabel || got.Score != tt.wantScore {
				t.Errorf("DominantEmotion: got {%s %v}, want {%s %v}",
					got.Label, got.Score, tt.wantLabel, tt.wantScore)
			}
		})
	}
}

func TestDominantEmotionDeterministic(t *testing.T) {
	scores := map[string]float64{"disgust": 0.3, "anger": 0.3, "fear": 0.3}
	first := DominantEmotion(scores)
	for i := 0; i < 50; i++ {
		if got := DominantEmotion(scores); got != first {
			t.Fatalf("result varies across runs: %v vs %v", got, first)
		}
	}
	if first.Label != "anger" {
		t.Errorf("tie-break: got %q, want %q", first.Label, "anger")
	}
}
