package domain

// Emotion labels the classifier can report. Anything outside this set is
// treated like LabelNeutral by the genre mapping.
const (
	LabelJoy     = "joy"
	LabelSadness = "sadness"
	LabelAnger   = "anger"
	LabelFear    = "fear"
	LabelDisgust = "disgust"
	LabelNeutral = "neutral"
)

// ToneResult is the outcome of a single emotion classification.
type ToneResult struct {
	Label string
	Score float64
}

// Neutral is the fallback result used when there is nothing to classify.
func Neutral() ToneResult {
	return ToneResult{Label: LabelNeutral, Score: 0.0}
}

// DominantEmotion picks the highest-scoring entry from a per-emotion score
// map. Ties break toward the lexically smaller label so the result is
// deterministic regardless of map iteration order. An empty map yields
// Neutral().
func DominantEmotion(scores map[string]float64) ToneResult {
	if len(scores) == 0 {
		return Neutral()
	}

	var top ToneResult
	first := true
	for label, score := range scores {
		if first || score > top.Score || (score == top.Score && label < top.Label) {
			top = ToneResult{Label: label, Score: score}
			first = false
		}
	}
	return top
}
