package domain

// toneToTag maps each classifier emotion to the catalog's mood vocabulary.
var toneToTag = map[string]string{
	LabelJoy:     "happy",
	LabelSadness: "sad",
	LabelAnger:   "angry",
	LabelFear:    "melancholic",
	LabelDisgust: "dark",
	LabelNeutral: "chill",
}

// GenreForTone returns the catalog tag for an emotion label. Labels outside
// the table, including the empty string, map to "chill".
func GenreForTone(label string) string {
	if tag, ok := toneToTag[label]; ok {
		return tag
	}
	return "chill"
}
