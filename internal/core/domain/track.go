package domain

// Track is the canonical shape both catalog lookups normalize into.
// Artist is nil when the upstream record carried no usable artist name;
// consumers treat that as "unknown", never as an error.
type Track struct {
	Name   string  `json:"name"`
	Artist *string `json:"artist,omitempty"`
	URL    string  `json:"url"`
}
