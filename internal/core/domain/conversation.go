package domain

// Message is one entry in the sequence sent to the completion backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const personaPreamble = "You are a helpful chatbot. "

// toneInstructions adds a behavioral hint to the system message for known
// tones. Unrecognized tones get no suffix.
var toneInstructions = map[string]string{
	"joy":        "Be upbeat and positive.",
	"sadness":    "Be empathetic and gentle.",
	"anger":      "Be calm and neutral.",
	"fear":       "Be reassuring.",
	"analytical": "Be logical and precise.",
	"neutral":    "Be neutral and informative.",
}

// BuildMessages assembles the completion request sequence: one system
// instruction followed by the turns in submitted order. Turns carry no
// explicit role; the caller must alternate starting with the user, and the
// role is derived from position (even index = user, odd = assistant).
func BuildMessages(turns []string, tone string) []Message {
	messages := make([]Message, 0, len(turns)+1)
	messages = append(messages, Message{
		Role:    RoleSystem,
		Content: personaPreamble + toneInstructions[tone],
	})

	for i, turn := range turns {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		messages = append(messages, Message{Role: role, Content: turn})
	}
	return messages
}
