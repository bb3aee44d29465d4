package ports

import "context"

// ReplyGenerator produces a single assistant reply for a window of prior
// turns. Turns follow the positional role contract of domain.BuildMessages.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, turns []string, tone string) (string, error)
}
