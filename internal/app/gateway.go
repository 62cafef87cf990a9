package app

import (
	"context"

	"github.com/elavarasan-maker/RETAILIQO/internal/gemini"
	"github.com/elavarasan-maker/RETAILIQO/internal/quotes"
)

// AIGateway adapts the gemini client to the chat interface the negotiation
// workflow and the assistant consume.
type AIGateway struct {
	Client *gemini.Client
}

func (g *AIGateway) Reply(ctx context.Context, history []quotes.Message, message string) (string, error) {
	turns := make([]gemini.Turn, 0, len(history))
	for _, m := range history {
		turns = append(turns, gemini.Turn{Role: m.Role, Text: m.Text})
	}
	return g.Client.ChatReply(ctx, turns, message)
}
