package action

import (
	"context"

	"gridwar/internal/domain/game"
)

type sendMessageHandler struct{}

// Execute records a diplomatic message as a match event. Delivery is the
// event stream; there is no separate mailbox.
func (sendMessageHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) game.ActionResult {
	text, ok := stringParam(ac, "message")
	if !ok {
		return failure("missing parameter: message")
	}
	recipient, _ := stringParam(ac, "to")
	ac.State.LogEvent("message", map[string]any{
		"from":    ac.Action.AgentID,
		"to":      recipient,
		"message": text,
	})
	return success(map[string]any{"delivered": true})
}
