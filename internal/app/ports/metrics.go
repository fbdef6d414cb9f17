package ports

import "time"

type TurnOutcome string

const (
	TurnSuccess TurnOutcome = "success"
	TurnTimeout TurnOutcome = "timeout"
	TurnError   TurnOutcome = "error"
)

type TurnMetrics interface {
	RecordTurn(agentID string, outcome TurnOutcome, processing time.Duration, actions int)
	RecordAction(agentID string, success bool)
}
