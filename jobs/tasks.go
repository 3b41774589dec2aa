package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskPlayersGenerate is the task type for minting players into a league.
	TaskPlayersGenerate = "players:generate"
)

// PlayerGenerationPayload describes a batch of players to mint.
type PlayerGenerationPayload struct {
	LeagueID string `json:"leagueId"`
	Count    int    `json:"count"`
}

// NewPlayerGenerationTask constructs an Asynq task.
func NewPlayerGenerationTask(payload PlayerGenerationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPlayersGenerate, data), nil
}
