package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/goblinball/goblinball/internal/jobs"
	"github.com/goblinball/goblinball/internal/players"
)

// maxBatchSize caps a single generation request.
const maxBatchSize = 500

// PlayerGenerationJob mints rolled players into a league's free pool.
type PlayerGenerationJob struct {
	Repo    players.Repository
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	rng     *rand.Rand
}

// NewPlayerGenerationJob initialises the generation handler.
func NewPlayerGenerationJob(repo players.Repository, logger *slog.Logger, metrics *jobmetrics.Metrics) *PlayerGenerationJob {
	return &PlayerGenerationJob{
		Repo:    repo,
		Logger:  logger,
		Metrics: metrics,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Handle executes a generation batch.
func (j *PlayerGenerationJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil {
		return errors.New("player generation: handler not configured")
	}
	var payload PlayerGenerationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.LeagueID == "" {
		return asynq.SkipRetry
	}
	if payload.Count <= 0 {
		payload.Count = 1
	}
	if payload.Count > maxBatchSize {
		payload.Count = maxBatchSize
	}

	tracker := j.Metrics.Track("players_generate")
	minted := 0
	for i := 0; i < payload.Count; i++ {
		player := GeneratePlayer(j.rng, payload.LeagueID)
		if err := j.Repo.Insert(ctx, player); err != nil {
			j.Logger.Error("insert generated player",
				slog.String("league", payload.LeagueID),
				slog.Any("error", err))
			return tracker.End(err)
		}
		minted++
	}

	j.Metrics.AddPlayersGenerated(payload.LeagueID, minted)
	j.Logger.Info("player generation complete",
		slog.String("league", payload.LeagueID),
		slog.Int("count", minted))
	return tracker.End(nil)
}
