package jobs_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goblinball/goblinball/internal/players"
	"github.com/goblinball/goblinball/internal/shared"
	"github.com/goblinball/goblinball/jobs"
)

func TestGeneratePlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		player := jobs.GeneratePlayer(rng, "league-1")

		require.NotEmpty(t, player.Name)
		require.Equal(t, "league-1", player.LeagueID)
		require.Empty(t, player.TeamID)
		require.True(t, player.Gender.Valid())
		require.True(t, player.Race.Valid())
		require.True(t, player.Class.Valid())
		require.True(t, player.Handedness.Valid())

		// 4d6 drop lowest bounds every score to [3, 18].
		for _, score := range []int{
			player.Abilities.Strength, player.Abilities.Dexterity,
			player.Abilities.Constitution, player.Abilities.Intelligence,
			player.Abilities.Wisdom, player.Abilities.Charisma,
		} {
			require.GreaterOrEqual(t, score, 3)
			require.LessOrEqual(t, score, 18)
		}

		require.GreaterOrEqual(t, player.MaxHealth, 1)
		require.Equal(t, player.MaxHealth, player.Health)
		require.LessOrEqual(t, len(player.Traits), 2)
		require.LessOrEqual(t, len(player.HiddenTraits), 1)
		require.Greater(t, player.Cost, int64(0))
		for _, trait := range player.Traits {
			require.True(t, trait.Valid())
		}
	}
}

type recordingRepo struct {
	inserted []players.Player
}

func (r *recordingRepo) Insert(ctx context.Context, player *players.Player) error {
	player.ID = primitive.NewObjectID()
	r.inserted = append(r.inserted, *player)
	return nil
}

func (r *recordingRepo) FindByID(ctx context.Context, id string) (*players.Player, error) {
	return nil, shared.ErrNotFound
}

func (r *recordingRepo) FindByLeague(ctx context.Context, leagueID string) ([]players.Player, error) {
	return nil, nil
}

func (r *recordingRepo) FindByTeam(ctx context.Context, teamID string) ([]players.Player, error) {
	return nil, nil
}

func (r *recordingRepo) Find(ctx context.Context, query, sort bson.D) ([]players.Player, error) {
	return nil, nil
}

func (r *recordingRepo) Update(ctx context.Context, player *players.Player) error {
	return nil
}

func TestPlayerGenerationHandle(t *testing.T) {
	repo := &recordingRepo{}
	job := jobs.NewPlayerGenerationJob(repo, slog.Default(), nil)

	payload, err := json.Marshal(jobs.PlayerGenerationPayload{LeagueID: "league-1", Count: 12})
	require.NoError(t, err)

	err = job.Handle(context.Background(), asynq.NewTask(jobs.TaskPlayersGenerate, payload))
	require.NoError(t, err)
	require.Len(t, repo.inserted, 12)
	for _, player := range repo.inserted {
		require.Equal(t, "league-1", player.LeagueID)
	}
}

func TestPlayerGenerationRejectsMissingLeague(t *testing.T) {
	repo := &recordingRepo{}
	job := jobs.NewPlayerGenerationJob(repo, slog.Default(), nil)

	payload, err := json.Marshal(jobs.PlayerGenerationPayload{Count: 3})
	require.NoError(t, err)

	err = job.Handle(context.Background(), asynq.NewTask(jobs.TaskPlayersGenerate, payload))
	require.ErrorIs(t, err, asynq.SkipRetry)
	require.Empty(t, repo.inserted)
}
