package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/repository/memory"
	"github.com/benogren/brand-agent/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestSessionLifecycle(t *testing.T) {
	uc := usecase.NewSessionUseCase(memory.New())
	ctx := context.Background()

	session, err := uc.Create(ctx, "user1", map[string]any{"industry": "food_tech"})
	gt.NoError(t, err).Required()
	gt.Value(t, session.ID).NotEqual("")

	loaded, err := uc.Get(ctx, session.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, loaded.ID).Equal(session.ID)

	sessions, err := uc.List(ctx, "user1", 0)
	gt.NoError(t, err).Required()
	gt.Array(t, sessions).Length(1)

	stats, err := uc.Statistics(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, stats.TotalSessions).Equal(1)

	gt.NoError(t, uc.Delete(ctx, session.ID))

	_, err = uc.Get(ctx, session.ID)
	gt.Bool(t, errors.Is(err, interfaces.ErrSessionNotFound)).True()
}

func TestSessionRequiresID(t *testing.T) {
	uc := usecase.NewSessionUseCase(memory.New())
	ctx := context.Background()

	_, err := uc.Get(ctx, "")
	gt.Error(t, err)

	gt.Error(t, uc.Delete(ctx, ""))
}
