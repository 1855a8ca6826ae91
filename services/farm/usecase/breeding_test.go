package usecase

import (
	"context"
	"testing"
	"time"

	"rabbitry/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBreedingRepo struct {
	domain.BreedingRepo
	updateResult *domain.BreedingRecord
	updateErr    error
}

func (s *stubBreedingRepo) UpdateBreedingRecord(ctx context.Context, id, farmID string, payload *domain.BreedingUpdatePayload) (*domain.BreedingRecord, error) {
	return s.updateResult, s.updateErr
}

type fakeNotifier struct {
	farmID string
	doeID  string
	reason string
	calls  int
}

func (f *fakeNotifier) NotifyCulling(farmID, doeID, reason string) {
	f.farmID = farmID
	f.doeID = doeID
	f.reason = reason
	f.calls++
}

func TestUpdateBreedingRecordNotifiesOnCullingAdvice(t *testing.T) {
	notifier := &fakeNotifier{}
	repo := &stubBreedingRepo{
		updateResult: &domain.BreedingRecord{
			ID:            "rec-1",
			DoeID:         "doe-1",
			CullingAdvice: "litter of 3 kits is outside the expected range",
		},
	}
	uc := NewBreedingUseCase(repo, notifier, time.Second)

	_, err := uc.UpdateBreedingRecord(context.Background(), "rec-1", "farm-1", &domain.BreedingUpdatePayload{})
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "farm-1", notifier.farmID)
	assert.Equal(t, "doe-1", notifier.doeID)
	assert.Equal(t, repo.updateResult.CullingAdvice, notifier.reason)
}

func TestUpdateBreedingRecordNoAdviceNoNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	repo := &stubBreedingRepo{
		updateResult: &domain.BreedingRecord{ID: "rec-1", DoeID: "doe-1"},
	}
	uc := NewBreedingUseCase(repo, notifier, time.Second)

	_, err := uc.UpdateBreedingRecord(context.Background(), "rec-1", "farm-1", &domain.BreedingUpdatePayload{})
	require.NoError(t, err)
	assert.Zero(t, notifier.calls)
}

func TestUpdateBreedingRecordErrorSkipsNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	repo := &stubBreedingRepo{
		updateErr: domain.NewValidationError("breeding record not found"),
	}
	uc := NewBreedingUseCase(repo, notifier, time.Second)

	_, err := uc.UpdateBreedingRecord(context.Background(), "rec-1", "farm-1", &domain.BreedingUpdatePayload{})
	require.Error(t, err)
	assert.Zero(t, notifier.calls)
}

func TestUpdateBreedingRecordNilNotifier(t *testing.T) {
	repo := &stubBreedingRepo{
		updateResult: &domain.BreedingRecord{ID: "rec-1", CullingAdvice: "advice"},
	}
	uc := NewBreedingUseCase(repo, nil, time.Second)

	_, err := uc.UpdateBreedingRecord(context.Background(), "rec-1", "farm-1", &domain.BreedingUpdatePayload{})
	require.NoError(t, err)
}
