package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"
	"kyc-credential-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEventLog_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEventRepository(ctrl)
	svc := NewEventLogService(repo, zerolog.Nop())

	var captured *domain.WebhookEvent
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.WebhookEvent) error {
			captured = e
			return nil
		})

	event := &ports.InboundEvent{
		Provider:      "sumsub",
		Type:          domain.EventApplicantCreated,
		ApplicantID:   "A1",
		CorrelationID: "issuer-7",
		RawPayload:    []byte(`{"applicantId":"A1"}`),
		Signature:     "9b2c1a77e3",
		ReceivedAt:    time.Now().UTC(),
	}

	id := svc.Record(context.Background(), event)

	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, id, event.EventID, "event id is assigned back onto the inbound event")
	assert.Equal(t, domain.EventStatusReceived, captured.Status)
	assert.Equal(t, "A1", captured.ApplicantID)
	assert.Equal(t, event.RawPayload, captured.RawPayload)
	assert.Equal(t, "9b2c1a77e3", captured.Signature, "verified digest is kept on the audit row")
}

func TestEventLog_Record_BestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEventRepository(ctrl)
	svc := NewEventLogService(repo, zerolog.Nop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	id := svc.Record(context.Background(), &ports.InboundEvent{Type: domain.EventApplicantPending, ApplicantID: "A1"})
	assert.NotEqual(t, uuid.Nil, id, "record failure must not block processing")
}

func TestEventLog_MarkProcessedAndError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockEventRepository(ctrl)
	svc := NewEventLogService(repo, zerolog.Nop())
	id := uuid.New()

	repo.EXPECT().MarkProcessed(gomock.Any(), id).Return(nil)
	svc.MarkProcessed(context.Background(), id)

	repo.EXPECT().MarkError(gomock.Any(), id, "detail fetch timed out").Return(nil)
	svc.MarkError(context.Background(), id, "detail fetch timed out")

	// Failures are swallowed.
	repo.EXPECT().MarkProcessed(gomock.Any(), id).Return(errors.New("db down"))
	svc.MarkProcessed(context.Background(), id)
}
