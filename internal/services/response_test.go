package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"groupschedule/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResponseService(s *memStore, usage domain.UsageRecorder) domain.ResponseService {
	return NewResponseService(s.eventRepo(), s.dateOptionRepo(), s.responseRepo(), usage, 5*time.Second)
}

func TestResponseService_SubmitResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("stores one row per answer under the trimmed name", func(t *testing.T) {
		s := newMemStore()
		e, opts := s.seedEvent("abc", "pw", "Party", "2025-01-01", "2025-01-02")
		usage := &countingUsage{}
		svc := newTestResponseService(s, usage)

		err := svc.SubmitResponse(ctx, "abc", domain.ResponseInput{
			Name: "  Taro ",
			Answers: map[string]domain.Answer{
				opts[0].ID: {Status: domain.StatusOK, Note: strPtr("after 7pm")},
				opts[1].ID: {Status: domain.StatusNG, Note: strPtr("  ")},
			},
		})
		require.NoError(t, err)
		rows := s.responsesOf(e.ID, "Taro")
		require.Len(t, rows, 2)
		byOption := map[string]*domain.Response{}
		for _, r := range rows {
			byOption[r.DateOptionID] = r
		}
		assert.Equal(t, domain.StatusOK, byOption[opts[0].ID].Status)
		require.NotNil(t, byOption[opts[0].ID].Note)
		assert.Equal(t, "after 7pm", *byOption[opts[0].ID].Note)
		assert.Nil(t, byOption[opts[1].ID].Note)
		assert.Equal(t, 1, usage.responses)
	})

	t.Run("resubmitting the same answers is idempotent", func(t *testing.T) {
		s := newMemStore()
		e, opts := s.seedEvent("abc", "pw", "Party", "2025-01-01", "2025-01-02")
		svc := newTestResponseService(s, nil)
		in := domain.ResponseInput{
			Name: "Taro",
			Answers: map[string]domain.Answer{
				opts[0].ID: {Status: domain.StatusOK},
				opts[1].ID: {Status: domain.StatusMaybe},
			},
		}
		require.NoError(t, svc.SubmitResponse(ctx, "abc", in))
		require.NoError(t, svc.SubmitResponse(ctx, "abc", in))
		assert.Len(t, s.responsesOf(e.ID, "Taro"), 2)
	})

	t.Run("smaller submission removes absent answers", func(t *testing.T) {
		s := newMemStore()
		e, opts := s.seedEvent("abc", "pw", "Party", "2025-01-01", "2025-01-02")
		svc := newTestResponseService(s, nil)
		require.NoError(t, svc.SubmitResponse(ctx, "abc", domain.ResponseInput{
			Name: "Taro",
			Answers: map[string]domain.Answer{
				opts[0].ID: {Status: domain.StatusOK},
				opts[1].ID: {Status: domain.StatusNG},
			},
		}))
		require.NoError(t, svc.SubmitResponse(ctx, "abc", domain.ResponseInput{
			Name:    "Taro",
			Answers: map[string]domain.Answer{opts[0].ID: {Status: domain.StatusMaybe}},
		}))
		rows := s.responsesOf(e.ID, "Taro")
		require.Len(t, rows, 1)
		assert.Equal(t, opts[0].ID, rows[0].DateOptionID)
		assert.Equal(t, domain.StatusMaybe, rows[0].Status)
	})

	t.Run("other participants are untouched", func(t *testing.T) {
		s := newMemStore()
		e, opts := s.seedEvent("abc", "pw", "Party", "2025-01-01")
		svc := newTestResponseService(s, nil)
		for _, name := range []string{"Taro", "Hanako"} {
			require.NoError(t, svc.SubmitResponse(ctx, "abc", domain.ResponseInput{
				Name:    name,
				Answers: map[string]domain.Answer{opts[0].ID: {Status: domain.StatusOK}},
			}))
		}
		require.NoError(t, svc.SubmitResponse(ctx, "abc", domain.ResponseInput{
			Name:    "Taro",
			Answers: map[string]domain.Answer{opts[0].ID: {Status: domain.StatusNG}},
		}))
		assert.Len(t, s.responsesOf(e.ID, "Hanako"), 1)
		assert.Len(t, s.responsesOf(e.ID, ""), 2)
	})

	tests := []struct {
		name    string
		setup   func(s *memStore)
		input   func(opts []*domain.DateOption) domain.ResponseInput
		public  string
		wantErr error
	}{
		{
			name:   "blank name",
			public: "abc",
			input: func(opts []*domain.DateOption) domain.ResponseInput {
				return domain.ResponseInput{Name: "   ", Answers: map[string]domain.Answer{opts[0].ID: {Status: domain.StatusOK}}}
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:   "invalid status",
			public: "abc",
			input: func(opts []*domain.DateOption) domain.ResponseInput {
				return domain.ResponseInput{Name: "Taro", Answers: map[string]domain.Answer{opts[0].ID: {Status: "yes"}}}
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:   "option from another event",
			public: "abc",
			input: func(opts []*domain.DateOption) domain.ResponseInput {
				return domain.ResponseInput{Name: "Taro", Answers: map[string]domain.Answer{"opt-999": {Status: domain.StatusOK}}}
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:   "unknown event",
			public: "zzz",
			input: func(opts []*domain.DateOption) domain.ResponseInput {
				return domain.ResponseInput{Name: "Taro", Answers: map[string]domain.Answer{opts[0].ID: {Status: domain.StatusOK}}}
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:   "storage error",
			setup:  func(s *memStore) { s.replaceErr = errors.New("db down") },
			public: "abc",
			input: func(opts []*domain.DateOption) domain.ResponseInput {
				return domain.ResponseInput{Name: "Taro", Answers: map[string]domain.Answer{opts[0].ID: {Status: domain.StatusOK}}}
			},
			wantErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMemStore()
			e, opts := s.seedEvent("abc", "pw", "Party", "2025-01-01")
			if tt.setup != nil {
				tt.setup(s)
			}
			usage := &countingUsage{}
			svc := newTestResponseService(s, usage)

			err := svc.SubmitResponse(ctx, tt.public, tt.input(opts))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, s.responsesOf(e.ID, ""))
			assert.Zero(t, usage.responses)
		})
	}
}

func TestSubmitThenGet_Scenario(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	events := newTestEventService(s, nil)
	responses := newTestResponseService(s, nil)

	e, _, err := events.CreateEvent(ctx, domain.EventInput{
		Title:       "Lunch",
		Passphrase:  "pw",
		DateOptions: []domain.DateOptionInput{{Date: "2025-01-08"}, {Date: "2025-01-09"}},
	})
	require.NoError(t, err)
	view, err := events.GetEvent(ctx, e.PublicID)
	require.NoError(t, err)
	opt1, opt2 := view.DateOptions[0].ID, view.DateOptions[1].ID

	require.NoError(t, responses.SubmitResponse(ctx, e.PublicID, domain.ResponseInput{
		Name: "Taro",
		Answers: map[string]domain.Answer{
			opt1: {Status: domain.StatusOK},
			opt2: {Status: domain.StatusNG},
		},
	}))
	view, err = events.GetEvent(ctx, e.PublicID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCount{OK: 1}, view.Summary[opt1])
	assert.Equal(t, domain.StatusCount{NG: 1}, view.Summary[opt2])
	assert.Equal(t, []string{opt1}, view.BestOptions)

	require.NoError(t, responses.SubmitResponse(ctx, e.PublicID, domain.ResponseInput{
		Name:    "Taro",
		Answers: map[string]domain.Answer{opt1: {Status: domain.StatusMaybe}},
	}))
	view, err = events.GetEvent(ctx, e.PublicID)
	require.NoError(t, err)
	require.Len(t, view.Participants, 1)
	assert.Equal(t, map[string]domain.Answer{opt1: {Status: domain.StatusMaybe}}, view.Participants[0].Answers)
	assert.Equal(t, domain.StatusCount{}, view.Summary[opt2])
	assert.Empty(t, view.BestOptions)
}
