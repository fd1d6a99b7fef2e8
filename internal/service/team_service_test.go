package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lunch-break-service/internal/model"
	"lunch-break-service/internal/repository"
	"lunch-break-service/internal/service"
	"lunch-break-service/internal/service/mocks"
)

func passThroughTx(tm *mocks.TransactionManager) {
	tm.On("RunReadOnly", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	})
}

func TestTeamService_CreateTeam(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		setupMocks func(tr *mocks.TeamRepository)
		want       model.Team
		wantStatus int
	}{
		{
			name:  "Success",
			input: "Engineering",
			setupMocks: func(tr *mocks.TeamRepository) {
				tr.On("CreateTeam", mock.Anything, "Engineering").Return(model.Team{ID: 1, Name: "Engineering"}, nil)
			},
			want: model.Team{ID: 1, Name: "Engineering"},
		},
		{
			name:  "Success: name is trimmed",
			input: "  Engineering\n",
			setupMocks: func(tr *mocks.TeamRepository) {
				tr.On("CreateTeam", mock.Anything, "Engineering").Return(model.Team{ID: 2, Name: "Engineering"}, nil)
			},
			want: model.Team{ID: 2, Name: "Engineering"},
		},
		{
			name:       "Fail: Empty name",
			input:      "",
			setupMocks: func(tr *mocks.TeamRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "Fail: Storage error",
			input: "Engineering",
			setupMocks: func(tr *mocks.TeamRepository) {
				tr.On("CreateTeam", mock.Anything, "Engineering").Return(model.Team{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mocks.NewTeamRepository(t)
			tt.setupMocks(tr)

			svc := service.NewTeamService(tr, mocks.NewMemberLister(t), mocks.NewTransactionManager(t))
			got, err := svc.CreateTeam(context.Background(), tt.input)

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	team := model.Team{ID: 1, Name: "SAP Data Intelligence"}
	members := []model.Person{
		{ID: 1, Name: "Mark", TeamID: teamID(1)},
		{ID: 2, Name: "Shide", TeamID: teamID(1)},
	}

	t.Run("Success", func(t *testing.T) {
		tr := mocks.NewTeamRepository(t)
		ml := mocks.NewMemberLister(t)
		tm := mocks.NewTransactionManager(t)
		passThroughTx(tm)
		tr.On("GetTeamByID", mock.Anything, int64(1)).Return(team, nil)
		ml.On("ListByTeam", mock.Anything, int64(1)).Return(members, nil)

		got, err := service.NewTeamService(tr, ml, tm).GetTeam(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, team, got.Team)
		assert.Equal(t, members, got.Members)
	})

	t.Run("Fail: Not found skips member lookup", func(t *testing.T) {
		tr := mocks.NewTeamRepository(t)
		ml := mocks.NewMemberLister(t)
		tm := mocks.NewTransactionManager(t)
		passThroughTx(tm)
		tr.On("GetTeamByID", mock.Anything, int64(5)).Return(model.Team{}, repository.ErrTeamNotFound)

		_, err := service.NewTeamService(tr, ml, tm).GetTeam(context.Background(), 5)
		requireAppError(t, err, http.StatusNotFound, service.CodeNotFound)
		ml.AssertNotCalled(t, "ListByTeam", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Member query error", func(t *testing.T) {
		tr := mocks.NewTeamRepository(t)
		ml := mocks.NewMemberLister(t)
		tm := mocks.NewTransactionManager(t)
		passThroughTx(tm)
		tr.On("GetTeamByID", mock.Anything, int64(1)).Return(team, nil)
		ml.On("ListByTeam", mock.Anything, int64(1)).Return(nil, errors.New("timeout"))

		_, err := service.NewTeamService(tr, ml, tm).GetTeam(context.Background(), 1)
		requireAppError(t, err, http.StatusInternalServerError, service.CodeInternal)
	})
}
