package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lunch-break-service/internal/model"
	"lunch-break-service/internal/repository"
	"lunch-break-service/internal/service"
	"lunch-break-service/internal/service/mocks"
)

func teamID(v int64) *int64 { return &v }

func requireAppError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var appErr *service.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, code, appErr.Code)
}

func TestPersonService_CreatePerson(t *testing.T) {
	input := model.Person{Name: " Alice ", TeamID: teamID(1), Email: "a@x.com", Contact: "123"}
	stored := model.Person{ID: 7, Name: "Alice", TeamID: teamID(1), Email: "a@x.com", Contact: "123"}

	tests := []struct {
		name       string
		input      model.Person
		setupMocks func(pr *mocks.PersonRepository)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "Success",
			input: input,
			setupMocks: func(pr *mocks.PersonRepository) {
				pr.On("CreatePerson", mock.Anything, model.Person{
					Name: "Alice", TeamID: teamID(1), Email: "a@x.com", Contact: "123",
				}).Return(stored, nil)
			},
		},
		{
			name:       "Fail: Empty name",
			input:      model.Person{Name: "   ", Email: "a@x.com"},
			setupMocks: func(pr *mocks.PersonRepository) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   service.CodeBadRequest,
		},
		{
			name:  "Fail: Duplicate email",
			input: input,
			setupMocks: func(pr *mocks.PersonRepository) {
				pr.On("CreatePerson", mock.Anything, mock.Anything).
					Return(model.Person{}, fmt.Errorf("%w: persons_email_key", repository.ErrPersonExists))
			},
			wantStatus: http.StatusConflict,
			wantCode:   service.CodePersonExists,
		},
		{
			name:  "Fail: Storage error",
			input: input,
			setupMocks: func(pr *mocks.PersonRepository) {
				pr.On("CreatePerson", mock.Anything, mock.Anything).
					Return(model.Person{}, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   service.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := mocks.NewPersonRepository(t)
			tt.setupMocks(pr)

			svc := service.NewPersonService(pr)
			got, err := svc.CreatePerson(context.Background(), tt.input)

			if tt.wantCode != "" {
				requireAppError(t, err, tt.wantStatus, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, got)
			assert.False(t, got.OnLunchBreak)
			assert.Nil(t, got.Started)
		})
	}
}

func TestPersonService_GetPerson(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		pr := mocks.NewPersonRepository(t)
		pr.On("GetPersonByID", mock.Anything, int64(1)).Return(model.Person{ID: 1, Name: "Alice"}, nil)

		got, err := service.NewPersonService(pr).GetPerson(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("Fail: Not found", func(t *testing.T) {
		pr := mocks.NewPersonRepository(t)
		pr.On("GetPersonByID", mock.Anything, int64(404)).Return(model.Person{}, repository.ErrPersonNotFound)

		_, err := service.NewPersonService(pr).GetPerson(context.Background(), 404)
		requireAppError(t, err, http.StatusNotFound, service.CodeNotFound)
		assert.True(t, service.IsNotFound(err))
		assert.EqualError(t, err, "Person Not Found")
	})
}

func TestPersonService_SetLunchBreak(t *testing.T) {
	fixed := time.Date(2024, 5, 17, 12, 30, 0, 0, time.FixedZone("SGT", 8*60*60))
	clock := func() time.Time { return fixed }

	t.Run("Start break records current time in UTC", func(t *testing.T) {
		pr := mocks.NewPersonRepository(t)
		pr.On("SetLunchBreak", mock.Anything, int64(1), true, mock.MatchedBy(func(ts *time.Time) bool {
			return ts != nil && ts.Equal(fixed) && ts.Location() == time.UTC
		})).Return(func(_ context.Context, id int64, on bool, started *time.Time) (model.Person, error) {
			return model.Person{ID: id, Name: "Alice", OnLunchBreak: on, Started: started}, nil
		})

		got, err := service.NewPersonService(pr, service.WithClock(clock)).SetLunchBreak(context.Background(), 1, true)
		require.NoError(t, err)
		assert.True(t, got.OnLunchBreak)
		require.NotNil(t, got.Started)
		assert.True(t, fixed.Equal(*got.Started))
	})

	t.Run("Start break uses wall clock by default", func(t *testing.T) {
		before := time.Now()
		pr := mocks.NewPersonRepository(t)
		pr.On("SetLunchBreak", mock.Anything, int64(1), true, mock.Anything).
			Return(func(_ context.Context, id int64, on bool, started *time.Time) (model.Person, error) {
				return model.Person{ID: id, OnLunchBreak: on, Started: started}, nil
			})

		got, err := service.NewPersonService(pr).SetLunchBreak(context.Background(), 1, true)
		require.NoError(t, err)
		require.NotNil(t, got.Started)
		assert.False(t, got.Started.Before(before))
	})

	t.Run("End break clears start time", func(t *testing.T) {
		pr := mocks.NewPersonRepository(t)
		pr.On("SetLunchBreak", mock.Anything, int64(1), false, (*time.Time)(nil)).
			Return(model.Person{ID: 1, OnLunchBreak: false}, nil)

		got, err := service.NewPersonService(pr, service.WithClock(clock)).SetLunchBreak(context.Background(), 1, false)
		require.NoError(t, err)
		assert.False(t, got.OnLunchBreak)
		assert.Nil(t, got.Started)
	})

	t.Run("Fail: Not found", func(t *testing.T) {
		pr := mocks.NewPersonRepository(t)
		pr.On("SetLunchBreak", mock.Anything, int64(9), true, mock.Anything).
			Return(model.Person{}, repository.ErrPersonNotFound)

		_, err := service.NewPersonService(pr).SetLunchBreak(context.Background(), 9, true)
		requireAppError(t, err, http.StatusNotFound, service.CodeNotFound)
	})
}

func TestPersonService_DeletePerson(t *testing.T) {
	tests := []struct {
		name       string
		repoErr    error
		wantStatus int
	}{
		{name: "Success"},
		{name: "Fail: Not found", repoErr: repository.ErrPersonNotFound, wantStatus: http.StatusNotFound},
		{name: "Fail: Storage error", repoErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := mocks.NewPersonRepository(t)
			pr.On("DeletePerson", mock.Anything, int64(3)).Return(tt.repoErr)

			err := service.NewPersonService(pr).DeletePerson(context.Background(), 3)
			if tt.repoErr == nil {
				assert.NoError(t, err)
				return
			}
			var appErr *service.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.Status)
		})
	}
}
