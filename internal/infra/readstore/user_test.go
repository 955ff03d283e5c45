//go:build unit

package readstore

import (
	"context"
	"testing"

	"rentalhub/internal/infra"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestFindByID(t *testing.T) {
	row := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name      string
		mockRow   sqlc.Users
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:    "success",
			mockRow: row,
		},
		{
			name:      "not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(tt.mockRow, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			view, err := store.FindByID(context.Background(), row.ID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, view.ID)
				assert.Equal(t, row.Name, view.Name)
				require.NotNil(t, view.Email)
				assert.Equal(t, row.Email.String, *view.Email)
				assert.Nil(t, view.Image)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindDomainByID(t *testing.T) {
	row := builder.NewUserBuilder().WithName("Host").BuildInfra()

	mockQueries := new(MockUserReadQueries)
	mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

	u, err := NewUserReadStore(mockQueries, nil).FindDomainByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, u.ID())
	assert.Equal(t, "Host", u.Name().String())
}
