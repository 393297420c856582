package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/mock"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminProfile = models.Profile{ID: 1, Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin}
	userProfile  = models.Profile{ID: 2, Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
)

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})
	signed, err := token.SignedString([]byte("whatever"))
	require.NoError(t, err)
	return signed
}

func newTestSession(t *testing.T) (*Session, *mock.MockSessionRepository) {
	t.Helper()
	repo := mock.NewMockSessionRepository(gomock.NewController(t))
	return New(repo, logger.Nop()), repo
}

func TestSession_StartsLoggedOut(t *testing.T) {
	s, _ := newTestSession(t)

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.Token())
	assert.Equal(t, models.Profile{}, s.Profile())
}

func TestSession_Set(t *testing.T) {
	s, repo := newTestSession(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	repo.EXPECT().Save(gomock.Any(), models.StoredSession{Token: "tok", Profile: adminProfile, SavedAt: now}).Return(nil)

	require.NoError(t, s.Set(context.Background(), " tok ", adminProfile))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "tok", s.Token())
	assert.Equal(t, adminProfile, s.Profile())
}

func TestSession_Set_RegularUserIsNotAdmin(t *testing.T) {
	s, repo := newTestSession(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.Set(context.Background(), "tok", userProfile))

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}

func TestSession_Set_EmptyToken(t *testing.T) {
	s, _ := newTestSession(t)

	assert.ErrorIs(t, s.Set(context.Background(), "  ", adminProfile), ErrEmptyToken)
	assert.False(t, s.IsAuthenticated())
}

func TestSession_Set_StoreFailureKeepsLoggedOut(t *testing.T) {
	s, repo := newTestSession(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	require.Error(t, s.Set(context.Background(), "tok", adminProfile))
	assert.False(t, s.IsAuthenticated())
}

func TestSession_Clear(t *testing.T) {
	s, repo := newTestSession(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Delete(gomock.Any()).Return(nil)

	require.NoError(t, s.Set(context.Background(), "tok", adminProfile))
	require.NoError(t, s.Clear(context.Background()))

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, models.Profile{}, s.Profile())
}

func TestSession_Clear_StoreFailureStillLogsOut(t *testing.T) {
	s, repo := newTestSession(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Delete(gomock.Any()).Return(errors.New("locked"))

	require.NoError(t, s.Set(context.Background(), "tok", adminProfile))

	assert.Error(t, s.Clear(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestSession_Restore(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	valid := tokenExpiringAt(t, now.Add(time.Hour))
	stale := tokenExpiringAt(t, now.Add(-time.Minute))

	tests := []struct {
		name       string
		stored     models.StoredSession
		loadErr    error
		wantDelete bool
		wantErr    bool
		wantAuth   bool
	}{
		{name: "valid token", stored: models.StoredSession{Token: valid, Profile: userProfile}, wantAuth: true},
		{name: "opaque token is kept", stored: models.StoredSession{Token: "opaque", Profile: userProfile}, wantAuth: true},
		{name: "expired token is dropped", stored: models.StoredSession{Token: stale, Profile: userProfile}, wantDelete: true},
		{name: "nothing stored", loadErr: store.ErrLocalSessionNotFound},
		{name: "store failure", loadErr: errors.New("corrupt db"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newTestSession(t)
			s.now = func() time.Time { return now }

			repo.EXPECT().Load(gomock.Any()).Return(tt.stored, tt.loadErr)
			if tt.wantDelete {
				repo.EXPECT().Delete(gomock.Any()).Return(nil)
			}

			err := s.Restore(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantAuth, s.IsAuthenticated())
			if tt.wantAuth {
				assert.Equal(t, tt.stored.Profile, s.Profile())
			}
		})
	}
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s, repo := newTestSession(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().Delete(gomock.Any()).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Set(context.Background(), "tok", adminProfile)
			_ = s.Clear(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = s.IsAdmin()
			_ = s.Token()
			_ = s.Profile()
		}()
	}
	wg.Wait()
}
