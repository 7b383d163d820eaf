package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/internal/mock"
	"github.com/akovalyov/daybook/models"
)

func newTestRemoteState(t *testing.T) (RemoteStateService, *mock.MockDriveGateway, *mock.MockAuthSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	drive := mock.NewMockDriveGateway(ctrl)
	session := mock.NewMockAuthSession(ctrl)

	return NewRemoteStateService(drive, session, logger.Nop()), drive, session
}

// nonEmptyState возвращает состояние, которое IsEmpty() считает непустым.
func nonEmptyState() models.AppState {
	return models.AppState{Notes: []models.Note{{ID: "n1", Text: "запись"}}}
}

// ── Fetch ─────────────────────────────────────────────────────────────────────

func TestFetch_ReturnsRemoteState(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	want := nonEmptyState()
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").
		Return(models.BackupRecord{ID: "file-1", Size: int64(len(raw))}, true, nil)
	drive.EXPECT().Download(gomock.Any(), "token", "file-1").Return(raw, nil)

	got, found, err := svc.Fetch(context.Background())

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

// TestFetch_NoBackup: отсутствие записи — не ошибка.
func TestFetch_NoBackup(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").Return(models.BackupRecord{}, false, nil)

	_, found, err := svc.Fetch(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
}

// TestFetch_LookupFailure: упавший запрос к диску — отдельная ошибка, а не
// «записи нет».
func TestFetch_LookupFailure(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").
		Return(models.BackupRecord{}, false, errors.New("503"))

	_, _, err := svc.Fetch(context.Background())

	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestFetch_CorruptBackup(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").
		Return(models.BackupRecord{ID: "file-1"}, true, nil)
	drive.EXPECT().Download(gomock.Any(), "token", "file-1").Return([]byte("{broken"), nil)

	_, _, err := svc.Fetch(context.Background())

	assert.ErrorIs(t, err, ErrRemoteStateCorrupt)
}

func TestFetch_SessionExpired(t *testing.T) {
	svc, _, session := newTestRemoteState(t)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("", ErrSessionExpired)

	_, _, err := svc.Fetch(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
}

// ── Push ──────────────────────────────────────────────────────────────────────

func TestPush_CreatesBackupOnFirstUse(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	state := nonEmptyState()
	want, err := json.Marshal(state)
	require.NoError(t, err)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").Return(models.BackupRecord{}, false, nil)
	drive.EXPECT().Create(gomock.Any(), "token", want).
		Return(models.BackupRecord{ID: "file-1"}, nil)

	require.NoError(t, svc.Push(context.Background(), state))
}

func TestPush_UpdatesExistingBackup(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	state := nonEmptyState()
	want, err := json.Marshal(state)
	require.NoError(t, err)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").
		Return(models.BackupRecord{ID: "file-1", Size: 2048}, true, nil)
	drive.EXPECT().Update(gomock.Any(), "token", "file-1", want).Return(nil)

	require.NoError(t, svc.Push(context.Background(), state))
}

// TestPush_EmptyOverwriteRefused: пустое локальное состояние не может
// затереть существенную удалённую копию. Запись не выполняется вовсе.
func TestPush_EmptyOverwriteRefused(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").
		Return(models.BackupRecord{ID: "file-1", Size: emptyOverwriteFloor + 1}, true, nil)

	err := svc.Push(context.Background(), models.AppState{})

	assert.ErrorIs(t, err, ErrEmptyOverwrite)
}

// TestPush_TrivialRemoteOverwritable: копия размером ровно в порог ещё
// считается тривиальной.
func TestPush_TrivialRemoteOverwritable(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").
		Return(models.BackupRecord{ID: "file-1", Size: emptyOverwriteFloor}, true, nil)
	drive.EXPECT().Update(gomock.Any(), "token", "file-1", gomock.Any()).Return(nil)

	require.NoError(t, svc.Push(context.Background(), models.AppState{}))
}

// TestPush_NonEmptyStateNotBlocked: замок срабатывает только на пустом
// локальном состоянии.
func TestPush_NonEmptyStateNotBlocked(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").
		Return(models.BackupRecord{ID: "file-1", Size: 10_000}, true, nil)
	drive.EXPECT().Update(gomock.Any(), "token", "file-1", gomock.Any()).Return(nil)

	require.NoError(t, svc.Push(context.Background(), nonEmptyState()))
}

// TestPush_LookupFailureBlocksPush: не зная, существует ли копия, писать
// нельзя.
func TestPush_LookupFailureBlocksPush(t *testing.T) {
	svc, drive, session := newTestRemoteState(t)

	session.EXPECT().EnsureValidToken(gomock.Any()).Return("token", nil)
	drive.EXPECT().FindBackup(gomock.Any(), "token").
		Return(models.BackupRecord{}, false, errors.New("timeout"))

	err := svc.Push(context.Background(), nonEmptyState())

	assert.ErrorIs(t, err, ErrLookupFailed)
}
