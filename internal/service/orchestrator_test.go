package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/internal/mock"
	"github.com/akovalyov/daybook/models"
)

const testDebounce = 25 * time.Millisecond

func newTestOrchestrator(t *testing.T, connected bool) (SyncOrchestrator, *mock.MockRemoteStateService, *mock.MockStateRepository, *mock.MockAuthSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStateService(ctrl)
	states := mock.NewMockStateRepository(ctrl)
	session := mock.NewMockAuthSession(ctrl)

	session.EXPECT().Connected(gomock.Any()).Return(connected)
	o := NewSyncOrchestrator(remote, states, session, testDebounce, logger.Nop())
	t.Cleanup(o.Close)

	return o, remote, states, session
}

// ── Connect ───────────────────────────────────────────────────────────────────

// TestConnect_ReplacesLocalWithRemote: подключение тянет удалённое
// состояние и целиком замещает локальное.
func TestConnect_ReplacesLocalWithRemote(t *testing.T) {
	o, remote, states, _ := newTestOrchestrator(t, true)

	remoteState := models.AppState{Notes: []models.Note{{ID: "n1", Text: "с диска"}}}
	remote.EXPECT().Fetch(gomock.Any()).Return(remoteState, true, nil)
	states.EXPECT().SaveState(gomock.Any(), remoteState).Return(nil)

	require.NoError(t, o.Connect(context.Background()))
	assert.Equal(t, models.SyncOK, o.Status())
	assert.NoError(t, o.LastError())
}

// TestConnect_SeedsRemoteWhenAbsent: первый вход с нового аккаунта без
// копии на диске загружает туда локальное состояние.
func TestConnect_SeedsRemoteWhenAbsent(t *testing.T) {
	o, remote, states, _ := newTestOrchestrator(t, true)

	local := models.AppState{Notes: []models.Note{{ID: "n1", Text: "локальная"}}}
	remote.EXPECT().Fetch(gomock.Any()).Return(models.AppState{}, false, nil)
	states.EXPECT().LoadState(gomock.Any()).Return(local, true, nil)
	remote.EXPECT().Push(gomock.Any(), local).Return(nil)

	require.NoError(t, o.Connect(context.Background()))
	assert.Equal(t, models.SyncOK, o.Status())
}

func TestConnect_FetchFailure(t *testing.T) {
	o, remote, _, _ := newTestOrchestrator(t, true)

	remote.EXPECT().Fetch(gomock.Any()).Return(models.AppState{}, false, errors.New("timeout"))

	require.Error(t, o.Connect(context.Background()))
	assert.Equal(t, models.SyncError, o.Status())
	assert.Error(t, o.LastError())
}

// TestConnect_SessionExpiredDisconnects: конец сессии переводит статус в
// disconnected, а не в error.
func TestConnect_SessionExpiredDisconnects(t *testing.T) {
	o, remote, _, _ := newTestOrchestrator(t, true)

	remote.EXPECT().Fetch(gomock.Any()).Return(models.AppState{}, false, ErrSessionExpired)

	err := o.Connect(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, models.SyncDisconnected, o.Status())
}

// ── Apply и дебаунс ───────────────────────────────────────────────────────────

// TestApply_SavesLocallyAndDebouncesPush: серия правок даёт ровно одну
// отправку после паузы.
func TestApply_SavesLocallyAndDebouncesPush(t *testing.T) {
	o, remote, states, _ := newTestOrchestrator(t, true)

	last := models.AppState{Notes: []models.Note{{ID: "n3", Text: "третья"}}}

	states.EXPECT().SaveState(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	states.EXPECT().LoadState(gomock.Any()).Return(last, true, nil)

	pushed := make(chan models.AppState, 1)
	remote.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, state models.AppState) error {
			pushed <- state
			return nil
		})

	ctx := context.Background()
	require.NoError(t, o.Apply(ctx, models.AppState{Notes: []models.Note{{ID: "n1"}}}))
	require.NoError(t, o.Apply(ctx, models.AppState{Notes: []models.Note{{ID: "n2"}}}))
	require.NoError(t, o.Apply(ctx, last))

	select {
	case got := <-pushed:
		// уезжает последнее сохранённое состояние, промежуточные
		// схлопываются
		assert.Equal(t, last, got)
	case <-time.After(20 * testDebounce):
		t.Fatal("debounced push never fired")
	}
}

// TestApply_Disconnected: без привязанного аккаунта правка сохраняется
// локально и никакой отправки не планируется.
func TestApply_Disconnected(t *testing.T) {
	o, _, states, _ := newTestOrchestrator(t, false)

	states.EXPECT().SaveState(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, o.Apply(context.Background(), models.AppState{}))
	assert.Equal(t, models.SyncDisconnected, o.Status())

	time.Sleep(4 * testDebounce) // отправка не должна случиться
}

// ── SyncNow и одиночный проход ────────────────────────────────────────────────

func TestSyncNow_PushesImmediately(t *testing.T) {
	o, remote, states, _ := newTestOrchestrator(t, true)

	local := models.AppState{Notes: []models.Note{{ID: "n1"}}}
	states.EXPECT().LoadState(gomock.Any()).Return(local, true, nil)
	remote.EXPECT().Push(gomock.Any(), local).Return(nil)

	require.NoError(t, o.SyncNow(context.Background()))
	assert.Equal(t, models.SyncOK, o.Status())
}

// TestSyncNow_BusyLatch: пока идёт один проход, второй не запускается.
func TestSyncNow_BusyLatch(t *testing.T) {
	o, remote, states, _ := newTestOrchestrator(t, true)

	entered := make(chan struct{})
	release := make(chan struct{})

	states.EXPECT().LoadState(gomock.Any()).Return(models.AppState{}, false, nil)
	remote.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.AppState) error {
			close(entered)
			<-release
			return nil
		})

	done := make(chan error, 1)
	go func() { done <- o.SyncNow(context.Background()) }()

	<-entered
	assert.Equal(t, models.SyncInProgress, o.Status())
	assert.ErrorIs(t, o.SyncNow(context.Background()), ErrSyncBusy)

	close(release)
	require.NoError(t, <-done)
}

// TestSyncNow_PushFailureSetsError: неудачная отправка фиксируется в
// статусе и LastError.
func TestSyncNow_PushFailureSetsError(t *testing.T) {
	o, remote, states, _ := newTestOrchestrator(t, true)

	states.EXPECT().LoadState(gomock.Any()).Return(models.AppState{}, false, nil)
	remote.EXPECT().Push(gomock.Any(), gomock.Any()).Return(ErrEmptyOverwrite)

	err := o.SyncNow(context.Background())

	assert.ErrorIs(t, err, ErrEmptyOverwrite)
	assert.Equal(t, models.SyncError, o.Status())
	assert.ErrorIs(t, o.LastError(), ErrEmptyOverwrite)
}

// ── SignOut ───────────────────────────────────────────────────────────────────

// TestSignOut_CancelsPendingPush: выход отменяет запланированную отправку.
func TestSignOut_CancelsPendingPush(t *testing.T) {
	o, _, states, session := newTestOrchestrator(t, true)

	states.EXPECT().SaveState(gomock.Any(), gomock.Any()).Return(nil)
	session.EXPECT().SignOut(gomock.Any()).Return(nil)

	ctx := context.Background()
	require.NoError(t, o.Apply(ctx, models.AppState{}))
	require.NoError(t, o.SignOut(ctx))

	assert.Equal(t, models.SyncDisconnected, o.Status())
	assert.NoError(t, o.LastError())

	time.Sleep(4 * testDebounce) // remote.Push не должен вызваться
}

// TestSignOut_DiscardsStalePull: результат скачивания, начатого до выхода,
// не применяется к локальному состоянию.
func TestSignOut_DiscardsStalePull(t *testing.T) {
	o, remote, _, session := newTestOrchestrator(t, true)

	fetched := make(chan struct{})
	release := make(chan struct{})

	remote.EXPECT().Fetch(gomock.Any()).DoAndReturn(
		func(context.Context) (models.AppState, bool, error) {
			close(fetched)
			<-release
			return models.AppState{Notes: []models.Note{{ID: "stale"}}}, true, nil
		})
	session.EXPECT().SignOut(gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() { done <- o.Connect(context.Background()) }()

	<-fetched
	require.NoError(t, o.SignOut(context.Background()))
	close(release)

	// states.SaveState не ожидается: устаревший результат отбрасывается
	require.NoError(t, <-done)
	assert.Equal(t, models.SyncDisconnected, o.Status())
}

// TestSignOut_DiscardsStaleFailure: ошибка скачивания, начатого до выхода,
// тоже отбрасывается — статус остаётся disconnected, LastError пуст.
func TestSignOut_DiscardsStaleFailure(t *testing.T) {
	o, remote, _, session := newTestOrchestrator(t, true)

	fetched := make(chan struct{})
	release := make(chan struct{})

	remote.EXPECT().Fetch(gomock.Any()).DoAndReturn(
		func(context.Context) (models.AppState, bool, error) {
			close(fetched)
			<-release
			return models.AppState{}, false, errors.New("network timeout")
		})
	session.EXPECT().SignOut(gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() { done <- o.Connect(context.Background()) }()

	<-fetched
	require.NoError(t, o.SignOut(context.Background()))
	close(release)

	// сам вызов Connect всё же возвращает ошибку вызвавшему
	require.Error(t, <-done)
	assert.Equal(t, models.SyncDisconnected, o.Status())
	assert.NoError(t, o.LastError())
}
