package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akovalyov/daybook/internal/config"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/models"
)

func newDriveGateway(t *testing.T, handler http.Handler) DriveGateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gateway, err := NewHTTPDriveGateway(config.ClientDrive{
		APIBase:        srv.URL + "/drive/v3",
		UploadBase:     srv.URL + "/upload/drive/v3",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return gateway
}

// readMultipartRelated разбирает multipart/related тело запроса на
// метаданные и контент.
func readMultipartRelated(t *testing.T, r *http.Request) (metadata, content string) {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/related", mediaType)

	reader := multipart.NewReader(r.Body, params["boundary"])

	metaPart, err := reader.NextPart()
	require.NoError(t, err)
	metaRaw, err := io.ReadAll(metaPart)
	require.NoError(t, err)

	contentPart, err := reader.NextPart()
	require.NoError(t, err)
	contentRaw, err := io.ReadAll(contentPart)
	require.NoError(t, err)

	return string(metaRaw), string(contentRaw)
}

// ── FindBackup ───────────────────────────────────────────────────────────────

func TestDriveGateway_FindBackup_Found(t *testing.T) {
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/v3/files", r.URL.Path)
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		assert.Contains(t, r.URL.Query().Get("q"), models.BackupName)
		assert.Contains(t, r.URL.Query().Get("q"), "trashed = false")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"files":[{"id":"file-123","name":"daybook.backup.json","size":"874"}]}`)
	}))

	record, found, err := gateway.FindBackup(context.Background(), "at-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "file-123", record.ID)
	assert.Equal(t, int64(874), record.Size)
}

func TestDriveGateway_FindBackup_Absent(t *testing.T) {
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"files":[]}`)
	}))

	_, found, err := gateway.FindBackup(context.Background(), "at-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDriveGateway_FindBackup_QueryFailureIsError(t *testing.T) {
	// отказ запроса — это ошибка, а не "записи нет"
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, found, err := gateway.FindBackup(context.Background(), "at-1")
	require.Error(t, err)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDriveGateway_FindBackup_RetriesTransient(t *testing.T) {
	var calls atomic.Int64
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"files":[]}`)
	}))

	_, found, err := gateway.FindBackup(context.Background(), "at-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(2), calls.Load())
}

// ── Download ─────────────────────────────────────────────────────────────────

func TestDriveGateway_Download(t *testing.T) {
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/v3/files/file-123", r.URL.Path)
		assert.Equal(t, "media", r.URL.Query().Get("alt"))
		fmt.Fprint(w, `{"notes":[{"id":"n1"}]}`)
	}))

	content, err := gateway.Download(context.Background(), "at-1", "file-123")
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":[{"id":"n1"}]}`, string(content))
}

func TestDriveGateway_Download_Unauthorized(t *testing.T) {
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := gateway.Download(context.Background(), "stale-at", "file-123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Create / Update ──────────────────────────────────────────────────────────

func TestDriveGateway_Create(t *testing.T) {
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload/drive/v3/files", r.URL.Path)
		assert.Equal(t, "multipart", r.URL.Query().Get("uploadType"))

		metadata, content := readMultipartRelated(t, r)
		assert.Contains(t, metadata, models.BackupName)
		assert.Contains(t, metadata, "application/json")
		assert.JSONEq(t, `{"tasks":[{"id":"t1"}]}`, content)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"file-123","name":"daybook.backup.json","size":"21"}`)
	}))

	record, err := gateway.Create(context.Background(), "at-1", []byte(`{"tasks":[{"id":"t1"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "file-123", record.ID)
}

func TestDriveGateway_Update(t *testing.T) {
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/upload/drive/v3/files/file-123", r.URL.Path)

		_, content := readMultipartRelated(t, r)
		assert.Contains(t, content, "n1")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"file-123"}`)
	}))

	err := gateway.Update(context.Background(), "at-1", "file-123", []byte(`{"notes":[{"id":"n1"}]}`))
	require.NoError(t, err)
}

func TestDriveGateway_Create_NotRetried(t *testing.T) {
	var calls atomic.Int64
	gateway := newDriveGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := gateway.Create(context.Background(), "at-1", []byte(`{}`))
	require.Error(t, err)
	// записи не повторяются — повторный POST после неоднозначного сбоя
	// мог бы создать дубликат
	assert.Equal(t, int64(1), calls.Load())
}

func TestNewHTTPDriveGateway_BadBase(t *testing.T) {
	_, err := NewHTTPDriveGateway(config.ClientDrive{APIBase: "", UploadBase: "x"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPDriveGateway(config.ClientDrive{APIBase: "https://ok.example.com", UploadBase: ""}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeURL(t *testing.T) {
	got, err := normalizeURL(" drive.example.com/v3/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://drive.example.com/v3", got)

	_, err = normalizeURL("")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "empty"))
}
