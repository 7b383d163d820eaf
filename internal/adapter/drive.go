// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/akovalyov/daybook/internal/config"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/models"
)

const backupMimeType = "application/json"

// driveListResponse is the drive's file query reply.
type driveListResponse struct {
	Files []models.BackupRecord `json:"files"`
}

// driveFileMetadata is the metadata part of a multipart upload.
type driveFileMetadata struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

type httpDriveGateway struct {
	client *HTTPClient

	apiBase    string
	uploadBase string

	limiter *rate.Limiter

	logger *logger.Logger
}

// NewHTTPDriveGateway constructs an HTTP implementation of [DriveGateway].
// It normalises and validates the API and upload base URLs from driveCfg,
// configures the underlying HTTP client with the request timeout, and
// installs a client-side rate limiter respecting the drive's per-user
// request quota.
//
// Returns an error if either base URL is empty or cannot be parsed.
func NewHTTPDriveGateway(driveCfg config.ClientDrive, logger *logger.Logger) (DriveGateway, error) {
	apiBase, err := normalizeURL(driveCfg.APIBase)
	if err != nil {
		return nil, fmt.Errorf("invalid drive api base: %w", err)
	}

	uploadBase, err := normalizeURL(driveCfg.UploadBase)
	if err != nil {
		return nil, fmt.Errorf("invalid drive upload base: %w", err)
	}

	client := NewHTTPClient()
	client.SetTimeout(driveCfg.RequestTimeout)

	return &httpDriveGateway{
		client:     client,
		apiBase:    apiBase,
		uploadBase: uploadBase,
		// 10 rps with a small burst keeps well under the drive quota
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
		logger:  logger,
	}, nil
}

// FindBackup implements [DriveGateway]. It lists files filtered by the
// exact reserved name and trashed=false, requesting only id, name and
// size. At most one record is expected; extra matches are ignored in
// favour of the first. Transient provider failures (5xx, 429) are retried
// with fibonacci backoff before surfacing.
func (g *httpDriveGateway) FindBackup(ctx context.Context, accessToken string) (models.BackupRecord, bool, error) {
	var list driveListResponse

	err := g.withRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		return g.authedRequest(ctx, accessToken).
			SetQueryParam("q", fmt.Sprintf("name = '%s' and trashed = false", models.BackupName)).
			SetQueryParam("fields", "files(id, name, size)").
			SetQueryParam("pageSize", "1").
			Get(g.apiBase + "/files")
	}, func(body []byte) error {
		return json.Unmarshal(body, &list)
	})
	if err != nil {
		return models.BackupRecord{}, false, fmt.Errorf("find backup: %w", err)
	}

	if len(list.Files) == 0 {
		return models.BackupRecord{}, false, nil
	}
	return list.Files[0], true, nil
}

// Download implements [DriveGateway]. It fetches the file content via
// alt=media. Transient provider failures are retried.
func (g *httpDriveGateway) Download(ctx context.Context, accessToken, fileID string) ([]byte, error) {
	var content []byte

	err := g.withRetry(ctx, func(ctx context.Context) (*resty.Response, error) {
		return g.authedRequest(ctx, accessToken).
			SetQueryParam("alt", "media").
			Get(g.apiBase + "/files/" + fileID)
	}, func(body []byte) error {
		content = body
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("download backup: %w", err)
	}

	return content, nil
}

// Create implements [DriveGateway]. It POSTs a multipart/related request
// with a JSON metadata part (reserved name, mime type) and the content
// part. Writes are deliberately not retried: a repeated POST after an
// ambiguous failure could create a duplicate record.
func (g *httpDriveGateway) Create(ctx context.Context, accessToken string, content []byte) (models.BackupRecord, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return models.BackupRecord{}, fmt.Errorf("rate limit wait: %w", err)
	}

	body, contentType, err := multipartRelated(driveFileMetadata{Name: models.BackupName, MimeType: backupMimeType}, content)
	if err != nil {
		return models.BackupRecord{}, fmt.Errorf("build multipart body: %w", err)
	}

	resp, err := g.authedRequest(ctx, accessToken).
		SetHeader("Content-Type", contentType).
		SetQueryParam("uploadType", "multipart").
		SetQueryParam("fields", "id, name, size").
		SetBody(body).
		Post(g.uploadBase + "/files")
	if err != nil {
		return models.BackupRecord{}, fmt.Errorf("create backup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackupRecord{}, err
	}

	var record models.BackupRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.BackupRecord{}, fmt.Errorf("decode create response: %w", err)
	}

	g.logger.Debug().
		Str("func", "httpDriveGateway.Create").
		Str("file_id", record.ID).
		Msg("backup record created")

	return record, nil
}

// Update implements [DriveGateway]. It PATCHes the existing record's
// content in full via a multipart/related request. Not retried, same as
// Create.
func (g *httpDriveGateway) Update(ctx context.Context, accessToken, fileID string, content []byte) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	body, contentType, err := multipartRelated(driveFileMetadata{Name: models.BackupName, MimeType: backupMimeType}, content)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}

	resp, err := g.authedRequest(ctx, accessToken).
		SetHeader("Content-Type", contentType).
		SetQueryParam("uploadType", "multipart").
		SetBody(body).
		Patch(g.uploadBase + "/files/" + fileID)
	if err != nil {
		return fmt.Errorf("update backup request: %w", err)
	}

	return mapHTTPError(resp)
}

func (g *httpDriveGateway) authedRequest(ctx context.Context, accessToken string) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken)
}

// withRetry runs a read-only call with fibonacci backoff on transient
// failures and passes the successful body to decode.
func (g *httpDriveGateway) withRetry(ctx context.Context, call func(ctx context.Context) (*resty.Response, error), decode func(body []byte) error) error {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := g.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}

		resp, err := call(ctx)
		if err != nil {
			// сетевая ошибка — пробуем ещё раз
			return retry.RetryableError(fmt.Errorf("drive request: %w", err))
		}
		if err = mapHTTPError(resp); err != nil {
			if isTransient(resp.StatusCode()) {
				return retry.RetryableError(err)
			}
			return err
		}

		return decode(resp.Body())
	})
}

// multipartRelated assembles the two-part body the drive upload endpoint
// expects: a JSON metadata part followed by the content part.
func multipartRelated(metadata driveFileMetadata, content []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := w.CreatePart(metaHeader)
	if err != nil {
		return nil, "", err
	}
	if err = json.NewEncoder(metaPart).Encode(metadata); err != nil {
		return nil, "", err
	}

	contentHeader := textproto.MIMEHeader{}
	contentHeader.Set("Content-Type", backupMimeType)
	contentPart, err := w.CreatePart(contentHeader)
	if err != nil {
		return nil, "", err
	}
	if _, err = contentPart.Write(content); err != nil {
		return nil, "", err
	}

	if err = w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), `multipart/related; boundary=` + w.Boundary(), nil
}
