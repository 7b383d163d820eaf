// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kovalyov

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akovalyov/daybook/internal/adapter"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/models"
)

// emptyOverwriteFloor is the remote backup size in bytes above which a push
// of an empty local state is refused. A backup at or below the floor is
// trivial enough to overwrite freely.
const emptyOverwriteFloor = 500

// remoteStateService implements [RemoteStateService] on top of the drive
// gateway. It owns serialization of [models.AppState] and the empty-overwrite
// safety lock; token validity is delegated to the session.
type remoteStateService struct {
	drive   adapter.DriveGateway
	session AuthSession
	logger  *logger.Logger
}

// NewRemoteStateService returns a [RemoteStateService] backed by drive.
func NewRemoteStateService(drive adapter.DriveGateway, session AuthSession, log *logger.Logger) RemoteStateService {
	return &remoteStateService{
		drive:   drive,
		session: session,
		logger:  log.GetChildLogger(),
	}
}

func (s *remoteStateService) Fetch(ctx context.Context) (models.AppState, bool, error) {
	token, err := s.session.EnsureValidToken(ctx)
	if err != nil {
		return models.AppState{}, false, err
	}

	record, found, err := s.drive.FindBackup(ctx, token)
	if err != nil {
		return models.AppState{}, false, fmt.Errorf("%w: %s", ErrLookupFailed, err)
	}
	if !found {
		return models.AppState{}, false, nil
	}

	raw, err := s.drive.Download(ctx, token, record.ID)
	if err != nil {
		return models.AppState{}, false, fmt.Errorf("download backup: %w", err)
	}

	var state models.AppState
	if err = json.Unmarshal(raw, &state); err != nil {
		return models.AppState{}, false, fmt.Errorf("%w: %s", ErrRemoteStateCorrupt, err)
	}

	s.logger.Debug().Str("file_id", record.ID).Int("bytes", len(raw)).Msg("fetched remote state")
	return state, true, nil
}

func (s *remoteStateService) Push(ctx context.Context, state models.AppState) error {
	token, err := s.session.EnsureValidToken(ctx)
	if err != nil {
		return err
	}

	record, found, err := s.drive.FindBackup(ctx, token)
	if err != nil {
		// A failed lookup blocks the push: without knowing whether a backup
		// exists we would risk either a duplicate record or a blind
		// overwrite.
		return fmt.Errorf("%w: %s", ErrLookupFailed, err)
	}

	if found && record.Size > emptyOverwriteFloor && state.IsEmpty() {
		s.logger.Warn().
			Int64("remote_size", record.Size).
			Msg("push refused: local state is empty, remote backup is not")
		return ErrEmptyOverwrite
	}

	content, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if !found {
		created, err := s.drive.Create(ctx, token, content)
		if err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
		s.logger.Info().Str("file_id", created.ID).Msg("backup created")
		return nil
	}

	if err = s.drive.Update(ctx, token, record.ID, content); err != nil {
		return fmt.Errorf("update backup: %w", err)
	}
	s.logger.Debug().Str("file_id", record.ID).Int("bytes", len(content)).Msg("backup updated")
	return nil
}
