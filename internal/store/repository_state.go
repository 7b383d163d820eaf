package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/models"
)

type stateRepository struct {
	kv     KV
	logger *logger.Logger
}

func NewStateRepository(kv KV, logger *logger.Logger) StateRepository {
	return &stateRepository{kv: kv, logger: logger}
}

// LoadState implements [StateRepository]. A missing snapshot (fresh
// install) is reported via found=false, not an error. A snapshot that is
// present but unparseable is corruption and surfaces as [ErrDecodingState].
func (r *stateRepository) LoadState(ctx context.Context) (models.AppState, bool, error) {
	raw, err := r.kv.Get(ctx, KeyAppState)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return models.AppState{}, false, nil
		}
		return models.AppState{}, false, fmt.Errorf("load state: %w", err)
	}

	var state models.AppState
	if err = json.Unmarshal(raw, &state); err != nil {
		r.logger.Err(err).
			Str("func", "stateRepository.LoadState").
			Msg("stored snapshot is not valid JSON")
		return models.AppState{}, false, fmt.Errorf("%w: %v", ErrDecodingState, err)
	}

	return state, true, nil
}

// SaveState implements [StateRepository]. The snapshot is always written
// whole; there are no partial updates.
func (r *stateRepository) SaveState(ctx context.Context, state models.AppState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = r.kv.Set(ctx, KeyAppState, payload); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}
