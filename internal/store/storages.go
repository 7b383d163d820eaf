package store

import (
	"context"
	"fmt"

	"github.com/akovalyov/daybook/internal/config"
	"github.com/akovalyov/daybook/internal/crypto"
	"github.com/akovalyov/daybook/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// StateRepository persists the full application snapshot.
	StateRepository StateRepository

	// TokenRepository persists the OAuth credential set.
	TokenRepository TokenRepository
}

// NewClientStorages initialises the client storage layer using the
// supplied configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to the
//     key-value-backed state and token repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, sealer crypto.Sealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVRepository(db, logger)

	return &ClientStorages{
		StateRepository: NewStateRepository(kv, logger),
		TokenRepository: NewTokenRepository(kv, sealer, logger),
	}, nil
}
