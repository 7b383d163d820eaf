package service

import (
	"github.com/akovalyov/daybook/internal/adapter"
	"github.com/akovalyov/daybook/internal/config"
	"github.com/akovalyov/daybook/internal/logger"
	"github.com/akovalyov/daybook/internal/store"
)

// ClientServices агрегирует сервисы клиентского приложения.
type ClientServices struct {
	Session      AuthSession
	Linker       AccountLinker
	RemoteState  RemoteStateService
	Orchestrator SyncOrchestrator
}

// NewClientServices wires the service layer on top of the storage and
// adapter layers.
func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, oauth adapter.TokenClient, drive adapter.DriveGateway, log *logger.Logger) *ClientServices {
	session := NewAuthSession(storages.TokenRepository, oauth, log)
	remote := NewRemoteStateService(drive, session, log)

	return &ClientServices{
		Session:      session,
		Linker:       NewAccountLinker(cfg.OAuth, oauth, session, log),
		RemoteState:  remote,
		Orchestrator: NewSyncOrchestrator(remote, storages.StateRepository, session, cfg.Sync.Debounce, log),
	}
}
