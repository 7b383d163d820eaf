package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalyov/daybook/internal/service"
	"github.com/akovalyov/daybook/models"
)

// statusModel — единственный экран клиента: состояние синхронизации,
// привязанный аккаунт и действия над ними.
type statusModel struct {
	ctx      context.Context
	services *service.ClientServices
	version  string

	spinner spinner.Model
	linking bool
	// cancelLink прерывает незавершённую привязку аккаунта.
	cancelLink context.CancelFunc

	status  models.SyncStatus
	email   string
	errMsg  string
	copied  bool
	loading bool

	quitByUser bool
}

func newStatusModel(ctx context.Context, services *service.ClientServices, version string) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctx:      ctx,
		services: services,
		version:  version,
		spinner:  s,
		status:   services.Orchestrator.Status(),
		email:    services.Session.AccountEmail(ctx),
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdTick())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.status = m.services.Orchestrator.Status()
		m.email = m.services.Session.AccountEmail(m.ctx)
		if err := m.services.Orchestrator.LastError(); err != nil {
			m.errMsg = err.Error()
		} else if !m.linking {
			m.errMsg = ""
		}
		return m, m.cmdTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case linkDoneMsg:
		m.linking = false
		m.cancelLink = nil
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				m.errMsg = msg.err.Error()
			}
			return m, nil
		}
		// аккаунт привязан — сразу тянем удалённое состояние
		m.loading = true
		return m, m.cmdConnect()

	case connectDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		m.status = m.services.Orchestrator.Status()
		return m, nil

	case syncDoneMsg:
		m.loading = false
		if msg.err != nil && !errors.Is(msg.err, service.ErrSyncBusy) {
			m.errMsg = msg.err.Error()
		}
		m.status = m.services.Orchestrator.Status()
		return m, nil

	case signOutDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		m.status = m.services.Orchestrator.Status()
		m.email = ""
		return m, nil

	case copiedMsg:
		m.copied = true
		return m, nil
	}

	return m, nil
}

func (m statusModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		if m.cancelLink != nil {
			m.cancelLink()
		}
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(msg, keys.connect):
		if m.linking || m.status != models.SyncDisconnected {
			return m, nil
		}
		m.linking = true
		m.errMsg = ""
		m.copied = false
		linkCtx, cancel := context.WithCancel(m.ctx)
		m.cancelLink = cancel
		return m, m.cmdLink(linkCtx)

	case key.Matches(msg, keys.sync):
		if m.status == models.SyncDisconnected || m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.cmdSyncNow()

	case key.Matches(msg, keys.signOut):
		if m.linking {
			// отмена незавершённой привязки
			if m.cancelLink != nil {
				m.cancelLink()
			}
			return m, nil
		}
		if m.status == models.SyncDisconnected {
			return m, nil
		}
		m.loading = true
		return m, m.cmdSignOut()

	case key.Matches(msg, keys.copyURL):
		if !m.linking {
			return m, nil
		}
		return m, m.cmdCopyConsentURL()
	}

	return m, nil
}

func (m statusModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Daybook " + m.version))
	b.WriteString("\n\n")

	if m.email != "" {
		b.WriteString("Аккаунт: " + m.email + "\n")
	} else {
		b.WriteString("Аккаунт не привязан\n")
	}

	switch {
	case m.linking:
		b.WriteString(m.spinner.View() + " Ожидание согласия в браузере...\n")
		if url := m.services.Linker.ConsentURL(); url != "" {
			b.WriteString("Откройте: " + consentStyle.Render(url) + "\n")
			if m.copied {
				b.WriteString(helpStyle.Render("ссылка скопирована") + "\n")
			}
		}
	case m.loading || m.status == models.SyncInProgress:
		b.WriteString(m.spinner.View() + " Синхронизация...\n")
	default:
		b.WriteString(fmt.Sprintf("Статус: %s\n", m.status))
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	b.WriteString("\n")
	if m.status == models.SyncDisconnected && !m.linking {
		b.WriteString(helpStyle.Render("c подключить • q выход"))
	} else if m.linking {
		b.WriteString(helpStyle.Render("u скопировать ссылку • o отменить • q выход"))
	} else {
		b.WriteString(helpStyle.Render("s синхронизировать • o отвязать • q выход"))
	}

	return appStyle.Render(b.String())
}

func (m statusModel) cmdTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m statusModel) cmdLink(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		return linkDoneMsg{err: m.services.Linker.Link(ctx)}
	}
}

func (m statusModel) cmdConnect() tea.Cmd {
	return func() tea.Msg {
		return connectDoneMsg{err: m.services.Orchestrator.Connect(m.ctx)}
	}
}

func (m statusModel) cmdSyncNow() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: m.services.Orchestrator.SyncNow(m.ctx)}
	}
}

func (m statusModel) cmdSignOut() tea.Cmd {
	return func() tea.Msg {
		return signOutDoneMsg{err: m.services.Orchestrator.SignOut(m.ctx)}
	}
}

func (m statusModel) cmdCopyConsentURL() tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(m.services.Linker.ConsentURL()); err != nil {
			return nil
		}
		return copiedMsg{}
	}
}
