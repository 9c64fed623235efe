package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// profileModel is the main loop screen. It shows the authenticated profile,
// supports in-place editing of name, email, and password, copies the bearer
// token to the clipboard, and handles logout.
type profileModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	user    models.User
	loading bool
	status  string
	errMsg  string

	editing        bool
	editInputs     []textinput.Model
	editFocus      int
	editSubmitting bool

	logout bool
}

func newProfileModel(ctx context.Context, services *service.ClientServices, session models.Session) profileModel {
	return profileModel{
		ctx:      ctx,
		services: services,
		session:  session,
		loading:  true,
	}
}

func (m profileModel) Init() tea.Cmd {
	return m.cmdLoadProfile()
}

func (m profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.user = result.user
		m.errMsg = ""
		return m, nil

	case profileSavedMsg:
		m.editSubmitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.user = result.user
		m.editing = false
		m.errMsg = ""
		m.status = "Профиль обновлён"
		return m, m.cmdClearStatus()

	case logoutDoneMsg:
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.edit):
		m.startEdit()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadProfile()
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(m.session.Token); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Токен скопирован"
		return m, m.cmdClearStatus()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m profileModel) View() string {
	if m.editing {
		return m.viewEditing()
	}

	var b strings.Builder
	if m.loading {
		b.WriteString("Загрузка профиля...\n")
	} else {
		b.WriteString("Поле    │ Значение\n")
		b.WriteString("────────┼────────────────────────────────────────────\n")
		b.WriteString(fmt.Sprintf("ID      │ %d\n", m.user.UserID))
		b.WriteString("Имя     │ " + valueOrDash(m.user.Name) + "\n")
		b.WriteString("Email   │ " + valueOrDash(m.user.Email) + "\n")
		if !m.user.CreatedAt.IsZero() {
			b.WriteString("Создан  │ " + m.user.CreatedAt.Format("2006-01-02 15:04:05") + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"),
		"e: редактировать │ c: копировать токен │ r: обновить │ ctrl+l: выйти из аккаунта │ q: выход")
}

func (m *profileModel) startEdit() {
	fields := make([]textinput.Model, 3)

	fields[0] = textinput.New()
	fields[0].Placeholder = "name"
	fields[0].CharLimit = 100
	fields[0].Width = 40
	fields[0].SetValue(m.user.Name)
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 255
	fields[1].Width = 40
	fields[1].SetValue(m.user.Email)

	fields[2] = textinput.New()
	fields[2].Placeholder = "new password (leave empty to keep)"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	m.editInputs = fields
	m.editFocus = 0
	m.editing = true
	m.status = ""
	m.errMsg = ""
}

func (m profileModel) updateEditing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.editing = false
		m.editSubmitting = false
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.editInputs[m.editFocus].Blur()
		m.editFocus = (m.editFocus + 1) % len(m.editInputs)
		m.editInputs[m.editFocus].Focus()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.editInputs[m.editFocus].Blur()
		m.editFocus = (m.editFocus - 1 + len(m.editInputs)) % len(m.editInputs)
		m.editInputs[m.editFocus].Focus()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.editSubmitting {
			return m, nil
		}

		update := m.collectUpdate()
		if update.IsEmpty() {
			m.errMsg = "Измените хотя бы одно поле"
			return m, nil
		}

		m.errMsg = ""
		m.editSubmitting = true
		return m, m.cmdSaveProfile(update)
	}

	var cmd tea.Cmd
	m.editInputs[m.editFocus], cmd = m.editInputs[m.editFocus].Update(keyMsg)
	return m, cmd
}

// collectUpdate turns the edit form into a partial update. Name and email are
// sent only when they differ from the current profile; the password only when
// a new one was typed.
func (m profileModel) collectUpdate() models.ProfileUpdate {
	var update models.ProfileUpdate

	if name := strings.TrimSpace(m.editInputs[0].Value()); name != "" && name != m.user.Name {
		update.Name = &name
	}
	if email := strings.TrimSpace(m.editInputs[1].Value()); email != "" && email != m.user.Email {
		update.Email = &email
	}
	if pass := m.editInputs[2].Value(); pass != "" {
		update.Password = &pass
	}

	return update
}

func (m profileModel) viewEditing() string {
	var b strings.Builder
	b.WriteString("Поле            │ Значение\n")
	b.WriteString("────────────────┼────────────────────────────────────\n")
	b.WriteString("Имя             │ [")
	b.WriteString(m.editInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email           │ [")
	b.WriteString(m.editInputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Новый пароль    │ [")
	b.WriteString(m.editInputs[2].View())
	b.WriteString("]\n")

	if m.editSubmitting {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕДАКТИРОВАНИЕ ПРОФИЛЯ", strings.TrimRight(b.String(), "\n"),
		"esc: отмена │ tab: след. поле │ enter: сохранить")
}

func (m profileModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		user, err := m.services.ProfileService.GetProfile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m profileModel) cmdSaveProfile(update models.ProfileUpdate) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		user, err := m.services.ProfileService.UpdateProfile(ctx, update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m profileModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return logoutDoneMsg{err: m.services.AuthService.Logout(ctx)}
	}
}

func (m profileModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
