// Package widget implements the terminal chat widget: a toggleable
// panel with a scrolling transcript, a typing indicator and a growing
// multi-line input, talking to the job assistant backend.
package widget

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/courtside/jobchat/internal"
)

// ChatSender issues one chat exchange against the backend. It is
// satisfied by *internal.Client; tests substitute fakes.
type ChatSender interface {
	Chat(ctx context.Context, transcript []internal.Turn) (string, error)
}

// Options configures the widget
type Options struct {
	Welcome        string // guidance entry shown while the transcript is empty
	MaxInputHeight int    // cap on the input height, in lines
}

type (
	replyMsg    struct{ text string }
	replyErrMsg struct{ err error }
)

// Model is the widget state. Two independent axes: Closed/Open for the
// panel, Idle/Sending for the exchange. Neither blocks the other.
type Model struct {
	store  *internal.SessionStore
	client ChatSender
	opts   Options

	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	open    bool
	sending bool
	typing  bool
	ready   bool

	// rendered bubbles, including UI-only fallback entries that are
	// deliberately absent from the persisted transcript
	lines []string

	width  int
	height int
}

// New creates a widget over the given store and backend client. The
// widget starts Closed and Idle with the welcome entry pending.
func New(store *internal.SessionStore, client ChatSender, opts Options) Model {
	if opts.MaxInputHeight <= 0 {
		opts.MaxInputHeight = 5
	}

	ta := textarea.New()
	ta.Placeholder = "Ask about tennis jobs..."
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	// Enter submits; alt+enter extends with a literal newline instead
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle = ta.FocusedStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = typingStyle

	m := Model{
		store:    store,
		client:   client,
		opts:     opts,
		textarea: ta,
		spinner:  sp,
	}
	for _, t := range store.Turns() {
		m.lines = append(m.lines, renderTurn(t))
	}
	return m
}

// Init starts the spinner tick
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles widget events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - m.textarea.Height() - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		contentWidth := msg.Width - 2
		if contentWidth < 20 {
			contentWidth = 20
		}
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+o":
			if m.open {
				return m.close(), nil
			}
			return m.openPanel()
		case "esc":
			if m.open {
				return m.close(), nil
			}
			return m, nil
		case "ctrl+l":
			if m.open {
				return m.clearChat(), nil
			}
			return m, nil
		case "enter":
			if m.open {
				return m.submit()
			}
			return m, nil
		}
		if !m.open {
			return m, nil
		}

	case replyMsg:
		return m.handleReply(msg.text)

	case replyErrMsg:
		return m.handleError(msg.err)

	case spinner.TickMsg:
		if m.typing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refreshViewport()
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.adaptInputHeight()
	return m, cmd
}

// openPanel opens the widget and moves focus to the input
func (m Model) openPanel() (Model, tea.Cmd) {
	m.open = true
	m.refreshViewport()
	return m, m.textarea.Focus()
}

// close hides the panel. An outstanding request keeps running; its
// reply lands in the transcript whether or not the panel is visible.
func (m Model) close() Model {
	m.open = false
	m.textarea.Blur()
	return m
}

// submit validates and dispatches the current input. Whitespace-only
// input and submits while Sending are silent no-ops.
func (m Model) submit() (Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}
	turn, ok := internal.NewUserTurn(m.textarea.Value())
	if !ok {
		return m, nil
	}

	m.store.Append(turn)
	m.lines = append(m.lines, renderTurn(turn))

	// optimistic clear: the input resets before the reply arrives
	m.textarea.Reset()
	m.textarea.SetHeight(1)

	m.sending = true
	m.typing = true
	m.refreshViewport()

	transcript := m.store.Turns()
	client := m.client
	send := func() tea.Msg {
		reply, err := client.Chat(context.Background(), transcript)
		if err != nil {
			return replyErrMsg{err: err}
		}
		return replyMsg{text: reply}
	}
	return m, tea.Batch(send, m.spinner.Tick)
}

// handleReply finishes a successful exchange. Empty replies are
// discarded silently: no turn, no bubble.
func (m Model) handleReply(text string) (Model, tea.Cmd) {
	m.sending = false
	m.typing = false

	if text != "" {
		turn := internal.NewAssistantTurn(text)
		m.store.Append(turn)
		m.lines = append(m.lines, renderTurn(turn))
	}
	m.refreshViewport()
	return m, m.textarea.Focus()
}

// handleError finishes a failed exchange with a single assistant-styled
// fallback bubble. The fallback is never appended to the store.
func (m Model) handleError(err error) (Model, tea.Cmd) {
	m.sending = false
	m.typing = false

	internal.LogDebug("chat request failed: %v", err)
	m.lines = append(m.lines, renderFallback(internal.UserMessage(err)))
	m.refreshViewport()
	return m, m.textarea.Focus()
}

// clearChat empties the transcript, removes the persisted copy and
// brings the welcome entry back
func (m Model) clearChat() Model {
	m.store.Clear()
	m.lines = nil
	m.refreshViewport()
	return m
}

// adaptInputHeight grows the input with wrapped content up to the cap
// and shrinks it back when text is removed
func (m *Model) adaptInputHeight() {
	h := m.textarea.LineCount()
	if h < 1 {
		h = 1
	}
	if h > m.opts.MaxInputHeight {
		h = m.opts.MaxInputHeight
	}
	if h != m.textarea.Height() {
		m.textarea.SetHeight(h)
	}
}

// refreshViewport recommits the transcript content and then scrolls to
// the end, so the newest entry is visible after the content lands.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcriptView())
	m.viewport.GotoBottom()
}

// transcriptView renders the message list: welcome while empty,
// otherwise the bubbles plus the typing indicator when present
func (m Model) transcriptView() string {
	var b strings.Builder

	if len(m.lines) == 0 && m.store.Len() == 0 {
		b.WriteString(welcomeStyle.Render(m.opts.Welcome))
		b.WriteString("\n")
	} else {
		for _, line := range m.lines {
			b.WriteString(line)
			b.WriteString("\n\n")
		}
	}

	if m.typing {
		b.WriteString(typingStyle.Render(m.spinner.View() + "assistant is typing..."))
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the toggle affordance when closed, the panel when open
func (m Model) View() string {
	if !m.open {
		return toggleStyle.Render("💬 Job assistant") + helpStyle.Render("  ctrl+o to open · ctrl+c to quit") + "\n"
	}
	if !m.ready {
		return headerStyle.Render("Job assistant") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Job assistant"))
	b.WriteString(helpStyle.Render("  ctrl+o close · ctrl+l clear · alt+enter newline"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")
	return b.String()
}

// renderTurn renders one persisted turn as a role-keyed bubble
func renderTurn(t internal.Turn) string {
	label := assistantLabelStyle.Render("Assistant")
	if t.Role == internal.RoleUser {
		label = userLabelStyle.Render("You")
	}
	return label + "\n" + t.Content
}

// renderFallback renders the UI-only failure bubble
func renderFallback(text string) string {
	return assistantLabelStyle.Render("Assistant") + "\n" + fallbackStyle.Render(text)
}
