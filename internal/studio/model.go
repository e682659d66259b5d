package studio

import (
	"fmt"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kavehm/motionlab/internal/config"
	"github.com/kavehm/motionlab/internal/editor"
	"github.com/kavehm/motionlab/internal/sim"
)

// ────────────────────────────────────────────────────────────
// Pane focuses
// ────────────────────────────────────────────────────────────

// Pane represents which UI pane currently has keyboard focus.
type Pane int

const (
	PaneTemplates Pane = iota
	PanePreview
	PaneTimeline
	PaneBatch
)

const paneCount = 4

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the motionlab studio.
// All editor state lives in the Session; the model holds only UI
// concerns. Rendering is delegated to component functions in
// separate files.
type Model struct {
	cfg     *config.Config
	session *editor.Session

	// UI state
	activePane       Pane
	selectedTemplate int
	selectedScene    int
	width            int
	height           int
	saveMode         bool
	nameInput        string

	// Preview
	playing   bool
	wavePhase float64
	waveSeed  int64

	// Batch / cloud. Each flow keeps its own run counter so a restart
	// only invalidates ticks from its own abandoned runs; batch and
	// cloud never cancel each other.
	batch       []sim.BatchItem
	batchRun    int
	cloudRun    int
	cloudActive bool
	cloudStatus sim.Status

	// Export format cycling
	exportIndex int

	// Footer
	heapBytes uint64
	statusMsg string
}

// NewModel creates a studio model over the given session.
func NewModel(cfg *config.Config, session *editor.Session) Model {
	return Model{
		cfg:       cfg,
		session:   session,
		waveSeed:  1,
		statusMsg: "Ready",
	}
}

// Session exposes the underlying editor state, mainly for tests.
func (m Model) Session() *editor.Session {
	return m.session
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type memTickMsg time.Time
type pulseDoneMsg struct{}
type batchItemReadyMsg struct {
	run   int
	index int
}
type cloudReadyMsg struct{ run int }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return memTick()
}

// memTick drives the heap readout and the waveform jitter.
func memTick() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return memTickMsg(t)
	})
}

func pulseCmd() tea.Cmd {
	return tea.Tick(sim.PulseDuration, func(time.Time) tea.Msg {
		return pulseDoneMsg{}
	})
}

func batchCmds(run, n int) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, n)
	for i := 0; i < n; i++ {
		i := i
		cmds = append(cmds, tea.Tick(sim.BatchDelay(i), func(time.Time) tea.Msg {
			return batchItemReadyMsg{run: run, index: i}
		}))
	}
	return cmds
}

func cloudCmd(run int) tea.Cmd {
	return tea.Tick(sim.CloudQueueDelay, func(time.Time) tea.Msg {
		return cloudReadyMsg{run: run}
	})
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case memTickMsg:
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		m.heapBytes = ms.HeapAlloc
		m.wavePhase += 0.6
		m.waveSeed++
		return m, memTick()

	case pulseDoneMsg:
		m.playing = false
		return m, nil

	case batchItemReadyMsg:
		if msg.run != m.batchRun || msg.index >= len(m.batch) {
			return m, nil
		}
		m.batch[msg.index].Status = sim.StatusReady
		m.session.Log(fmt.Sprintf("%s is ready", m.batch[msg.index].Label), editor.KindInfo)
		return m, nil

	case cloudReadyMsg:
		if msg.run != m.cloudRun || !m.cloudActive {
			return m, nil
		}
		m.cloudStatus = sim.StatusReady
		m.session.Log("Cloud render ready", editor.KindInfo)
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ── Save-template prompt ──
	// Handled before the global keys so names can contain any letter.

	if m.saveMode {
		switch key {
		case "enter":
			m.saveMode = false
			if _, err := m.session.SaveTemplate(m.nameInput, "saved from studio"); err == nil {
				m.selectedTemplate = len(m.session.Templates()) - 1
			}
			m.nameInput = ""
			return m, nil
		case "esc":
			m.saveMode = false
			m.nameInput = ""
			return m, nil
		case "backspace":
			if len(m.nameInput) > 0 {
				runes := []rune(m.nameInput)
				m.nameInput = string(runes[:len(runes)-1])
			}
			return m, nil
		default:
			if msg.Type == tea.KeyRunes {
				m.nameInput += string(msg.Runes)
			} else if msg.Type == tea.KeySpace {
				m.nameInput += " "
			}
			return m, nil
		}
	}

	// ── Global ──

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.activePane = (m.activePane + 1) % paneCount
		return m, nil

	case "shift+tab":
		m.activePane = (m.activePane + paneCount - 1) % paneCount
		return m, nil
	}

	// ── Pane-specific ──

	switch m.activePane {
	case PaneTemplates:
		return m.handleTemplatesKey(key)
	case PanePreview:
		return m.handlePreviewKey(key)
	case PaneTimeline:
		return m.handleTimelineKey(key)
	case PaneBatch:
		return m.handleBatchKey(key)
	}

	return m, nil
}

func (m Model) handleTemplatesKey(key string) (tea.Model, tea.Cmd) {
	templates := m.session.Templates()

	switch key {
	case "j", "down":
		if m.selectedTemplate < len(templates)-1 {
			m.selectedTemplate++
		}
	case "k", "up":
		if m.selectedTemplate > 0 {
			m.selectedTemplate--
		}
	case "enter":
		if m.selectedTemplate < len(templates) {
			tpl := templates[m.selectedTemplate]
			if applied, ok := m.session.Apply(tpl.ID); ok {
				m.statusMsg = fmt.Sprintf("Applied %s", applied.Name)
			}
		}
	case "s":
		m.saveMode = true
		m.nameInput = ""
	}
	return m, nil
}

func (m Model) handlePreviewKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "p", " ":
		if !m.playing {
			m.playing = true
			return m, pulseCmd()
		}
	case "f":
		m.session.SetPreviewFont(nextOption(m.cfg.Fonts, m.session.Font))
	case "x":
		// On-demand demo error, mirrors the missing-font notice.
		m.session.Log(fmt.Sprintf("Font %q not found (demo)", m.session.Font), editor.KindError)
	}
	return m, nil
}

func (m Model) handleTimelineKey(key string) (tea.Model, tea.Cmd) {
	scenes := m.session.Scenes()

	switch key {
	case "a":
		sc := m.session.AddScene()
		m.selectedScene = len(m.session.Scenes()) - 1
		m.statusMsg = fmt.Sprintf("Added %s", sc.Name)
	case "j", "down":
		if m.selectedScene < len(scenes)-1 {
			m.selectedScene++
		}
	case "k", "up":
		if m.selectedScene > 0 {
			m.selectedScene--
		}
	case "l", "right":
		m.adjustSelectedScene(0.5)
	case "h", "left":
		m.adjustSelectedScene(-0.5)
	}
	return m, nil
}

func (m *Model) adjustSelectedScene(delta float64) {
	scenes := m.session.Scenes()
	if m.selectedScene >= len(scenes) {
		return
	}
	sc := scenes[m.selectedScene]
	m.session.SetSceneDuration(sc.ID, sc.Duration+delta)
}

func (m Model) handleBatchKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "b":
		m.batchRun++
		m.batch = sim.NewBatch(3)
		m.session.Log("Batch render started: 3 clips", editor.KindInfo)
		return m, tea.Batch(batchCmds(m.batchRun, len(m.batch))...)

	case "c":
		m.cloudRun++
		m.cloudActive = true
		m.cloudStatus = sim.StatusQueued
		m.session.Log("Sent to cloud: queued", editor.KindInfo)
		return m, cloudCmd(m.cloudRun)

	case "e":
		m.exportIndex = (m.exportIndex + 1) % len(m.cfg.OutputFormats)

	case "enter":
		m.session.SelectExportFormat(m.cfg.OutputFormats[m.exportIndex])
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - 2 // header + footer

	var body string
	if m.width < 80 {
		body = m.renderCompactLayout(bodyHeight)
	} else {
		body = m.renderMainLayout(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderMainLayout assembles the four-pane studio view plus the
// message log.
func (m Model) renderMainLayout(totalHeight int) string {
	topHeight := totalHeight * 60 / 100
	bottomHeight := totalHeight - topHeight

	leftWidth := m.width * 30 / 100
	midWidth := m.width * 40 / 100
	rightWidth := m.width - leftWidth - midWidth

	templates := renderTemplatesPanel(&m, leftWidth, topHeight)
	preview := renderPreviewPanel(&m, midWidth, topHeight)
	timeline := renderTimelinePanel(&m, rightWidth, topHeight)

	batchWidth := m.width * 45 / 100
	batch := renderBatchPanel(&m, batchWidth, bottomHeight)
	messages := renderMessagesPanel(&m, m.width-batchWidth, bottomHeight)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, templates, preview, timeline)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, batch, messages)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow)
}

// renderCompactLayout is used when the terminal is narrow (< 80 cols).
// Only the focused pane is shown above the message log.
func (m Model) renderCompactLayout(totalHeight int) string {
	paneHeight := totalHeight * 70 / 100
	logHeight := totalHeight - paneHeight

	var pane string
	switch m.activePane {
	case PaneTemplates:
		pane = renderTemplatesPanel(&m, m.width, paneHeight)
	case PanePreview:
		pane = renderPreviewPanel(&m, m.width, paneHeight)
	case PaneTimeline:
		pane = renderTimelinePanel(&m, m.width, paneHeight)
	case PaneBatch:
		pane = renderBatchPanel(&m, m.width, paneHeight)
	default:
		pane = renderTemplatesPanel(&m, m.width, paneHeight)
	}

	messages := renderMessagesPanel(&m, m.width, logHeight)
	return lipgloss.JoinVertical(lipgloss.Left, pane, messages)
}
