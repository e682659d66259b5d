package studio

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavehm/motionlab/internal/config"
	"github.com/kavehm/motionlab/internal/editor"
	"github.com/kavehm/motionlab/internal/sim"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	session, err := editor.NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	m := NewModel(cfg, session)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestPaneCycling(t *testing.T) {
	m := newTestModel(t)

	if m.activePane != PaneTemplates {
		t.Fatalf("initial pane = %d, want templates", m.activePane)
	}

	m = press(t, m, "tab", "tab", "tab", "tab")
	if m.activePane != PaneTemplates {
		t.Errorf("after four tabs pane = %d, want wrap to templates", m.activePane)
	}

	m = press(t, m, "shift+tab")
	if m.activePane != PaneBatch {
		t.Errorf("shift+tab from templates = %d, want batch", m.activePane)
	}
}

func TestApplyTemplateUpdatesPreview(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "j", "enter") // second built-in
	tpl := m.Session().Templates()[1]

	p := m.Session().Preview()
	if p.Color != tpl.Color || p.Rotate != tpl.Rotate {
		t.Errorf("preview = %+v, want color %s rotate %v", p, tpl.Color, tpl.Rotate)
	}
	if !strings.Contains(m.statusMsg, tpl.Name) {
		t.Errorf("statusMsg = %q, want mention of %q", m.statusMsg, tpl.Name)
	}
}

func TestSaveTemplateEmptyName(t *testing.T) {
	m := newTestModel(t)
	before := len(m.Session().Templates())

	m = press(t, m, "s", "enter")

	if got := len(m.Session().Templates()); got != before {
		t.Errorf("template count = %d, want unchanged %d", got, before)
	}
	msgs := m.Session().Messages()
	if len(msgs) != 1 || msgs[0].Kind != editor.KindError {
		t.Fatalf("messages = %+v, want exactly one error", msgs)
	}
	if m.saveMode {
		t.Error("saveMode still active after enter")
	}
}

func TestSaveTemplateWithName(t *testing.T) {
	m := newTestModel(t)
	before := len(m.Session().Templates())

	m = press(t, m, "s", "m", "y", " ", "l", "o", "o", "k", "enter")

	templates := m.Session().Templates()
	if len(templates) != before+1 {
		t.Fatalf("template count = %d, want %d", len(templates), before+1)
	}
	saved := templates[len(templates)-1]
	if saved.Name != "my look" {
		t.Errorf("saved name = %q, want %q", saved.Name, "my look")
	}
	if m.selectedTemplate != len(templates)-1 {
		t.Errorf("selection = %d, want last index %d", m.selectedTemplate, len(templates)-1)
	}
}

func TestSaveModeSwallowsGlobalKeys(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "s", "q") // q must type, not quit
	if !m.saveMode {
		t.Fatal("saveMode exited on q")
	}
	if m.nameInput != "q" {
		t.Errorf("nameInput = %q, want %q", m.nameInput, "q")
	}

	m = press(t, m, "backspace", "esc")
	if m.saveMode || m.nameInput != "" {
		t.Errorf("after esc: saveMode=%v input=%q, want cleared", m.saveMode, m.nameInput)
	}
}

func TestBatchRenderTransitions(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab", "tab") // batch pane

	m = press(t, m, "b")
	if len(m.batch) != 3 {
		t.Fatalf("batch size = %d, want 3", len(m.batch))
	}
	for i, item := range m.batch {
		if item.Status != sim.StatusProcessing {
			t.Errorf("item %d status = %s, want processing", i, item.Status)
		}
	}

	next, _ := m.Update(batchItemReadyMsg{run: m.batchRun, index: 1})
	m = next.(Model)
	if m.batch[1].Status != sim.StatusReady {
		t.Errorf("item 1 status = %s, want ready", m.batch[1].Status)
	}
	if m.batch[0].Status != sim.StatusProcessing {
		t.Errorf("item 0 status = %s, want still processing", m.batch[0].Status)
	}
}

func TestBatchIgnoresStaleRun(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab", "tab")

	m = press(t, m, "b")
	stale := m.batchRun
	m = press(t, m, "b") // restart bumps the run counter

	next, _ := m.Update(batchItemReadyMsg{run: stale, index: 0})
	m = next.(Model)
	if m.batch[0].Status != sim.StatusProcessing {
		t.Errorf("stale tick flipped item 0 to %s", m.batch[0].Status)
	}
}

func TestCloudRenderTransitions(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab", "tab")

	m = press(t, m, "c")
	if !m.cloudActive || m.cloudStatus != sim.StatusQueued {
		t.Fatalf("after c: active=%v status=%s, want queued", m.cloudActive, m.cloudStatus)
	}

	next, _ := m.Update(cloudReadyMsg{run: m.batchRun})
	m = next.(Model)
	if m.cloudStatus != sim.StatusReady {
		t.Errorf("cloud status = %s, want ready", m.cloudStatus)
	}
}

func TestBatchSurvivesCloudSend(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab", "tab")

	m = press(t, m, "b", "c") // cloud send while the batch is in flight

	for i := range m.batch {
		next, _ := m.Update(batchItemReadyMsg{run: m.batchRun, index: i})
		m = next.(Model)
	}
	for i, item := range m.batch {
		if item.Status != sim.StatusReady {
			t.Errorf("item %d status = %s, want ready", i, item.Status)
		}
	}
}

func TestCloudSurvivesBatchStart(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab", "tab")

	m = press(t, m, "c", "b") // batch start while the cloud send is queued

	next, _ := m.Update(cloudReadyMsg{run: m.cloudRun})
	m = next.(Model)
	if m.cloudStatus != sim.StatusReady {
		t.Errorf("cloud status = %s, want ready", m.cloudStatus)
	}
}

func TestPlayPulse(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab") // preview pane

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = next.(Model)
	if !m.playing {
		t.Fatal("p did not start the pulse")
	}
	if cmd == nil {
		t.Fatal("p returned no timer command")
	}

	next, _ = m.Update(pulseDoneMsg{})
	m = next.(Model)
	if m.playing {
		t.Error("pulse did not stop")
	}
}

func TestExportFormatCycleAndSelect(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab", "tab")

	m = press(t, m, "e", "enter") // webm
	if got := m.Session().Format; got != "webm" {
		t.Errorf("format = %q, want webm", got)
	}

	m = press(t, m, "e", "e", "enter") // gif is configured but unsupported
	if got := m.Session().Format; got != "webm" {
		t.Errorf("format = %q, want unchanged webm", got)
	}
	msgs := m.Session().Messages()
	if len(msgs) == 0 || msgs[0].Kind != editor.KindError {
		t.Error("unsupported format did not log an error first")
	}
}

func TestSceneAddAndAdjust(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab") // timeline pane

	m = press(t, m, "a")
	scenes := m.Session().Scenes()
	if len(scenes) != 1 {
		t.Fatalf("scene count = %d, want 1", len(scenes))
	}
	if scenes[0].Duration != editor.DefaultSceneDuration {
		t.Errorf("duration = %v, want default %v", scenes[0].Duration, editor.DefaultSceneDuration)
	}

	// Ratchet far past the ceiling; the value must clamp.
	for i := 0; i < 40; i++ {
		m = press(t, m, "l")
	}
	if got := m.Session().Scenes()[0].Duration; got != editor.MaxSceneDuration {
		t.Errorf("duration = %v, want clamped %v", got, editor.MaxSceneDuration)
	}

	for i := 0; i < 40; i++ {
		m = press(t, m, "h")
	}
	if got := m.Session().Scenes()[0].Duration; got != editor.MinSceneDuration {
		t.Errorf("duration = %v, want clamped %v", got, editor.MinSceneDuration)
	}
}

func TestViewRendersAllPanes(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab") // timeline
	m = press(t, m, "a")

	out := m.View()
	for _, want := range []string{"MOTIONLAB", "Templates", "Preview", "Timeline", "Render", "Messages", "Scene 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	cfg := config.Default()
	session, err := editor.NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	m := NewModel(cfg, session)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q before sizing", got)
	}
}
