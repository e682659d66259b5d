// Package editor owns the application state of the motionlab studio:
// the template registry, the scene timeline, the preview parameters, and
// the message log. All mutation is synchronous; a Session is intended to
// be driven from a single goroutine (the TUI update loop or a CLI call).
package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/kavehm/motionlab/internal/config"
	"github.com/kavehm/motionlab/internal/store"
	"github.com/kavehm/motionlab/pkg/timeutil"
)

// ErrEmptyName is returned when a template is saved without a name.
var ErrEmptyName = errors.New("template name is required")

// MessageKind distinguishes informational notices from errors.
type MessageKind string

const (
	KindInfo  MessageKind = "info"
	KindError MessageKind = "error"
)

// Message is a transient, display-only notice. Newest messages come first.
type Message struct {
	Text string      `json:"text"`
	Kind MessageKind `json:"kind"`
}

// Preview holds the parameters currently applied to the preview surface.
type Preview struct {
	Color    string  `json:"color"`
	Rotate   float64 `json:"rotate"`
	PathText string  `json:"path_text"`
	Font     string  `json:"font"`
}

// VideoSelection holds the background-video configuration.
type VideoSelection struct {
	Path   string  `json:"path"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Volume float64 `json:"volume"`
}

// Session is the single owner of editor state. Views render from it by
// reference; nothing here is ambient or global.
type Session struct {
	cfg *config.Config
	db  store.Store

	builtins []Template
	user     []Template

	scenes   []Scene
	sceneSeq int

	messages []Message

	preview Preview
	video   VideoSelection

	// Project-wide settings
	Title      string
	Body       string
	Font       string
	FontSize   int
	Animation  string
	Transition string
	Resolution string
	FPS        int
	Format     string

	projectID string
}

// NewSession creates a session with the built-in templates and the user
// templates read once from the store.
func NewSession(cfg *config.Config, db store.Store) (*Session, error) {
	s := &Session{
		cfg:      cfg,
		db:       db,
		builtins: builtinTemplates(),

		Title:      "عنوان پروژه",
		Body:       cfg.SampleText,
		Font:       cfg.Fonts[0],
		FontSize:   36,
		Animation:  "fade",
		Transition: cfg.TransitionStyles[0],
		Resolution: cfg.DefaultResolution().Label,
		FPS:        cfg.FPSOptions[0],
		Format:     cfg.OutputFormats[0],

		video: VideoSelection{Volume: 1.0},
	}
	s.preview = Preview{
		Color:    s.builtins[0].Color,
		Rotate:   s.builtins[0].Rotate,
		PathText: s.builtins[0].PathText,
		Font:     s.Font,
	}

	if db != nil {
		saved, err := db.ListTemplates()
		if err != nil {
			return nil, fmt.Errorf("loading user templates: %w", err)
		}
		for _, t := range saved {
			s.user = append(s.user, Template{
				ID:          t.TemplateID,
				Name:        t.Name,
				Description: t.Description,
				Color:       t.Color,
				Rotate:      t.Rotate,
				PathText:    t.PathText,
			})
		}
	}

	return s, nil
}

// Templates returns the built-in presets concatenated with the user's,
// in that order.
func (s *Session) Templates() []Template {
	out := make([]Template, 0, len(s.builtins)+len(s.user))
	out = append(out, s.builtins...)
	out = append(out, s.user...)
	return out
}

// Apply looks up a template by id and applies its parameters to the
// preview. An unknown id is a silent no-op.
func (s *Session) Apply(id string) (Template, bool) {
	for _, t := range s.Templates() {
		if t.ID == id {
			s.preview.Color = t.Color
			s.preview.Rotate = t.Rotate
			s.preview.PathText = t.PathText
			return t, true
		}
	}
	return Template{}, false
}

// SaveTemplate validates and appends a new user template snapshotting the
// current preview parameters, persisting the result. An empty name yields
// exactly one error message and leaves the template list unchanged.
func (s *Session) SaveTemplate(name, description string) (Template, error) {
	if strings.TrimSpace(name) == "" {
		s.Log("Template name is required", KindError)
		return Template{}, ErrEmptyName
	}

	t := Template{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Color:       s.preview.Color,
		Rotate:      s.preview.Rotate,
		PathText:    s.preview.PathText,
	}

	if s.db != nil {
		err := s.db.InsertTemplate(&store.Template{
			TemplateID:  t.ID,
			Name:        t.Name,
			Description: t.Description,
			Color:       t.Color,
			Rotate:      t.Rotate,
			PathText:    t.PathText,
			CreatedAt:   timeutil.NowNano(),
		})
		if err != nil {
			s.Log(fmt.Sprintf("Could not persist template: %v", err), KindError)
			return Template{}, err
		}
	}

	s.user = append(s.user, t)
	s.Log(fmt.Sprintf("Template saved: %s", t.Name), KindInfo)
	return t, nil
}

// Preview returns the current preview parameters.
func (s *Session) Preview() Preview {
	return s.preview
}

// SetPreviewFont changes the preview font family.
func (s *Session) SetPreviewFont(font string) {
	s.Font = font
	s.preview.Font = font
}

// Log inserts a message at the head of the display list. The log grows
// without bound and is never persisted.
func (s *Session) Log(text string, kind MessageKind) {
	s.messages = append([]Message{{Text: text, Kind: kind}}, s.messages...)
}

// Messages returns the log, newest first.
func (s *Session) Messages() []Message {
	return s.messages
}

// SelectExportFormat records an export-format choice. The mp4, webm, and
// mov containers are supported; anything else is reported as an error.
func (s *Session) SelectExportFormat(format string) bool {
	switch format {
	case "mp4", "webm", "mov":
		s.Format = format
		s.Log(fmt.Sprintf("Export format set: %s", format), KindInfo)
		return true
	default:
		s.Log(fmt.Sprintf("Unsupported export format: %s", format), KindError)
		return false
	}
}

// SelectVideo records the background-video path after checking it exists.
func (s *Session) SelectVideo(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("video file not found: %s", path)
	}
	s.video.Path = path
	return nil
}

// SetTrim updates the background-video trim window.
func (s *Session) SetTrim(start, end float64) error {
	if start < 0 || end < 0 {
		return errors.New("start and end times must be non-negative")
	}
	if end != 0 && start > end {
		return errors.New("start time cannot exceed end time")
	}
	s.video.Start = start
	s.video.End = end
	return nil
}

// SetVolume updates the background-video volume.
func (s *Session) SetVolume(v float64) error {
	if v < 0 || v > 1 {
		return errors.New("volume must be between 0 and 1")
	}
	s.video.Volume = v
	return nil
}

// Video returns the current background-video selection.
func (s *Session) Video() VideoSelection {
	return s.video
}
