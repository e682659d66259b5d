package editor

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/kavehm/motionlab/internal/store"
	"github.com/kavehm/motionlab/pkg/jsonutil"
	"github.com/kavehm/motionlab/pkg/timeutil"
)

// ProjectState is the serializable form of everything a project carries.
// User templates are persisted separately and are not part of a snapshot.
type ProjectState struct {
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Font       string         `json:"font"`
	FontSize   int            `json:"size"`
	Animation  string         `json:"animation"`
	Transition string         `json:"transition"`
	Resolution string         `json:"resolution"`
	FPS        int            `json:"fps"`
	Format     string         `json:"format"`
	Preview    Preview        `json:"preview"`
	Video      VideoSelection `json:"video"`
	Scenes     []Scene        `json:"scenes"`
}

// Snapshot captures the full project state.
func (s *Session) Snapshot() ProjectState {
	scenes := make([]Scene, len(s.scenes))
	copy(scenes, s.scenes)
	return ProjectState{
		Title:      s.Title,
		Body:       s.Body,
		Font:       s.Font,
		FontSize:   s.FontSize,
		Animation:  s.Animation,
		Transition: s.Transition,
		Resolution: s.Resolution,
		FPS:        s.FPS,
		Format:     s.Format,
		Preview:    s.preview,
		Video:      s.video,
		Scenes:     scenes,
	}
}

// Restore replaces the session's project state with the snapshot. Scene
// durations are clamped on the way in so older snapshots cannot smuggle
// out-of-range values.
func (s *Session) Restore(ps ProjectState) {
	s.Title = ps.Title
	s.Body = ps.Body
	s.Font = ps.Font
	s.FontSize = ps.FontSize
	s.Animation = ps.Animation
	s.Transition = ps.Transition
	s.Resolution = ps.Resolution
	s.FPS = ps.FPS
	s.Format = ps.Format
	s.preview = ps.Preview
	s.video = ps.Video

	s.scenes = make([]Scene, 0, len(ps.Scenes))
	for _, sc := range ps.Scenes {
		sc.Duration = ClampDuration(sc.Duration)
		s.scenes = append(s.scenes, sc)
	}
	s.sceneSeq = len(s.scenes)
}

// SaveProject persists the current state under the given name. The first
// save assigns the project id; later saves overwrite the same project.
func (s *Session) SaveProject(name string) error {
	if s.db == nil {
		return fmt.Errorf("no store configured")
	}
	if s.projectID == "" {
		s.projectID = uuid.NewString()
	}
	err := s.db.SaveProject(&store.Project{
		ProjectID: s.projectID,
		Name:      name,
		Data:      jsonutil.MustMarshal(s.Snapshot()),
		UpdatedAt: timeutil.NowNano(),
	})
	if err != nil {
		return fmt.Errorf("saving project %s: %w", name, err)
	}
	s.Log(fmt.Sprintf("Project saved: %s", name), KindInfo)
	return nil
}

// LoadProject restores a project snapshot from the store.
func (s *Session) LoadProject(projectID string) error {
	if s.db == nil {
		return fmt.Errorf("no store configured")
	}
	p, err := s.db.GetProject(projectID)
	if err != nil {
		return fmt.Errorf("loading project %s: %w", projectID, err)
	}
	var ps ProjectState
	if err := json.Unmarshal([]byte(p.Data), &ps); err != nil {
		return fmt.Errorf("decoding project %s: %w", projectID, err)
	}
	s.Restore(ps)
	s.projectID = p.ProjectID
	s.Log(fmt.Sprintf("Project loaded: %s", p.Name), KindInfo)
	return nil
}
