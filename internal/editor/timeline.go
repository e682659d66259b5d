package editor

import (
	"fmt"

	"github.com/google/uuid"
)

// Scene duration bounds in seconds.
const (
	MinSceneDuration     = 2.0
	MaxSceneDuration     = 15.0
	DefaultSceneDuration = 4.0
)

// Scene is a timeline segment with an editable duration.
type Scene struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// ClampDuration restricts a duration to [MinSceneDuration, MaxSceneDuration].
func ClampDuration(v float64) float64 {
	if v < MinSceneDuration {
		return MinSceneDuration
	}
	if v > MaxSceneDuration {
		return MaxSceneDuration
	}
	return v
}

// AddScene appends a scene with an auto-generated name and the default
// duration, and returns it.
func (s *Session) AddScene() Scene {
	s.sceneSeq++
	sc := Scene{
		ID:       uuid.NewString(),
		Name:     fmt.Sprintf("Scene %d", s.sceneSeq),
		Duration: DefaultSceneDuration,
	}
	s.scenes = append(s.scenes, sc)
	return sc
}

// SetSceneDuration clamps the value to the scene bounds and updates only
// the named scene. Returns the stored duration and whether the scene exists.
func (s *Session) SetSceneDuration(id string, v float64) (float64, bool) {
	for i := range s.scenes {
		if s.scenes[i].ID == id {
			s.scenes[i].Duration = ClampDuration(v)
			return s.scenes[i].Duration, true
		}
	}
	return 0, false
}

// Scenes returns the ordered scene list.
func (s *Session) Scenes() []Scene {
	return s.scenes
}

// TotalDuration returns the summed duration of all scenes in seconds.
func (s *Session) TotalDuration() float64 {
	var total float64
	for _, sc := range s.scenes {
		total += sc.Duration
	}
	return total
}
