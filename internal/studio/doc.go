// Package studio implements the motionlab terminal user interface.
//
// A lyric-video editing studio built with Charmbracelet's BubbleTea
// and Lipgloss libraries.
//
// Component architecture:
//
//	model.go     — root model, message routing, Init/Update
//	theme.go     — centralized color + style definitions
//	header.go    — top bar + footer with keyboard hints
//	templates.go — template preset list
//	preview.go   — caption preview with play pulse and waveform
//	timeline.go  — scene list with duration bars
//	batch.go     — batch/cloud render status + export format
//	messages.go  — newest-first activity log
//	helpers.go   — truncation, option cycling, etc.
package studio
