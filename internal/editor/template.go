package editor

// Template is a named bundle of visual parameters applicable to the
// preview surface. Rotate is in degrees.
type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Rotate      float64 `json:"rotate"`
	PathText    string  `json:"path_text"`
	BuiltIn     bool    `json:"built_in"`
}

// builtinTemplates are the immutable presets that ship with the studio.
// User templates are appended after these in the selectable list.
func builtinTemplates() []Template {
	return []Template{
		{
			ID:          "builtin-classic",
			Name:        "Classic Title",
			Description: "Centered caption, no tilt",
			Color:       "#d5c4a1",
			Rotate:      0,
			PathText:    "عنوان پروژه",
			BuiltIn:     true,
		},
		{
			ID:          "builtin-neon",
			Name:        "Neon Drift",
			Description: "Cool accent with a slight tilt",
			Color:       "#76e3ea",
			Rotate:      8,
			PathText:    "در مسیر نور",
			BuiltIn:     true,
		},
		{
			ID:          "builtin-sunset",
			Name:        "Sunset Fade",
			Description: "Warm accent, counter tilt",
			Color:       "#fb4934",
			Rotate:      -6,
			PathText:    "غروب آفتاب",
			BuiltIn:     true,
		},
		{
			ID:          "builtin-calm",
			Name:        "Calm Sea",
			Description: "Muted blue, gentle rotation",
			Color:       "#83a598",
			Rotate:      3,
			PathText:    "دریای آرام",
			BuiltIn:     true,
		},
	}
}
