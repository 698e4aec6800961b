package ui

import "time"

// Terminal size defaults and thresholds.
const (
	// DefaultWidth and DefaultHeight are used until the first WindowSizeMsg.
	DefaultWidth  = 100
	DefaultHeight = 30

	// LayoutCompactWidth is the threshold below which nav labels are hidden.
	LayoutCompactWidth = 80
)

// Modal geometry.
const (
	// ModalMaxWidth caps the recipe modal width.
	ModalMaxWidth = 90

	// ModalMargin is the gap kept between a modal and the screen edge.
	ModalMargin = 4
)

// List display limits.
const (
	// ListWindow is the number of cookbook rows shown around the cursor.
	ListWindow = 12
)

// Timing constants.
const (
	// ThemeSaveTimeout bounds the preference request fired by the theme toggle.
	ThemeSaveTimeout = 10 * time.Second
)
