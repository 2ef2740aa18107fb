package ui

// Icons (emojis/symbols)
const (
	IconFolder   = "📁"
	IconFile     = "📄"
	IconRefresh  = "⟳"
	IconSearch   = "🔍"
	IconSettings = "⚙"
)

// Labels
const (
	AppTitle          = "Flight Log Viewer"
	LabelRefresh      = IconRefresh + " Refresh"
	LabelShowInFolder = IconFile + " Show in folder"
	LabelOpenFolder   = IconFolder + " Open folder"
	LabelChangeFolder = "Change…"
	LabelSearch       = "Filter sessions"
	LabelNoSelection  = "Select a session to reveal it"
)

// Status messages
const (
	StatusSessionsFormat = "%d sessions in %s"
	StatusFilteredFormat = "%d of %d sessions in %s"
	StatusEmptyFormat    = "No flight data in %s"
	StatusErrorFormat    = "Cannot read %s: %v"
)

// Layout sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 480
)
