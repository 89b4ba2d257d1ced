package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconConfig  = "" // config
	IconFolder  = "" // folder
	IconLogs    = "" // file-text

	// UI
	IconCursor = "" // chevron-right

	// Layout
	IconTab  = "" // table
	IconPane = "" // columns
	IconTree = "" // tree
	IconDrag = "" // arrows
)
