package settings

// Item represents a settings entry in a list or grid
type Item struct {
	Title   string
	Value   string
	Checked bool // the entry is the active choice
}

// MenuType identifies the settings page being displayed
type MenuType string

const (
	PlayerMenu      MenuType = "player"
	LoadTimeoutMenu MenuType = "player/loadTimeout"
)
