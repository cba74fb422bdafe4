package settings

import "tv-frame/pkg/humanize"

// Titles of the player settings entries
const (
	LoadTimeoutTitle = "加载超时"
)

// BuildPlayerMenuItems creates the player settings list
func BuildPlayerMenuItems(loadTimeoutMs int64) []Item {
	return []Item{
		{
			Title: LoadTimeoutTitle,
			Value: humanize.Ms(loadTimeoutMs),
		},
	}
}

// BuildChoiceItems creates one entry per option, checking the one equal to
// current. label formats each option for display.
func BuildChoiceItems(options []int64, current int64, label func(int64) string) []Item {
	items := make([]Item, len(options))
	for i, opt := range options {
		items[i] = Item{Title: label(opt), Checked: opt == current}
	}
	return items
}
