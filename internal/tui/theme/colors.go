package theme

import "github.com/thenoetrevino/dragboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight       string
	Background      string
	Subtle          string
	Normal          string
	Title           string
	LaneBorder      string
	DroppableBorder string
	CardBorder      string
	CardBg          string
	SelectedBorder  string
	SelectedBg      string
	CarriedBg       string
	InfoFg          string
	InfoBg          string
	WarningFg       string
	WarningBg       string
	ErrorFg         string
	ErrorBg         string
	StatusBarBg     string
	StatusBarText   string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	LaneBorder = colors.LaneBorder
	DroppableBorder = colors.DroppableBorder
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	CarriedBg = colors.CarriedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
