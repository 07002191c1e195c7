package models

// Embed colors shared by all displays
const (
	ColorInfo    = 0x5865F2
	ColorSuccess = 0x4CAF50
	ColorError   = 0xF44336
	ColorWarning = 0xFF9800
	ColorGold    = 0xFFD700
)

// OptionStyle is the visual weight of an option
type OptionStyle string

const (
	OptionPrimary   OptionStyle = "primary"
	OptionSecondary OptionStyle = "secondary"
	OptionSuccess   OptionStyle = "success"
	OptionDanger    OptionStyle = "danger"
)

// Option is a selectable control bound to a structured action
type Option struct {
	Label    string
	Style    OptionStyle
	Action   Action
	Disabled bool
}

// DisplayField is a titled block of text
type DisplayField struct {
	Name   string
	Value  string
	Inline bool
}

// Display is the platform-neutral presentation of a state transition
type Display struct {
	Title       string
	Description string
	Color       int
	Fields      []DisplayField

	// Options is laid out as rows of controls
	Options [][]Option

	Footer string
}
