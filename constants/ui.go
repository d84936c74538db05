package constants

// Text
const (
	Heading        = "Guess the Color!"
	ScorePrefix    = "Score: "
	NewGameLabel   = "New Game"
	TooSmallNotice = "Terminal too small"
	KeyHint        = "1-6 pick  ←↑↓→ move  ⏎ select  n new game  m sound  q quit"
)

// Layout, in terminal cells
const (
	// GridColumns is the number of option buttons per row
	GridColumns = 3

	// PanelWidth is the preferred width of the game panel
	PanelWidth = 48

	// MinPanelWidth is the smallest width that still fits three buttons
	MinPanelWidth = 24

	// SwatchHeight is the preferred height of the target swatch
	SwatchHeight = 6

	// ButtonHeight is the preferred height of an option button
	ButtonHeight = 3

	// ButtonGap is the spacing between option buttons
	ButtonGap = 2

	// MinHeight is the smallest height for the compact layout
	MinHeight = 16
)

// Key bindings
const (
	KeyNewGame     = 'n'
	KeyRestart     = 'r'
	KeyToggleSound = 'm'
	KeyQuit        = 'q'
)
