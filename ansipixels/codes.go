package ansipixels

// Ansi codes.
const (
	Bold       = "\x1b[1m"
	Dim        = "\x1b[2m"
	Underlined = "\x1b[4m"
	Reverse    = "\x1b[7m"

	Reset = "\033[0m"
	// Foreground Colors.
	Black       = "\033[30m"
	Red         = "\033[31m"
	Green       = "\033[32m"
	Yellow      = "\033[33m"
	Blue        = "\033[34m"
	Cyan        = "\033[36m"
	Gray        = "\033[37m"
	DarkGray    = "\033[90m"
	BrightRed   = "\033[91m"
	BrightGreen = "\033[92m"
	White       = "\033[97m"

	// Background Colors.
	BlackBG = "\033[40m"
	RedBG   = "\033[41m"
	GreenBG = "\033[42m"
	WhiteBG = "\033[107m"
)
