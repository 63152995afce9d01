// Package tcolor parses user supplied colors (names or RRGGBB) into ANSI
// terminal sequences, used for the table view border and felt.
package tcolor // import "fortio.org/blackjack/ansipixels/tcolor"

import (
	"fmt"
	"strings"
)

type BasicColor uint8

const (
	None         BasicColor = 0 // no color, default
	Black        BasicColor = 30
	Red          BasicColor = 31
	Green        BasicColor = 32
	Yellow       BasicColor = 33
	Blue         BasicColor = 34
	Purple       BasicColor = 35
	Cyan         BasicColor = 36
	Gray         BasicColor = 37
	DarkGray     BasicColor = 90
	BrightRed    BasicColor = 91
	BrightGreen  BasicColor = 92
	BrightYellow BasicColor = 93
	BrightBlue   BasicColor = 94
	BrightPurple BasicColor = 95
	BrightCyan   BasicColor = 96
	White        BasicColor = 97

	Reset = "\033[0m"
)

var basicNames = map[BasicColor]string{
	None:         "None",
	Black:        "Black",
	Red:          "Red",
	Green:        "Green",
	Yellow:       "Yellow",
	Blue:         "Blue",
	Purple:       "Purple",
	Cyan:         "Cyan",
	Gray:         "Gray",
	DarkGray:     "DarkGray",
	BrightRed:    "BrightRed",
	BrightGreen:  "BrightGreen",
	BrightYellow: "BrightYellow",
	BrightBlue:   "BrightBlue",
	BrightPurple: "BrightPurple",
	BrightCyan:   "BrightCyan",
	White:        "White",
}

func (c BasicColor) String() string {
	if n, ok := basicNames[c]; ok {
		return n
	}
	return fmt.Sprintf("BasicColor(%d)", uint8(c))
}

// Terminal foreground color string for the BasicColor.
func (c BasicColor) Foreground() string {
	if c == None {
		return ""
	}
	return fmt.Sprintf("\033[%dm", c)
}

// Terminal background color string for the BasicColor.
func (c BasicColor) Background() string {
	if c == None {
		return ""
	}
	return fmt.Sprintf("\033[%dm", c+10)
}

type RGBColor struct {
	R, G, B uint8
}

// Terminal foreground color string for RGBColor.
func (c RGBColor) Foreground() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Terminal background color string for RGBColor.
func (c RGBColor) Background() string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

type Color struct {
	Basic bool // Selector between BasicColor and RGBColor
	BasicColor
	RGBColor
}

func (c Color) String() string {
	if c.Basic {
		return c.BasicColor.String()
	}
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) Foreground() string {
	if c.Basic {
		return c.BasicColor.Foreground()
	}
	return c.RGBColor.Foreground()
}

func (c Color) Background() string {
	if c.Basic {
		return c.BasicColor.Background()
	}
	return c.RGBColor.Background()
}

// Ordered list of the basic colors.
var BasicColorList = []BasicColor{
	None, Black, Red, Green, Yellow, Blue, Purple, Cyan, Gray,
	DarkGray, BrightRed, BrightGreen, BrightYellow, BrightBlue, BrightPurple, BrightCyan, White,
}

// Map from lowercase color name to BasicColor.
var ColorMap map[string]BasicColor

// Help string for the basic color choices.
var ColorHelp string

func init() {
	ColorMap = make(map[string]BasicColor, len(BasicColorList))
	names := make([]string, 0, len(BasicColorList))
	for _, c := range BasicColorList {
		lower := strings.ToLower(c.String())
		ColorMap[lower] = c
		names = append(names, lower)
	}
	ColorHelp = strings.Join(names, ", ")
}

// Extract RGB values from a hex color string (RRGGBB) or error.
func RGBFromString(color string) (RGBColor, error) {
	var r, g, b uint8
	n, err := fmt.Sscanf(color, "%02x%02x%02x", &r, &g, &b)
	if err != nil || n != 3 {
		return RGBColor{}, fmt.Errorf("invalid hex color '%s', must be hex RRGGBB: %w", color, err)
	}
	return RGBColor{R: r, G: g, B: b}, nil
}

// FromString converts user input color string to a terminal color.
func FromString(color string) (Color, error) {
	toRemove := " \t\r\n_-#"
	color = strings.ToLower(strings.Map(func(r rune) rune {
		if strings.ContainsRune(toRemove, r) {
			return -1
		}
		return r
	}, color))
	if c, ok := ColorMap[color]; ok {
		return Color{Basic: true, BasicColor: c}, nil
	}
	if len(color) == 6 {
		rgbColor, err := RGBFromString(color)
		if err != nil {
			return Color{}, err
		}
		return Color{RGBColor: rgbColor}, nil
	}
	return Color{}, fmt.Errorf("invalid color '%s', must be RRGGBB or one of: %s", color, ColorHelp)
}
