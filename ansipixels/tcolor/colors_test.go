package tcolor_test

import (
	"testing"

	"fortio.org/blackjack/ansipixels/tcolor"
)

func TestHelpString(t *testing.T) {
	expected := "none, black, red, green, yellow, blue, purple, cyan, gray, darkgray, " +
		"brightred, brightgreen, brightyellow, brightblue, brightpurple, brightcyan, white"
	if tcolor.ColorHelp != expected {
		t.Errorf("Expected %q, got %q", expected, tcolor.ColorHelp)
	}
}

func TestParsingBasicColors(t *testing.T) {
	tests := []struct {
		input    string
		expected tcolor.BasicColor
	}{
		{"none", tcolor.None},
		{"white", tcolor.White},
		{"Green", tcolor.Green},
		{" bRig_ht - BLue ", tcolor.BrightBlue},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			parsedColor, err := tcolor.FromString(test.input)
			if err != nil {
				t.Errorf("Failed to parse %q: %v", test.input, err)
				return
			}
			if !parsedColor.Basic {
				t.Errorf("Expected basic color for %q, got %#v", test.input, parsedColor)
				return
			}
			if parsedColor.BasicColor != test.expected {
				t.Errorf("Parsed %q as %d, expected %d", test.input, parsedColor.BasicColor, test.expected)
			}
		})
	}
}

func TestParsingRGBColor(t *testing.T) {
	tests := []struct {
		input    string
		expected tcolor.RGBColor
	}{
		{"#000000", tcolor.RGBColor{R: 0, G: 0, B: 0}},
		{"#FFFFFF", tcolor.RGBColor{R: 255, G: 255, B: 255}},
		{"#0B6623", tcolor.RGBColor{R: 11, G: 102, B: 35}}, // felt green
		{"35654D", tcolor.RGBColor{R: 53, G: 101, B: 77}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			parsedColor, err := tcolor.FromString(test.input)
			if err != nil {
				t.Errorf("Failed to parse %q: %v", test.input, err)
				return
			}
			if parsedColor.Basic || parsedColor.RGBColor != test.expected {
				t.Errorf("Parsed %q as %#v, expected %#v", test.input, parsedColor, test.expected)
			}
		})
	}
}

func TestParsingErrors(t *testing.T) {
	for _, input := range []string{"", "felt", "12345", "GGGGGG"} {
		if c, err := tcolor.FromString(input); err == nil {
			t.Errorf("Expected error for %q, got %v", input, c)
		}
	}
}

func TestSequences(t *testing.T) {
	if got := tcolor.Red.Foreground(); got != "\033[31m" {
		t.Errorf("Red foreground = %q", got)
	}
	if got := tcolor.Green.Background(); got != "\033[42m" {
		t.Errorf("Green background = %q", got)
	}
	if tcolor.None.Foreground() != "" || tcolor.None.Background() != "" {
		t.Errorf("None should have no sequences")
	}
	c := tcolor.Color{RGBColor: tcolor.RGBColor{R: 1, G: 2, B: 3}}
	if c.Background() != "\033[48;2;1;2;3m" || c.String() != "010203" {
		t.Errorf("RGB color %q %q", c.Background(), c.String())
	}
	b := tcolor.Color{Basic: true, BasicColor: tcolor.BrightCyan}
	if b.Foreground() != "\033[96m" || b.String() != "BrightCyan" {
		t.Errorf("Basic color %q %q", b.Foreground(), b.String())
	}
}
