package assets_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"fortio.org/blackjack"
	"fortio.org/blackjack/assets"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		card blackjack.Card
		want string
	}{
		{blackjack.Card{Suit: blackjack.Spades, Rank: blackjack.Two}, "Spades2.png"},
		{blackjack.Card{Suit: blackjack.Hearts, Rank: blackjack.Ace}, "HeartsA.png"},
		{blackjack.Card{Suit: blackjack.Diamonds, Rank: blackjack.Ten}, "Diamonds10.png"},
		{blackjack.Card{Suit: blackjack.Clubs, Rank: blackjack.King}, "ClubsK.png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := assets.FileName(tt.card); got != tt.want {
				t.Errorf("FileName(%v) = %q, want %q", tt.card, got, tt.want)
			}
		})
	}
}

func writePNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 12))
	for y := range 12 {
		for x := range 8 {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestCache(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "HeartsA.png"), color.RGBA{R: 200, A: 255})
	writePNG(t, filepath.Join(dir, assets.BackFileName), color.RGBA{B: 200, A: 255})
	c := assets.New(dir)
	ace := blackjack.Card{Suit: blackjack.Hearts, Rank: blackjack.Ace}
	img, err := c.Card(ace, false, 4, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 6 {
		t.Errorf("scaled to %v, want 4x6", b)
	}
	again, _ := c.Card(ace, false, 4, 6)
	if again != img {
		t.Errorf("same size should come from the cache")
	}
	bigger, _ := c.Card(ace, false, 8, 12)
	if bigger == img || c.Len() != 1 {
		t.Errorf("new size should rescale the already decoded image, decoded %d", c.Len())
	}
	back, err := c.Card(ace, true, 4, 6)
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	if back.RGBAAt(2, 3).B == 0 {
		t.Errorf("hidden card should use the back image, got %v", back.RGBAAt(2, 3))
	}
	if c.Len() != 2 {
		t.Errorf("decoded %d images, want 2", c.Len())
	}
}

func TestCacheErrors(t *testing.T) {
	c := assets.New(t.TempDir())
	_, err := c.Card(blackjack.Card{Suit: blackjack.Clubs, Rank: blackjack.Two}, false, 4, 6)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
	if _, err = c.Get(assets.BackFileName, 0, 6); err == nil {
		t.Errorf("expected error for empty size")
	}
}
