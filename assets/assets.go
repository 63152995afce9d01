// Package assets loads and caches the card images used by the table view.
// Files are named after the card, e.g. Spades2.png, HeartsA.png, back.png.
package assets // import "fortio.org/blackjack/assets"

import (
	"fmt"
	"image"
	"path/filepath"

	"fortio.org/blackjack"
	"fortio.org/blackjack/ansipixels"
	"fortio.org/log"
)

// BackFileName is the image used for face down cards.
const BackFileName = "back.png"

type sized struct {
	name string
	w, h int
}

// Cache decodes each image once and keeps the scaled versions per size.
type Cache struct {
	Dir      string
	original map[string]*image.RGBA
	scaled   map[sized]*image.RGBA
}

func New(dir string) *Cache {
	return &Cache{
		Dir:      dir,
		original: make(map[string]*image.RGBA),
		scaled:   make(map[sized]*image.RGBA),
	}
}

// FileName of the image for card.
func FileName(card blackjack.Card) string {
	return card.Suit.String() + card.Rank.String() + ".png"
}

// Card returns the card face (or back when hidden) scaled to w x h pixels.
func (c *Cache) Card(card blackjack.Card, hidden bool, w, h int) (*image.RGBA, error) {
	if hidden {
		return c.Get(BackFileName, w, h)
	}
	return c.Get(FileName(card), w, h)
}

// Get returns the named image scaled to w x h pixels.
func (c *Cache) Get(name string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d for %s", w, h, name)
	}
	key := sized{name, w, h}
	if img, ok := c.scaled[key]; ok {
		return img, nil
	}
	orig, ok := c.original[name]
	if !ok {
		var err error
		orig, err = ansipixels.ReadImage(filepath.Join(c.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("card image %s: %w", name, err)
		}
		log.LogVf("Loaded %s (%v) from %s", name, orig.Bounds().Size(), c.Dir)
		c.original[name] = orig
	}
	img := ansipixels.Scale(orig, w, h)
	c.scaled[key] = img
	return img, nil
}

// Len is the number of distinct images decoded so far.
func (c *Cache) Len() int {
	return len(c.original)
}
