package showcase

import "vitrine/internal/domain/entity"

// Gallery tracks the slide index over one media sequence. Both the card
// carousel and the detail-view viewer share its circular wraparound rules.
type Gallery struct {
	media []entity.MediaItem
	index int
}

// NewGallery binds a gallery to a media sequence, starting at slide 0.
func NewGallery(media []entity.MediaItem) *Gallery {
	return &Gallery{media: media}
}

// Len returns the number of media items.
func (g *Gallery) Len() int {
	return len(g.media)
}

// Index returns the current slide index.
func (g *Gallery) Index() int {
	return g.index
}

// Current returns the media item under the slide index. The second return is
// false for an empty gallery.
func (g *Gallery) Current() (entity.MediaItem, bool) {
	if len(g.media) == 0 {
		return entity.MediaItem{}, false
	}
	return g.media[g.index], true
}

// Next advances one slide, wrapping from the last index back to 0.
func (g *Gallery) Next() {
	if len(g.media) == 0 {
		return
	}
	g.index = (g.index + 1) % len(g.media)
}

// Prev steps back one slide, wrapping from 0 to the last index.
func (g *Gallery) Prev() {
	if len(g.media) == 0 {
		return
	}
	g.index = (g.index - 1 + len(g.media)) % len(g.media)
}

// Select jumps to an absolute slide index, as the thumbnail strip does.
// Out-of-range indices are ignored.
func (g *Gallery) Select(i int) {
	if i < 0 || i >= len(g.media) {
		return
	}
	g.index = i
}

// ShowNav reports whether navigation arrows should be rendered. A single
// slide renders statically.
func (g *Gallery) ShowNav() bool {
	return len(g.media) > 1
}
