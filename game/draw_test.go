package game

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func spritesOf(list DrawList, asset Asset) []Sprite {
	var out []Sprite
	for _, sprite := range list.Sprites {
		if sprite.Asset == asset {
			out = append(out, sprite)
		}
	}
	return out
}

func TestDrawHiddenField(t *testing.T) {
	field, err := NewField(testConfig(3, 3, 0, 1))
	require.NoError(t, err)
	palette := DefaultPalette()

	list := field.Draw()
	require.Len(t, list.Rects, 9)
	assert.Empty(t, list.Labels)
	assert.Len(t, spritesOf(list, AssetPawn), 9)

	for i, rect := range list.Rects {
		assert.Equal(t, palette.Hidden, rect.Color)
		assert.Equal(t, field.layout.Rect(i), rect.Bounds)
	}
	assert.InDelta(t, 56, list.Sprites[0].Size, 1e-9)
}

func TestDrawFlag(t *testing.T) {
	field, err := NewField(testConfig(3, 3, 0, 1))
	require.NoError(t, err)
	require.NoError(t, field.ToggleFlag(4))

	list := field.Draw()
	flags := spritesOf(list, AssetFlag)
	require.Len(t, flags, 1)
	assert.Equal(t, field.layout.Center(4), flags[0].Center)
	assert.Len(t, spritesOf(list, AssetPawn), 8)
	assert.Equal(t, DefaultPalette().Revealed, list.Rects[4].Color)
}

func TestDrawNumbersAndMines(t *testing.T) {
	palette := DefaultPalette()
	field := newPresetField(t,
		"*..",
		"*..",
	)

	require.NoError(t, field.Reveal(2))
	list := field.Draw()

	require.Len(t, list.Labels, 2)
	assert.Equal(t, Label{Text: "2", Color: palette.Numbers[1], Center: field.layout.Center(1)}, list.Labels[0])
	assert.Equal(t, Label{Text: "2", Color: palette.Numbers[1], Center: field.layout.Center(4)}, list.Labels[1])
	assert.Equal(t, palette.Revealed, list.Rects[2].Color)
	assert.Len(t, spritesOf(list, AssetPawn), 2)

	field = newPresetField(t,
		"*..",
		"*..",
	)
	require.NoError(t, field.Reveal(0))
	list = field.Draw()
	assert.Equal(t, palette.Alarm, list.Rects[0].Color)
	assert.Equal(t, palette.Alarm, list.Rects[3].Color)
	assert.Len(t, spritesOf(list, AssetQueen), 2)
	assert.Empty(t, spritesOf(list, AssetPawn))
}

func TestDrawHoverColor(t *testing.T) {
	field, err := NewField(testConfig(3, 3, 0, 1))
	require.NoError(t, err)
	palette := DefaultPalette()

	field.Update(Input{Mouse: field.layout.Center(0), Elapsed: time.Second})
	color := field.Draw().Rects[0].Color
	assert.InDelta(t, palette.Hover.R, color.R, 1e-9)
	assert.InDelta(t, palette.Hover.G, color.G, 1e-9)
	assert.InDelta(t, palette.Hover.B, color.B, 1e-9)

	assert.Equal(t, palette.Hidden, field.Draw().Rects[1].Color)
}

func TestSquareState(t *testing.T) {
	assert.Equal(t, Unrevealed, Square{}.State())
	assert.Equal(t, Flag, Square{hasFlag: true}.State())
	assert.Equal(t, Empty, Square{isRevealed: true}.State())
	assert.Equal(t, Number3, Square{isRevealed: true, numMines: 3}.State())
	assert.Equal(t, Mine, Square{isRevealed: true, hasMine: true}.State())
}
