package random

import (
	"github.com/they4kman/queensweep/game"
	"math/rand"
)

// Director reveals a random hidden, unflagged square on every act
type Director struct {
	rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Act(field *game.Field) (bool, error) {
	if field.State() != game.Ongoing {
		return false, nil
	}

	var candidates []int
	for i := 0; i < field.Grid().Cells(); i++ {
		square := field.Square(i)
		if !square.IsRevealed() && !square.HasFlag() {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return false, nil
	}

	return true, field.Reveal(candidates[director.rand.Intn(len(candidates))])
}
