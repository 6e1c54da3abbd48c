package yam

import "math/rand"

const diceCount = 5

// Roller draws die faces from an injectable random source so tests can pin
// the rolls.
type Roller struct {
	intn func(n int) int
}

func NewRoller() *Roller {
	return &Roller{intn: rand.Intn} //nolint: gosec // game dice, not secrets
}

func NewRollerWithSource(intn func(n int) int) *Roller {
	return &Roller{intn: intn}
}

// RollAll draws five fresh faces in [1,6].
func (that *Roller) RollAll() [5]int {
	var dice [5]int
	for i := range diceCount {
		dice[i] = that.rollDie()
	}
	return dice
}

// RerollUnlocked redraws every unlocked position and preserves locked ones.
func (that *Roller) RerollUnlocked(current [5]int, locked [5]bool) [5]int {
	next := current
	for i := range diceCount {
		if !locked[i] {
			next[i] = that.rollDie()
		}
	}
	return next
}

func (that *Roller) rollDie() int {
	return that.intn(6) + 1
}
