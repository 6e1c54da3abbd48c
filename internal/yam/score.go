package yam

import "github.com/rocketscienceinc/yamduel-backend/internal/entity"

const (
	scoreFull        = 25
	scorePetiteSuite = 30
	scoreGrandeSuite = 40
	scoreYam         = 50

	upperBonus          = 35
	upperBonusThreshold = 63
	extraYamBonus       = 100
)

// Score computes the value a roll is worth in a category. It is pure: same
// dice, same category, same result.
func Score(category Category, dice [5]int) int {
	counts := faceCounts(dice)
	sum := diceSum(dice)

	switch category {
	case CategoryOne:
		return counts[1] * 1
	case CategoryTwo:
		return counts[2] * 2
	case CategoryThree:
		return counts[3] * 3
	case CategoryFour:
		return counts[4] * 4
	case CategoryFive:
		return counts[5] * 5
	case CategorySix:
		return counts[6] * 6
	case CategoryBrelan:
		if hasAtLeastNOfAKind(counts, 3) {
			return sum
		}
		return 0
	case CategoryCarre:
		if hasAtLeastNOfAKind(counts, 4) {
			return sum
		}
		return 0
	case CategoryFull:
		if isFull(counts) {
			return scoreFull
		}
		return 0
	case CategoryPetiteSuite:
		if hasRun(counts, 1, 4) || hasRun(counts, 2, 4) || hasRun(counts, 3, 4) {
			return scorePetiteSuite
		}
		return 0
	case CategoryGrandeSuite:
		if hasRun(counts, 1, 5) || hasRun(counts, 2, 5) {
			return scoreGrandeSuite
		}
		return 0
	case CategoryYam:
		if hasAtLeastNOfAKind(counts, 5) {
			return scoreYam
		}
		return 0
	case CategoryChance:
		return sum
	default:
		return 0
	}
}

// PossibleScores previews, for every category still open on the sheet, the
// value the current roll would commit. It never mutates the sheet.
func PossibleScores(dice [5]int, sheet *entity.ScoreSheet) map[Category]int {
	result := make(map[Category]int)
	for _, category := range Categories {
		if !IsFilled(sheet, category) {
			result[category] = Score(category, dice)
		}
	}
	return result
}

// RecomputeTotals refreshes the derived sheet fields from the committed slots
// and the player's extra yam counter. Calling it twice with the same inputs
// yields the same totals.
func RecomputeTotals(sheet *entity.ScoreSheet, extraYamCount int) {
	subtotal := orZero(sheet.One) + orZero(sheet.Two) + orZero(sheet.Three) +
		orZero(sheet.Four) + orZero(sheet.Five) + orZero(sheet.Six)

	bonus := 0
	if subtotal >= upperBonusThreshold {
		bonus = upperBonus
	}

	total := subtotal + bonus +
		orZero(sheet.Brelan) +
		orZero(sheet.Carre) +
		orZero(sheet.Full) +
		orZero(sheet.PetiteSuite) +
		orZero(sheet.GrandeSuite) +
		orZero(sheet.Yam) +
		orZero(sheet.Chance)

	if extraYamCount > 0 {
		total += extraYamCount * extraYamBonus
	}

	sheet.UpperSubtotal = subtotal
	sheet.UpperBonus = bonus
	sheet.GrandTotal = total
}

// IsYamRoll reports whether the dice currently qualify as a five-of-a-kind.
func IsYamRoll(dice [5]int) bool {
	return Score(CategoryYam, dice) == scoreYam
}

func faceCounts(dice [5]int) [7]int {
	var counts [7]int
	for _, die := range dice {
		if die >= 1 && die <= 6 {
			counts[die]++
		}
	}
	return counts
}

func diceSum(dice [5]int) int {
	sum := 0
	for _, die := range dice {
		sum += die
	}
	return sum
}

func hasAtLeastNOfAKind(counts [7]int, n int) bool {
	for face := 1; face <= 6; face++ {
		if counts[face] >= n {
			return true
		}
	}
	return false
}

// isFull requires an exact three-of-a-kind plus an exact pair; five of a kind
// is not a full house.
func isFull(counts [7]int) bool {
	hasThree, hasPair := false, false
	for face := 1; face <= 6; face++ {
		if counts[face] == 3 {
			hasThree = true
		}
		if counts[face] == 2 {
			hasPair = true
		}
	}
	return hasThree && hasPair
}

func hasRun(counts [7]int, start, length int) bool {
	for face := start; face < start+length; face++ {
		if counts[face] == 0 {
			return false
		}
	}
	return true
}

func orZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
