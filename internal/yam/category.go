package yam

import "github.com/rocketscienceinc/yamduel-backend/internal/entity"

type Category string

const (
	CategoryOne   Category = "ONE"
	CategoryTwo   Category = "TWO"
	CategoryThree Category = "THREE"
	CategoryFour  Category = "FOUR"
	CategoryFive  Category = "FIVE"
	CategorySix   Category = "SIX"

	CategoryBrelan      Category = "BRELAN"
	CategoryCarre       Category = "CARRE"
	CategoryFull        Category = "FULL"
	CategoryPetiteSuite Category = "PETITE_SUITE"
	CategoryGrandeSuite Category = "GRANDE_SUITE"
	CategoryYam         Category = "YAM"
	CategoryChance      Category = "CHANCE"
)

// Categories is the fixed category order. It doubles as the priority order
// used to pick a slot for forced timeout scoring.
var Categories = []Category{
	CategoryOne, CategoryTwo, CategoryThree, CategoryFour, CategoryFive, CategorySix,
	CategoryBrelan, CategoryCarre, CategoryFull, CategoryPetiteSuite,
	CategoryGrandeSuite, CategoryYam, CategoryChance,
}

func IsValidCategory(category Category) bool {
	for _, known := range Categories {
		if category == known {
			return true
		}
	}
	return false
}

// slot maps a category to its sheet field.
func slot(sheet *entity.ScoreSheet, category Category) **int {
	switch category {
	case CategoryOne:
		return &sheet.One
	case CategoryTwo:
		return &sheet.Two
	case CategoryThree:
		return &sheet.Three
	case CategoryFour:
		return &sheet.Four
	case CategoryFive:
		return &sheet.Five
	case CategorySix:
		return &sheet.Six
	case CategoryBrelan:
		return &sheet.Brelan
	case CategoryCarre:
		return &sheet.Carre
	case CategoryFull:
		return &sheet.Full
	case CategoryPetiteSuite:
		return &sheet.PetiteSuite
	case CategoryGrandeSuite:
		return &sheet.GrandeSuite
	case CategoryYam:
		return &sheet.Yam
	case CategoryChance:
		return &sheet.Chance
	default:
		return nil
	}
}

func IsFilled(sheet *entity.ScoreSheet, category Category) bool {
	if s := slot(sheet, category); s != nil {
		return *s != nil
	}
	return false
}

// SetCategoryScore writes a value into the category slot. Guarding against
// overwriting an already filled slot is the caller's job.
func SetCategoryScore(sheet *entity.ScoreSheet, category Category, value int) {
	if s := slot(sheet, category); s != nil {
		*s = &value
	}
}

func AllCategoriesFilled(sheet *entity.ScoreSheet) bool {
	for _, category := range Categories {
		if !IsFilled(sheet, category) {
			return false
		}
	}
	return true
}

// FirstUnfilledCategory walks the priority order and returns the first open
// slot. The second result is false when the sheet is full.
func FirstUnfilledCategory(sheet *entity.ScoreSheet) (Category, bool) {
	for _, category := range Categories {
		if !IsFilled(sheet, category) {
			return category, true
		}
	}
	return "", false
}
