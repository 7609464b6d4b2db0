package model

import (
	"errors"
	"strings"
	"time"
)

// FoodItem is one food the user reported eating.
type FoodItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

var (
	ErrFoodNameRequired     = errors.New("food item name is required")
	ErrFoodQuantityInvalid  = errors.New("food item quantity must be positive")
	ErrFoodUnitRequired     = errors.New("food item unit is required")
	ErrCaloriesOutOfRange   = errors.New("calories must be between 0 and 10000")
	ErrWeightOutOfRange     = errors.New("weight must be between 20 and 300 kg")
	ErrInvalidGoalType      = errors.New("goal type must be weight_loss, muscle_gain or maintenance")
	ErrInvalidSummaryPeriod = errors.New("period must be daily, weekly or monthly")
)

// Validate checks the item has a name, a positive quantity and a unit.
func (f FoodItem) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrFoodNameRequired
	}
	if f.Quantity <= 0 {
		return ErrFoodQuantityInvalid
	}
	if strings.TrimSpace(f.Unit) == "" {
		return ErrFoodUnitRequired
	}
	return nil
}

// NutritionEntry is the estimated energy and macros of one food item.
type NutritionEntry struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// CalorieEstimate is the outcome of calorie estimation for a set of items.
type CalorieEstimate struct {
	Total     int              `json:"total"`
	Breakdown []NutritionEntry `json:"breakdown"`
}

// FoodLog is one append-only food log entry.
type FoodLog struct {
	ID            string           `json:"id,omitempty"`
	UserID        string           `json:"user_id"`
	Timestamp     time.Time        `json:"timestamp"`
	FoodItems     []FoodItem       `json:"food_items"`
	TotalCalories int              `json:"total_calories"`
	Breakdown     []NutritionEntry `json:"breakdown"`
}

// Measurement units the food parser is told about.
var (
	UnitsWeight = []string{"grams", "g", "kg", "kilograms", "oz", "ounces", "lbs", "pounds"}
	UnitsVolume = []string{"ml", "milliliters", "l", "liters", "cups", "tbsp", "tsp"}
	UnitsCount  = []string{"pieces", "items", "servings", "slices"}
)

// Meal types a reminder can be scheduled for.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes lists every accepted meal type.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ValidMealType reports whether s is one of MealTypes.
func ValidMealType(s string) bool {
	for _, m := range MealTypes {
		if m == s {
			return true
		}
	}
	return false
}
