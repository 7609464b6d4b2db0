package usecase

// Log prefixes
const (
	LogPrefixEstimate = "internal.foodlog.usecase.Estimate"
	LogPrefixRecord   = "internal.foodlog.usecase.Record"
)

// PromptEstimateCalories takes the item lines ("- name: qty unit").
const PromptEstimateCalories = `Estimate calories and macronutrients for these food items:

%s

For each item, estimate:
- calories: total calories
- protein: grams of protein
- carbs: grams of carbohydrates
- fat: grams of fat

Respond with JSON only:
{
    "total": total_calories,
    "breakdown": [
        {
            "name": "food_name",
            "quantity": quantity,
            "unit": "unit",
            "calories": calories,
            "protein": protein_grams,
            "carbs": carbs_grams,
            "fat": fat_grams
        }
    ]
}`
