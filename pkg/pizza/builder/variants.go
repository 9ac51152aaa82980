package builder

import (
	"github.com/Dynatrace/pizzeria/pkg/recipe"
)

const (
	HawaiianName    = "hawaiian"
	HawaiianDough   = "cross"
	HawaiianSauce   = "mild"
	HawaiianTopping = "Ham and Pineapple"

	SpicyName    = "spicy"
	SpicyDough   = "pan baked"
	SpicySauce   = "hot"
	SpicyTopping = "pepperoni+salami"
)

var (
	_ PizzaBuilder = (*HawaiianPizzaBuilder)(nil)
	_ PizzaBuilder = (*SpicyPizzaBuilder)(nil)
	_ PizzaBuilder = (*RecipePizzaBuilder)(nil)
)

type HawaiianPizzaBuilder struct {
	stepBuilder
}

func NewHawaiianPizzaBuilder() *HawaiianPizzaBuilder {
	return &HawaiianPizzaBuilder{
		stepBuilder: newStepBuilder(HawaiianName, HawaiianDough, HawaiianSauce, HawaiianTopping),
	}
}

type SpicyPizzaBuilder struct {
	stepBuilder
}

func NewSpicyPizzaBuilder() *SpicyPizzaBuilder {
	return &SpicyPizzaBuilder{
		stepBuilder: newStepBuilder(SpicyName, SpicyDough, SpicySauce, SpicyTopping),
	}
}

// RecipePizzaBuilder builds the variant described by a recipe file entry.
type RecipePizzaBuilder struct {
	stepBuilder
}

func NewRecipePizzaBuilder(r recipe.Recipe) *RecipePizzaBuilder {
	return &RecipePizzaBuilder{
		stepBuilder: newStepBuilder(r.Name, r.Dough, r.Sauce, r.Topping),
	}
}
