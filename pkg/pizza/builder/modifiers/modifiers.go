package modifiers

import (
	"github.com/Dynatrace/pizzeria/pkg/pizza"
	"github.com/Dynatrace/pizzeria/pkg/util/builder"
)

type Modifier = builder.Modifier[pizza.Pizza]

// GenerateAllModifiers returns the step modifiers in build order: dough, sauce, topping.
func GenerateAllModifiers(dough, sauce, topping string) []Modifier {
	return []Modifier{
		NewDoughModifier(dough),
		NewSauceModifier(sauce),
		NewToppingModifier(topping),
	}
}

var _ Modifier = DoughModifier{}

type DoughModifier struct {
	dough string
}

func NewDoughModifier(dough string) DoughModifier {
	return DoughModifier{dough: dough}
}

func (mod DoughModifier) Enabled() bool {
	return mod.dough != ""
}

func (mod DoughModifier) Modify(p *pizza.Pizza) {
	p.SetDough(mod.dough)
}

var _ Modifier = SauceModifier{}

type SauceModifier struct {
	sauce string
}

func NewSauceModifier(sauce string) SauceModifier {
	return SauceModifier{sauce: sauce}
}

func (mod SauceModifier) Enabled() bool {
	return mod.sauce != ""
}

func (mod SauceModifier) Modify(p *pizza.Pizza) {
	p.SetSauce(mod.sauce)
}

var _ Modifier = ToppingModifier{}

type ToppingModifier struct {
	topping string
}

func NewToppingModifier(topping string) ToppingModifier {
	return ToppingModifier{topping: topping}
}

func (mod ToppingModifier) Enabled() bool {
	return mod.topping != ""
}

func (mod ToppingModifier) Modify(p *pizza.Pizza) {
	p.SetTopping(mod.topping)
}
