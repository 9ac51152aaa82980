package pizza

import (
	"fmt"

	"github.com/google/uuid"
)

const describeFormat = "Pizza with %s dough, %s sauce and %s topping."

// Pizza is the product assembled by the builders. The zero value is a valid,
// empty pizza without an identity.
type Pizza struct {
	id      uuid.UUID
	dough   string
	sauce   string
	topping string
}

// New returns an empty pizza with a fresh identity.
func New() *Pizza {
	return &Pizza{id: uuid.New()}
}

func (p *Pizza) ID() uuid.UUID {
	return p.id
}

func (p *Pizza) Dough() string {
	return p.dough
}

func (p *Pizza) Sauce() string {
	return p.sauce
}

func (p *Pizza) Topping() string {
	return p.topping
}

func (p *Pizza) SetDough(dough string) {
	p.dough = dough
}

func (p *Pizza) SetSauce(sauce string) {
	p.sauce = sauce
}

func (p *Pizza) SetTopping(topping string) {
	p.topping = topping
}

// Describe renders all fields in a fixed order, e.g.
// "Pizza with cross dough, mild sauce and Ham and Pineapple topping."
func (p *Pizza) Describe() string {
	return fmt.Sprintf(describeFormat, p.dough, p.sauce, p.topping)
}

func (p *Pizza) String() string {
	return p.Describe()
}
