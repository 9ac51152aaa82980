package cook

import (
	"github.com/Dynatrace/pizzeria/pkg/logd"
	"github.com/Dynatrace/pizzeria/pkg/pizza"
	"github.com/Dynatrace/pizzeria/pkg/pizza/builder"
	"github.com/Dynatrace/pizzeria/pkg/util/kitchenerror"
	"github.com/pkg/errors"
)

var log = logd.Get().WithName("cook")

// Cook directs a PizzaBuilder through the fixed build sequence.
//
// A Cook holds one builder at a time and does not own it. It is either
// waiting for a construction or has a pizza ready; setting a builder always
// returns it to waiting. A Cook is not safe for concurrent use.
type Cook struct {
	builder builder.PizzaBuilder
	metrics *Metrics
	ready   bool
}

type Option func(*Cook)

func WithMetrics(metrics *Metrics) Option {
	return func(c *Cook) {
		c.metrics = metrics
	}
}

func NewCook(opts ...Option) *Cook {
	c := &Cook{}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cook) SetPizzaBuilder(pizzaBuilder builder.PizzaBuilder) {
	c.builder = pizzaBuilder
	c.ready = false
}

// ConstructPizza runs CreateNewPizza, BuildDough, BuildSauce and BuildTopping,
// in that order, and stops at the first failing step.
func (c *Cook) ConstructPizza() error {
	c.ready = false

	if c.builder == nil {
		return kitchenerror.InvalidState("cannot construct a pizza without a pizza builder")
	}

	name := c.builder.Name()
	log.Debug("constructing pizza", "builder", name)

	c.builder.CreateNewPizza()

	steps := []struct {
		build func() error
		name  string
	}{
		{name: "dough", build: c.builder.BuildDough},
		{name: "sauce", build: c.builder.BuildSauce},
		{name: "topping", build: c.builder.BuildTopping},
	}

	for _, step := range steps {
		if err := step.build(); err != nil {
			return errors.WithMessagef(err, "%s builder failed to build %s", name, step.name)
		}
	}

	c.ready = true
	c.metrics.observeConstructed(name)

	return nil
}

// GetPizza hands the constructed pizza over to the caller.
func (c *Cook) GetPizza() (*pizza.Pizza, error) {
	if c.builder == nil {
		return nil, kitchenerror.InvalidState("cannot get a pizza without a pizza builder")
	}

	if !c.ready {
		return nil, kitchenerror.InvalidState("no pizza was constructed with the %s builder", c.builder.Name())
	}

	p, err := c.builder.GetPizza()
	c.ready = false

	if err != nil {
		return nil, err
	}

	log.Debug("pizza handed out", "builder", c.builder.Name(), "pizza", p.ID().String())

	return p, nil
}

// Bake sets the builder, constructs a pizza and hands it out.
func (c *Cook) Bake(pizzaBuilder builder.PizzaBuilder) (*pizza.Pizza, error) {
	c.SetPizzaBuilder(pizzaBuilder)

	if err := c.ConstructPizza(); err != nil {
		return nil, err
	}

	return c.GetPizza()
}
