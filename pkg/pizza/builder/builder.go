package builder

import (
	"github.com/Dynatrace/pizzeria/pkg/logd"
	"github.com/Dynatrace/pizzeria/pkg/pizza"
	"github.com/Dynatrace/pizzeria/pkg/pizza/builder/modifiers"
	utilbuilder "github.com/Dynatrace/pizzeria/pkg/util/builder"
	"github.com/Dynatrace/pizzeria/pkg/util/kitchenerror"
)

// Build steps, indexed like the modifiers returned by modifiers.GenerateAllModifiers.
const (
	doughStep = iota
	sauceStep
	toppingStep
)

var stepNames = [...]string{doughStep: "dough", sauceStep: "sauce", toppingStep: "topping"}

var log = logd.Get().WithName("pizza-builder")

// PizzaBuilder assembles one pizza variant step by step.
//
// CreateNewPizza must be called before any Build step. GetPizza hands the
// pizza over to the caller, after which the builder holds no pizza until
// CreateNewPizza is called again. Implementations are not safe for concurrent use.
type PizzaBuilder interface {
	Name() string
	CreateNewPizza()
	BuildDough() error
	BuildSauce() error
	BuildTopping() error
	GetPizza() (*pizza.Pizza, error)
}

// stepBuilder implements the build protocol; variants only supply the step modifiers.
type stepBuilder struct {
	current *pizza.Pizza
	name    string
	steps   []modifiers.Modifier
}

func newStepBuilder(name, dough, sauce, topping string) stepBuilder {
	return stepBuilder{
		name:  name,
		steps: modifiers.GenerateAllModifiers(dough, sauce, topping),
	}
}

func (b *stepBuilder) Name() string {
	return b.name
}

func (b *stepBuilder) CreateNewPizza() {
	if b.current != nil {
		log.Debug("dropping pizza that was never handed out", "builder", b.name, "pizza", b.current.ID().String())
	}

	b.current = pizza.New()
}

func (b *stepBuilder) BuildDough() error {
	return b.apply(doughStep)
}

func (b *stepBuilder) BuildSauce() error {
	return b.apply(sauceStep)
}

func (b *stepBuilder) BuildTopping() error {
	return b.apply(toppingStep)
}

func (b *stepBuilder) GetPizza() (*pizza.Pizza, error) {
	if b.current == nil {
		return nil, kitchenerror.InvalidState("%s builder holds no pizza, call CreateNewPizza first", b.name)
	}

	p := b.current
	b.current = nil

	return p, nil
}

// Modifiers returns the step modifiers of this variant in build order.
func (b *stepBuilder) Modifiers() []modifiers.Modifier {
	return append([]modifiers.Modifier{}, b.steps...)
}

func (b *stepBuilder) apply(step int) error {
	if b.current == nil {
		return kitchenerror.InvalidState("%s builder cannot build %s before a pizza was created", b.name, stepNames[step])
	}

	utilbuilder.Apply(b.current, b.steps[step])
	log.Trace("build step applied", "builder", b.name, "step", stepNames[step], "pizza", b.current.ID().String())

	return nil
}
