package menu

import (
	"sort"
	"strings"
	"sync"

	"github.com/Dynatrace/pizzeria/pkg/cook"
	"github.com/Dynatrace/pizzeria/pkg/pizza"
	"github.com/Dynatrace/pizzeria/pkg/pizza/builder"
	"github.com/Dynatrace/pizzeria/pkg/pizza/builder/modifiers"
	"github.com/Dynatrace/pizzeria/pkg/recipe"
	utilbuilder "github.com/Dynatrace/pizzeria/pkg/util/builder"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Factory returns a new builder on every call, callers own what they get.
type Factory func() builder.PizzaBuilder

type modifierSource interface {
	Modifiers() []modifiers.Modifier
}

// Menu maps variant names to builder factories. It is safe for concurrent use.
type Menu struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// New returns a menu with the built-in hawaiian and spicy variants.
func New() *Menu {
	return &Menu{
		factories: map[string]Factory{
			builder.HawaiianName: func() builder.PizzaBuilder { return builder.NewHawaiianPizzaBuilder() },
			builder.SpicyName:    func() builder.PizzaBuilder { return builder.NewSpicyPizzaBuilder() },
		},
	}
}

// Load returns the built-in menu extended by the recipes at recipesPath, if set.
func Load(fs afero.Fs, recipesPath string) (*Menu, error) {
	m := New()

	if recipesPath == "" {
		return m, nil
	}

	recipes, err := recipe.Load(fs, recipesPath)
	if err != nil {
		return nil, err
	}

	if err := m.AddRecipes(recipes); err != nil {
		return nil, errors.WithMessagef(err, "cannot add recipes from %s", recipesPath)
	}

	return m, nil
}

func (m *Menu) Register(name string, factory Factory) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("pizza builder name must not be empty")
	}

	if factory == nil {
		return errors.Errorf("pizza builder %q has no factory", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.factories[name]; exists {
		return errors.Errorf("pizza builder %q is already on the menu", name)
	}

	m.factories[name] = factory

	return nil
}

// AddRecipes registers one variant per recipe. Registration stops at the first conflict.
func (m *Menu) AddRecipes(recipes []recipe.Recipe) error {
	for _, r := range recipes {
		r := r
		if err := r.Validate(); err != nil {
			return err
		}

		err := m.Register(r.Name, func() builder.PizzaBuilder {
			return builder.NewRecipePizzaBuilder(r)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Menu) Lookup(name string) (builder.PizzaBuilder, error) {
	m.mu.RLock()
	factory, ok := m.factories[name]
	m.mu.RUnlock()

	if !ok {
		return nil, errors.Errorf("unknown pizza builder %q, available: %s", name, strings.Join(m.Names(), ", "))
	}

	return factory(), nil
}

func (m *Menu) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.factories))
	for name := range m.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Preview returns the pizza a variant yields. Variants exposing their step
// modifiers are previewed without running the build protocol.
func (m *Menu) Preview(name string) (pizza.Pizza, error) {
	pizzaBuilder, err := m.Lookup(name)
	if err != nil {
		return pizza.Pizza{}, err
	}

	if source, ok := pizzaBuilder.(modifierSource); ok {
		b := utilbuilder.NewBuilderWithInitialData(*pizza.New())
		b.AddModifier(source.Modifiers()...)

		return b.Build(), nil
	}

	p, err := cook.NewCook().Bake(pizzaBuilder)
	if err != nil {
		return pizza.Pizza{}, errors.WithMessagef(err, "failed to preview %s", name)
	}

	return *p, nil
}
