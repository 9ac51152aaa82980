package cook

import (
	"testing"

	"github.com/Dynatrace/pizzeria/pkg/pizza/builder"
	"github.com/Dynatrace/pizzeria/pkg/util/kitchenerror"
	mocks "github.com/Dynatrace/pizzeria/test/mocks/pkg/pizza/builder"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	hawaiianDescription = "Pizza with cross dough, mild sauce and Ham and Pineapple topping."
	spicyDescription    = "Pizza with pan baked dough, hot sauce and pepperoni+salami topping."
)

func TestConstructPizza(t *testing.T) {
	t.Run("every variant yields its fixed values", func(t *testing.T) {
		variants := map[builder.PizzaBuilder][3]string{
			builder.NewHawaiianPizzaBuilder(): {"cross", "mild", "Ham and Pineapple"},
			builder.NewSpicyPizzaBuilder():    {"pan baked", "hot", "pepperoni+salami"},
		}

		for pizzaBuilder, expected := range variants {
			c := NewCook()
			c.SetPizzaBuilder(pizzaBuilder)

			require.NoError(t, c.ConstructPizza())
			p, err := c.GetPizza()
			require.NoError(t, err)

			assert.Equal(t, expected[0], p.Dough())
			assert.Equal(t, expected[1], p.Sauce())
			assert.Equal(t, expected[2], p.Topping())
		}
	})
	t.Run("hawaiian end to end", func(t *testing.T) {
		c := NewCook()
		c.SetPizzaBuilder(builder.NewHawaiianPizzaBuilder())

		require.NoError(t, c.ConstructPizza())
		p, err := c.GetPizza()

		require.NoError(t, err)
		assert.Equal(t, hawaiianDescription, p.Describe())
	})
	t.Run("spicy end to end", func(t *testing.T) {
		c := NewCook()
		c.SetPizzaBuilder(builder.NewSpicyPizzaBuilder())

		require.NoError(t, c.ConstructPizza())
		p, err := c.GetPizza()

		require.NoError(t, err)
		assert.Equal(t, spicyDescription, p.Describe())
	})
	t.Run("without builder", func(t *testing.T) {
		c := NewCook()

		err := c.ConstructPizza()

		require.Error(t, err)
		assert.True(t, kitchenerror.IsInvalidState(err))
	})
	t.Run("steps run in protocol order", func(t *testing.T) {
		pizzaBuilder := mocks.NewPizzaBuilder(t)
		pizzaBuilder.On("Name").Return("mock").Maybe()

		mock.InOrder(
			pizzaBuilder.On("CreateNewPizza").Return().Once(),
			pizzaBuilder.On("BuildDough").Return(nil).Once(),
			pizzaBuilder.On("BuildSauce").Return(nil).Once(),
			pizzaBuilder.On("BuildTopping").Return(nil).Once(),
		)

		c := NewCook()
		c.SetPizzaBuilder(pizzaBuilder)

		require.NoError(t, c.ConstructPizza())
	})
	t.Run("stops at the first failing step", func(t *testing.T) {
		pizzaBuilder := mocks.NewPizzaBuilder(t)
		pizzaBuilder.On("Name").Return("mock").Maybe()
		pizzaBuilder.On("CreateNewPizza").Return().Once()
		pizzaBuilder.On("BuildDough").Return(nil).Once()
		pizzaBuilder.On("BuildSauce").Return(errors.New("out of tomatoes")).Once()

		c := NewCook()
		c.SetPizzaBuilder(pizzaBuilder)

		err := c.ConstructPizza()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mock builder failed to build sauce")
		assert.Contains(t, err.Error(), "out of tomatoes")
		pizzaBuilder.AssertNotCalled(t, "BuildTopping")

		_, err = c.GetPizza()
		assert.True(t, kitchenerror.IsInvalidState(err))
	})
}

func TestGetPizza(t *testing.T) {
	t.Run("without builder", func(t *testing.T) {
		c := NewCook()

		p, err := c.GetPizza()

		require.Error(t, err)
		assert.True(t, kitchenerror.IsInvalidState(err))
		assert.Nil(t, p)
	})
	t.Run("before construction", func(t *testing.T) {
		c := NewCook()
		c.SetPizzaBuilder(builder.NewHawaiianPizzaBuilder())

		p, err := c.GetPizza()

		require.Error(t, err)
		assert.True(t, kitchenerror.IsInvalidState(err))
		assert.Nil(t, p)
	})
	t.Run("setting a builder resets the cook", func(t *testing.T) {
		c := NewCook()
		c.SetPizzaBuilder(builder.NewHawaiianPizzaBuilder())
		require.NoError(t, c.ConstructPizza())

		c.SetPizzaBuilder(builder.NewSpicyPizzaBuilder())
		_, err := c.GetPizza()

		require.Error(t, err)
		assert.True(t, kitchenerror.IsInvalidState(err))
	})
	t.Run("pizza is handed out only once", func(t *testing.T) {
		c := NewCook()
		c.SetPizzaBuilder(builder.NewHawaiianPizzaBuilder())
		require.NoError(t, c.ConstructPizza())

		first, err := c.GetPizza()
		require.NoError(t, err)

		second, err := c.GetPizza()

		require.Error(t, err)
		assert.True(t, kitchenerror.IsInvalidState(err))
		assert.Nil(t, second)
		assert.Equal(t, hawaiianDescription, first.Describe())
	})
	t.Run("builder errors are passed through", func(t *testing.T) {
		pizzaBuilder := mocks.NewPizzaBuilder(t)
		pizzaBuilder.On("Name").Return("mock").Maybe()
		pizzaBuilder.On("CreateNewPizza").Return().Once()
		pizzaBuilder.On("BuildDough").Return(nil).Once()
		pizzaBuilder.On("BuildSauce").Return(nil).Once()
		pizzaBuilder.On("BuildTopping").Return(nil).Once()
		pizzaBuilder.On("GetPizza").Return(nil, kitchenerror.InvalidState("gone")).Once()

		c := NewCook()
		c.SetPizzaBuilder(pizzaBuilder)
		require.NoError(t, c.ConstructPizza())

		p, err := c.GetPizza()

		require.Error(t, err)
		assert.Nil(t, p)
	})
	t.Run("failed hand-over leaves the cook waiting", func(t *testing.T) {
		c := NewCook()
		hawaiianBuilder := builder.NewHawaiianPizzaBuilder()
		c.SetPizzaBuilder(hawaiianBuilder)
		require.NoError(t, c.ConstructPizza())

		_, err := hawaiianBuilder.GetPizza()
		require.NoError(t, err)

		_, err = c.GetPizza()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hawaiian builder holds no pizza")

		p, err := c.GetPizza()
		require.Error(t, err)
		assert.True(t, kitchenerror.IsInvalidState(err))
		assert.Contains(t, err.Error(), "no pizza was constructed with the hawaiian builder")
		assert.Nil(t, p)
	})
}

func TestReuse(t *testing.T) {
	t.Run("two constructions do not alias", func(t *testing.T) {
		c := NewCook()
		c.SetPizzaBuilder(builder.NewSpicyPizzaBuilder())

		require.NoError(t, c.ConstructPizza())
		first, err := c.GetPizza()
		require.NoError(t, err)

		require.NoError(t, c.ConstructPizza())
		second, err := c.GetPizza()
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.NotEqual(t, first.ID(), second.ID())
		assert.Equal(t, first.Describe(), second.Describe())
	})
	t.Run("swapping builders does not leak state", func(t *testing.T) {
		c := NewCook()

		c.SetPizzaBuilder(builder.NewHawaiianPizzaBuilder())
		require.NoError(t, c.ConstructPizza())
		hawaiian, err := c.GetPizza()
		require.NoError(t, err)

		c.SetPizzaBuilder(builder.NewSpicyPizzaBuilder())
		require.NoError(t, c.ConstructPizza())
		spicy, err := c.GetPizza()
		require.NoError(t, err)

		assert.Equal(t, hawaiianDescription, hawaiian.Describe())
		assert.Equal(t, spicyDescription, spicy.Describe())
	})
	t.Run("swapping builders with a pizza still on the counter", func(t *testing.T) {
		c := NewCook()
		hawaiianBuilder := builder.NewHawaiianPizzaBuilder()

		c.SetPizzaBuilder(hawaiianBuilder)
		require.NoError(t, c.ConstructPizza())

		c.SetPizzaBuilder(builder.NewSpicyPizzaBuilder())
		require.NoError(t, c.ConstructPizza())
		spicy, err := c.GetPizza()
		require.NoError(t, err)

		assert.Equal(t, spicyDescription, spicy.Describe())

		hawaiian, err := hawaiianBuilder.GetPizza()
		require.NoError(t, err)
		assert.Equal(t, hawaiianDescription, hawaiian.Describe())
	})
}

func TestBake(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, err := NewCook().Bake(builder.NewHawaiianPizzaBuilder())

		require.NoError(t, err)
		assert.Equal(t, hawaiianDescription, p.Describe())
	})
	t.Run("nil builder", func(t *testing.T) {
		p, err := NewCook().Bake(nil)

		require.Error(t, err)
		assert.True(t, kitchenerror.IsInvalidState(err))
		assert.Nil(t, p)
	})
}

func TestMetrics(t *testing.T) {
	t.Run("counts successful constructions per builder", func(t *testing.T) {
		metrics, err := NewMetrics(prometheus.NewRegistry())
		require.NoError(t, err)

		c := NewCook(WithMetrics(metrics))

		_, err = c.Bake(builder.NewHawaiianPizzaBuilder())
		require.NoError(t, err)
		_, err = c.Bake(builder.NewHawaiianPizzaBuilder())
		require.NoError(t, err)
		_, err = c.Bake(builder.NewSpicyPizzaBuilder())
		require.NoError(t, err)

		assert.InDelta(t, 2, testutil.ToFloat64(metrics.Constructed(builder.HawaiianName)), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(metrics.Constructed(builder.SpicyName)), 0)
	})
	t.Run("failed constructions are not counted", func(t *testing.T) {
		metrics, err := NewMetrics(prometheus.NewRegistry())
		require.NoError(t, err)

		pizzaBuilder := mocks.NewPizzaBuilder(t)
		pizzaBuilder.On("Name").Return("mock").Maybe()
		pizzaBuilder.On("CreateNewPizza").Return().Once()
		pizzaBuilder.On("BuildDough").Return(errors.New("no flour")).Once()

		c := NewCook(WithMetrics(metrics))
		c.SetPizzaBuilder(pizzaBuilder)

		require.Error(t, c.ConstructPizza())
		assert.InDelta(t, 0, testutil.ToFloat64(metrics.Constructed("mock")), 0)
	})
	t.Run("registering twice reuses the collector", func(t *testing.T) {
		registry := prometheus.NewRegistry()

		first, err := NewMetrics(registry)
		require.NoError(t, err)
		second, err := NewMetrics(registry)
		require.NoError(t, err)

		first.Constructed(builder.SpicyName).Inc()

		assert.InDelta(t, 1, testutil.ToFloat64(second.Constructed(builder.SpicyName)), 0)
	})
	t.Run("cook without metrics", func(t *testing.T) {
		_, err := NewCook().Bake(builder.NewSpicyPizzaBuilder())

		require.NoError(t, err)
	})
}

var _ builder.PizzaBuilder = (*mocks.PizzaBuilder)(nil)
