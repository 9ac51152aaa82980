package builder

type Builder[T any] interface {
	Build() T
	AddModifier(...Modifier[T]) Builder[T]
}

type Modifier[T any] interface {
	Enabled() bool
	Modify(*T)
}

// Apply runs every enabled modifier against data, in order.
func Apply[T any](data *T, modifiers ...Modifier[T]) {
	for _, m := range modifiers {
		if m.Enabled() {
			m.Modify(data)
		}
	}
}

type GenericBuilder[T any] struct {
	data      *T
	modifiers []Modifier[T]
}

var _ Builder[any] = (*GenericBuilder[any])(nil)

func (b GenericBuilder[T]) Build() T {
	if b.data == nil {
		var data T
		b.data = &data
	}

	Apply(b.data, b.modifiers...)

	return *b.data
}

func (b *GenericBuilder[T]) AddModifier(modifiers ...Modifier[T]) Builder[T] {
	b.modifiers = append(b.modifiers, modifiers...)
	return b
}

func NewBuilderWithInitialData[T any](data T) GenericBuilder[T] {
	return GenericBuilder[T]{
		data:      &data,
		modifiers: []Modifier[T]{},
	}
}

