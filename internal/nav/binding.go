package nav

// Binding is a read/write view of a value that lives somewhere else.
//
// Screens receive bindings instead of the state itself so that they only see
// the slice of state they render. A zero Binding panics on use.
type Binding[T any] struct {
	get func() T
	set func(T)
}

func NewBinding[T any](get func() T, set func(T)) Binding[T] {
	if get == nil || set == nil {
		panic("nav: NewBinding requires both get and set")
	}
	return Binding[T]{get: get, set: set}
}

// Ref binds directly to the value behind p.
func Ref[T any](p *T) Binding[T] {
	if p == nil {
		panic("nav: Ref of nil pointer")
	}
	return Binding[T]{
		get: func() T { return *p },
		set: func(v T) { *p = v },
	}
}

// Constant returns a binding that always reads v and ignores writes.
// Useful for previews and tests.
func Constant[T any](v T) Binding[T] {
	return Binding[T]{
		get: func() T { return v },
		set: func(T) {},
	}
}

func (b Binding[T]) Get() T { return b.get() }

func (b Binding[T]) Set(v T) { b.set(v) }

// Update reads the value, lets fn modify the copy, and writes it back once.
func (b Binding[T]) Update(fn func(*T)) {
	v := b.get()
	fn(&v)
	b.set(v)
}

// Field derives a binding to one field of the bound struct.
func Field[S, F any](b Binding[S], get func(S) F, set func(*S, F)) Binding[F] {
	return NewBinding(
		func() F { return get(b.Get()) },
		func(v F) {
			s := b.Get()
			set(&s, v)
			b.Set(s)
		},
	)
}
