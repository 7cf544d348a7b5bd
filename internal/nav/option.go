package nav

// Option is an optional value. The zero value is None.
//
// Fields are exported so state trees stay comparable with reflect and go-cmp.
type Option[T any] struct {
	Value T
	Valid bool
}

func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

func None[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }

func (o Option[T]) IsSome() bool { return o.Valid }

func (o Option[T]) OrElse(def T) T {
	if o.Valid {
		return o.Value
	}
	return def
}
