package nav

// Project narrows a binding to a sum type down to one of its cases.
//
// Reading yields Some(payload) only while the underlying value holds c.
// Writing Some(p) replaces the underlying value with c's embedding of p.
// Writing None clears the underlying value only while it holds c; when a
// sibling case is active the write is a no-op, because the projection does not
// own that case and must not drop it.
func Project[D, P any](b Binding[D], c Case[D, P]) Binding[Option[P]] {
	return NewBinding(
		func() Option[P] {
			if p, ok := c.Extract(b.Get()); ok {
				return Some(p)
			}
			return None[P]()
		},
		func(o Option[P]) {
			if p, ok := o.Get(); ok {
				b.Set(c.Embed(p))
				return
			}
			if c.Matches(b.Get()) {
				var zero D
				b.Set(zero)
			}
		},
	)
}

// IsPresent is the boolean form of Project, used for "is X showing" toggles
// such as the loading overlay. Writing true embeds the zero payload unless c
// is already active, in which case its payload is kept; writing false follows
// the same no-clobber rule as Project.
func IsPresent[D, P any](b Binding[D], c Case[D, P]) Binding[bool] {
	p := Project(b, c)
	return NewBinding(
		func() bool { return p.Get().Valid },
		func(present bool) {
			if present {
				if c.Matches(b.Get()) {
					return
				}
				var zero P
				p.Set(Some(zero))
				return
			}
			p.Set(None[P]())
		},
	)
}

// Unwrap turns a projected binding into a non-optional one while the case is
// active, so a child screen can be handed exactly its own state.
//
// Once the case goes away the unwrapped binding keeps returning the last value
// it saw and ignores writes: a late write from a dismissed screen must not
// bring its case back.
func Unwrap[P any](b Binding[Option[P]]) (Binding[P], bool) {
	last, ok := b.Get().Get()
	if !ok {
		return Binding[P]{}, false
	}
	return NewBinding(
		func() P {
			if v, ok := b.Get().Get(); ok {
				last = v
			}
			return last
		},
		func(v P) {
			if !b.Get().Valid {
				return
			}
			last = v
			b.Set(Some(v))
		},
	), true
}
