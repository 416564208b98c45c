package mongrel

// Builder collects child content in statement style. It is the counterpart
// of passing children as variadic arguments and is useful where children
// depend on loops and conditionals:
//
//     page := mongrel.New("div").Build(func(b *mongrel.Builder) {
//         b.Add(mongrel.Text("Items:").Bold())
//         for _, item := range items {
//             b.Text(item)
//         }
//         b.AddIf(len(items) == 0, mongrel.Text("none"))
//     })
//
// The zero value is an empty builder, ready to use.
type Builder struct {
	items Group
}

// Build runs fn on a fresh builder and returns the collected items.
func Build(fn func(*Builder)) Group {
	b := &Builder{}
	if fn != nil {
		fn(b)
	}
	return b.Group()
}

// Add appends items. Nil items are ignored when the group is flattened.
func (b *Builder) Add(items ...Content) *Builder {
	b.items = append(b.items, items...)
	return b
}

// AddIf appends items if cond is true.
func (b *Builder) AddIf(cond bool, items ...Content) *Builder {
	if cond {
		b.items = append(b.items, items...)
	}
	return b
}

// Text appends a text node.
func (b *Builder) Text(s string) *Builder {
	b.items = append(b.items, Text(s))
	return b
}

// Raw appends raw markup.
func (b *Builder) Raw(s string) *Builder {
	b.items = append(b.items, Raw(s))
	return b
}

// Len returns the number of items added so far (before flattening).
func (b *Builder) Len() int {
	return len(b.items)
}

// Group returns a copy of the items collected so far. The builder may be
// used further without affecting the returned group.
func (b *Builder) Group() Group {
	g := make(Group, len(b.items))
	copy(g, b.items)
	return g
}

// ForEach appends the results of fn for every element of a slice.
func ForEach[T any](b *Builder, slice []T, fn func(T) Content) *Builder {
	return b.Add(Map(slice, fn))
}
