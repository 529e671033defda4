package reader

// Variants is a tag-dispatch table for closed sum types whose variants are
// selected by the key of an object entry. The accepted tag list is computed
// once when the table is built.
type Variants[T any] struct {
	tags   []string
	decode map[string]Decoder[T]
}

// NewVariants builds a table from tag/decoder pairs in declaration order.
func NewVariants[T any](cases ...Named[Decoder[T]]) *Variants[T] {
	v := &Variants[T]{
		tags:   make([]string, 0, len(cases)),
		decode: make(map[string]Decoder[T], len(cases)),
	}
	for _, c := range cases {
		v.tags = append(v.tags, c.Name)
		v.decode[c.Name] = c.Value
	}
	return v
}

// Tags returns the accepted tags.
func (v *Variants[T]) Tags() []string { return v.tags }

// Has reports whether tag selects a variant.
func (v *Variants[T]) Has(tag string) bool {
	_, ok := v.decode[tag]
	return ok
}

// Decode routes the entry value to the decoder registered for tag.
func (v *Variants[T]) Decode(tag string, r Reader) (T, error) {
	dec, ok := v.decode[tag]
	if !ok {
		var zero T
		return zero, UnknownField(r, tag, v.tags)
	}
	return dec(r)
}

// Concat joins field lists into a fresh slice.
func Concat(lists ...[]string) []string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Unique tracks fields that may be assigned at most once per object.
type Unique map[string]struct{}

// Mark records field, failing with duplicate_field when it was seen before.
// r is the entry value and localizes the error.
func (u Unique) Mark(r Reader, field string) error {
	if _, ok := u[field]; ok {
		return DuplicateField(r, field)
	}
	u[field] = struct{}{}
	return nil
}

// Order enforces that header fields precede body fields within one object.
type Order struct {
	what string
	body string
}

// NewOrder returns an Order whose errors describe header fields as what
// (for example "window properties").
func NewOrder(what string) *Order { return &Order{what: what} }

// Body records a body field.
func (o *Order) Body(field string) {
	o.body = field
}

// Header fails when a body field was already seen.
func (o *Order) Header(r Reader, field string) error {
	if o.body == "" {
		return nil
	}
	return Custom(r, "all %s should be above content, but `%s` is located after `%s`", o.what, field, o.body)
}
