package usecasecontract

// FieldRule binds one field value to its validation tags. Value may be a
// pointer; a nil pointer counts as an absent value, which only fails the
// "notblank" and "notnull" tags.
type FieldRule struct {
	Field string
	Value interface{}
	Tags  string
}

// IValidator evaluates a rule table and returns every violation found, in
// rule order.
type IValidator interface {
	Validate(rules []FieldRule) []string
}
