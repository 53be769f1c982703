// Package stylesheet holds the assembled CSS model: properties, rules,
// the insertion-ordered rule store and the pretty/minified serializers.
// It is a passive container; validation happens upstream in the parsers
// and the dispatcher.
package stylesheet

// Property is a single CSS declaration. Immutable once created.
type Property struct {
	Name      string
	Value     string
	Important bool
}

// Rule is one selector with its ordered declarations. MediaQuery is empty
// for base-bucket rules.
type Rule struct {
	Selector   string
	Properties []Property
	MediaQuery string
}
