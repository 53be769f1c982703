package stylesheet

// Store is the keyed collection of assembled rules for one generation
// session. Base rules and each media-query bucket preserve insertion
// order so repeated runs emit byte-identical CSS. Not safe for
// concurrent mutation; callers serialize Upsert.
type Store struct {
	base       []*Rule
	baseIndex  map[string]*Rule
	media      map[string][]*Rule
	mediaIndex map[string]map[string]*Rule
	mediaOrder []string
	custom     map[string]string
	customKeys []string
}

// NewStore returns an empty rule store.
func NewStore() *Store {
	return &Store{
		baseIndex:  make(map[string]*Rule),
		media:      make(map[string][]*Rule),
		mediaIndex: make(map[string]map[string]*Rule),
		custom:     make(map[string]string),
	}
}

// Upsert merges properties into the rule for selector, creating it if
// absent. An empty mediaQuery targets the base bucket. Re-adding an
// identical (name, value, important) triple is a no-op so repeated
// AddClass calls stay idempotent; a genuinely new declaration for an
// existing selector is appended (last one wins per cascade semantics).
func (s *Store) Upsert(selector, mediaQuery string, props []Property) {
	rule := s.lookup(selector, mediaQuery)
	if rule == nil {
		rule = &Rule{Selector: selector, MediaQuery: mediaQuery}
		if mediaQuery == "" {
			s.base = append(s.base, rule)
			s.baseIndex[selector] = rule
		} else {
			if _, ok := s.mediaIndex[mediaQuery]; !ok {
				s.mediaIndex[mediaQuery] = make(map[string]*Rule)
				s.mediaOrder = append(s.mediaOrder, mediaQuery)
			}
			s.media[mediaQuery] = append(s.media[mediaQuery], rule)
			s.mediaIndex[mediaQuery][selector] = rule
		}
	}

	for _, p := range props {
		if ruleHasProperty(rule, p) {
			continue
		}
		rule.Properties = append(rule.Properties, p)
	}
}

func (s *Store) lookup(selector, mediaQuery string) *Rule {
	if mediaQuery == "" {
		return s.baseIndex[selector]
	}
	if idx, ok := s.mediaIndex[mediaQuery]; ok {
		return idx[selector]
	}
	return nil
}

func ruleHasProperty(r *Rule, p Property) bool {
	for _, have := range r.Properties {
		if have == p {
			return true
		}
	}
	return false
}

// CustomProperty records a --name: value pair for the :root block.
// First write wins; the value of a custom property reference is owned by
// the stylesheet author, not the class list.
func (s *Store) CustomProperty(name, value string) {
	if _, ok := s.custom[name]; ok {
		return
	}
	s.custom[name] = value
	s.customKeys = append(s.customKeys, name)
}

// BaseRules returns the base-bucket rules in insertion order.
func (s *Store) BaseRules() []*Rule {
	return s.base
}

// MediaQueries returns the distinct media-query strings in first-use order.
func (s *Store) MediaQueries() []string {
	return s.mediaOrder
}

// MediaRules returns the rules for one media query in insertion order.
func (s *Store) MediaRules(query string) []*Rule {
	return s.media[query]
}

// CustomProperties returns the :root custom properties in first-use order.
func (s *Store) CustomProperties() []Property {
	props := make([]Property, 0, len(s.customKeys))
	for _, name := range s.customKeys {
		props = append(props, Property{Name: name, Value: s.custom[name]})
	}
	return props
}

// RuleCount returns the total number of rules across all buckets.
func (s *Store) RuleCount() int {
	n := len(s.base)
	for _, rules := range s.media {
		n += len(rules)
	}
	return n
}

// Reset clears all rules and custom properties, keeping the store usable
// for a fresh generation pass.
func (s *Store) Reset() {
	s.base = nil
	s.baseIndex = make(map[string]*Rule)
	s.media = make(map[string][]*Rule)
	s.mediaIndex = make(map[string]map[string]*Rule)
	s.mediaOrder = nil
	s.custom = make(map[string]string)
	s.customKeys = nil
}
