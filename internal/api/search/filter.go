// Package search holds the structured filter and pagination types shared by
// the communities search and requests search clients. Filters marshal to the
// term/terms/bool query JSON the search-backed services accept.
package search

// Filter is a single search filter clause. Exactly one field is set.
type Filter struct {
	Term  map[string]any      `json:"term,omitempty"`
	Terms map[string][]string `json:"terms,omitempty"`
	Bool  *BoolFilter         `json:"bool,omitempty"`
}

type BoolFilter struct {
	Must []Filter `json:"must,omitempty"`
}

func Term(field string, value any) Filter {
	return Filter{Term: map[string]any{field: value}}
}

func Terms(field string, values ...string) Filter {
	return Filter{Terms: map[string][]string{field: values}}
}

func Must(filters ...Filter) Filter {
	return Filter{Bool: &BoolFilter{Must: filters}}
}

// And combines two filters into a bool/must conjunction. Existing
// conjunctions are extended rather than nested.
func (f Filter) And(other Filter) Filter {
	if f.Bool != nil {
		return Filter{Bool: &BoolFilter{Must: append(append([]Filter{}, f.Bool.Must...), other)}}
	}
	return Must(f, other)
}

// IsZero reports whether no clause is set.
func (f Filter) IsZero() bool {
	return f.Term == nil && f.Terms == nil && f.Bool == nil
}

// Params are caller-supplied search parameters passed through to the search
// service.
type Params struct {
	Query  string `json:"q,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}
