package models

// DefaultCompartment receives items the server did not assign anywhere.
const DefaultCompartment = "Main Compartment"

// Compartment is a named group of packing items.
type Compartment struct {
	Name  string
	Items []PackingItem
}

// GroupByCompartment groups items by compartment, keeping compartments in
// first-seen order and items in list order.
func GroupByCompartment(items []PackingItem) []Compartment {
	index := make(map[string]int)
	groups := make([]Compartment, 0)

	for _, it := range items {
		name := it.Compartment
		if name == "" {
			name = DefaultCompartment
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Compartment{Name: name})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
