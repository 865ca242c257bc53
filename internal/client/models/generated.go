package models

// PackingRequest asks the server to generate a packing list.
type PackingRequest struct {
	Destination string `json:"destination"`
	Purpose     string `json:"purpose"`
	Duration    string `json:"duration"`
	Weather     string `json:"weather"`
}

// PackingRequestFor builds the generation request for an existing trip.
func PackingRequestFor(t Trip) PackingRequest {
	return PackingRequest{
		Destination: t.Destination,
		Purpose:     t.Purpose,
		Duration:    t.Duration,
		Weather:     t.Weather,
	}
}

// GeneratedList is what /generate_packing_list returned: either a
// newline-delimited text blob or structured items.
type GeneratedList struct {
	Text  string
	Items []PackingItem
}

// Rows renders the list as display rows.
func (g GeneratedList) Rows() []string {
	if len(g.Items) == 0 {
		return SplitLines(g.Text)
	}
	rows := make([]string, 0, len(g.Items))
	for _, it := range g.Items {
		rows = append(rows, SplitLines(it.Name)...)
	}
	return rows
}
