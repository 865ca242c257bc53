package models

import "errors"

var ErrUnknownOption = errors.New("unknown option")

// Option is a value/label pair offered by a form select.
type Option struct {
	Value string
	Label string
}

var WeatherOptions = []Option{
	{Value: "hot", Label: "Hot"},
	{Value: "mild", Label: "Mild"},
	{Value: "cold", Label: "Cold"},
	{Value: "rainy", Label: "Rainy"},
}

var PurposeOptions = []Option{
	{Value: "business", Label: "Business"},
	{Value: "leisure", Label: "Leisure"},
	{Value: "family", Label: "Family"},
	{Value: "adventure", Label: "Adventure"},
}

func IsOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Labels returns the labels of opts in order.
func Labels(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

// ValueForLabel maps a label chosen in a form back to its value.
func ValueForLabel(opts []Option, label string) (string, error) {
	for _, o := range opts {
		if o.Label == label {
			return o.Value, nil
		}
	}
	return "", ErrUnknownOption
}
