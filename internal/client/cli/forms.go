package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/dmitrijs2005/packmate/internal/client/models"
)

// Prompter collects form fields. surveyPrompter is the interactive one;
// tests script the answers.
type Prompter interface {
	Input(message, def string, required bool) (string, error)
	Select(message string, options []string, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string, required bool) (string, error) {
	var v string
	opts := []survey.AskOpt{}
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &v, opts...)
	return strings.TrimSpace(v), err
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var v string
	p := &survey.Select{Message: message, Options: options}
	if def != "" {
		p.Default = def
	}
	err := survey.AskOne(p, &v)
	return v, err
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var v bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &v)
	return v, err
}

// tripForm asks for every NewTrip field. Purpose and weather are picked
// from the option lists, the date defaults to today.
func tripForm(p Prompter, now time.Time) (models.NewTrip, error) {
	nt := models.NewTripForm(now)

	var err error
	if nt.Destination, err = p.Input("Destination:", "", true); err != nil {
		return nt, err
	}
	if nt.Duration, err = p.Input("Duration (e.g. 7 days):", "", true); err != nil {
		return nt, err
	}

	purpose, err := p.Select("Purpose:", models.Labels(models.PurposeOptions), "")
	if err != nil {
		return nt, err
	}
	if nt.Purpose, err = models.ValueForLabel(models.PurposeOptions, purpose); err != nil {
		return nt, err
	}

	weather, err := p.Select("Expected weather:", models.Labels(models.WeatherOptions), "")
	if err != nil {
		return nt, err
	}
	if nt.Weather, err = models.ValueForLabel(models.WeatherOptions, weather); err != nil {
		return nt, err
	}

	if nt.TripDate, err = p.Input("Trip date (YYYY-MM-DD):", nt.TripDate, true); err != nil {
		return nt, err
	}
	return nt, nil
}

// receiptField binds a form label to a Receipt field.
type receiptField struct {
	label string
	get   func(*models.Receipt) *string
}

var receiptFields = []receiptField{
	{"Product name:", func(r *models.Receipt) *string { return &r.ProductName }},
	{"Purchase date:", func(r *models.Receipt) *string { return &r.PurchaseDate }},
	{"Store name:", func(r *models.Receipt) *string { return &r.StoreName }},
	{"Price:", func(r *models.Receipt) *string { return &r.Price }},
	{"Category:", func(r *models.Receipt) *string { return &r.Category }},
	{"Warranty period:", func(r *models.Receipt) *string { return &r.WarrantyPeriod }},
	{"Customer care number:", func(r *models.Receipt) *string { return &r.CustomerCareNumber }},
}

// receiptForm lets the user edit every field, pre-filled from r.
func receiptForm(p Prompter, r models.Receipt) (models.Receipt, error) {
	for _, f := range receiptFields {
		dst := f.get(&r)
		v, err := p.Input(f.label, *dst, false)
		if err != nil {
			return r, err
		}
		*dst = v
	}
	return r, nil
}

var errFormCancelled = errors.New("form cancelled")
