package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidPrice = errors.New("invalid price")

// Receipt holds the invoice fields extracted from a scanned receipt and
// edited by the user before submission.
type Receipt struct {
	ProductName        string `json:"product_name"`
	PurchaseDate       string `json:"purchase_date"`
	StoreName          string `json:"store_name"`
	Price              string `json:"price"`
	Category           string `json:"category"`
	WarrantyPeriod     string `json:"warranty_period"`
	CustomerCareNumber string `json:"customer_care_number"`
}

// Merge overlays the non-empty fields of other onto r.
func (r Receipt) Merge(other Receipt) Receipt {
	pick := func(cur, next string) string {
		if next != "" {
			return next
		}
		return cur
	}
	return Receipt{
		ProductName:        pick(r.ProductName, other.ProductName),
		PurchaseDate:       pick(r.PurchaseDate, other.PurchaseDate),
		StoreName:          pick(r.StoreName, other.StoreName),
		Price:              pick(r.Price, other.Price),
		Category:           pick(r.Category, other.Category),
		WarrantyPeriod:     pick(r.WarrantyPeriod, other.WarrantyPeriod),
		CustomerCareNumber: pick(r.CustomerCareNumber, other.CustomerCareNumber),
	}
}

// UnmarshalJSON accepts price as a string or a JSON number. A number keeps
// its literal text, so 25.50 decodes to "25.50".
func (r *Receipt) UnmarshalJSON(b []byte) error {
	type plain Receipt
	aux := struct {
		*plain
		Price json.RawMessage `json:"price"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.Price)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		r.Price = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		r.Price = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, string(raw))
	}
	r.Price = n.String()
	return nil
}
