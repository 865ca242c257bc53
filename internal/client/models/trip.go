// Package models defines the client-side view of the remote API's data:
// trips, packing items, receipts and the option lists used by forms.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripDateLayout is the wire format of Trip.TripDate.
const TripDateLayout = "2006-01-02"

var ErrInvalidObjectID = errors.New("invalid object id")

// ObjectID is a server-assigned identifier. The API emits it either as a
// plain string or as Mongo extended JSON ({"$oid": "..."}).
type ObjectID string

func (id ObjectID) String() string { return string(id) }

func (id ObjectID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *ObjectID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ObjectID(s)
		return nil
	}

	var ext struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(b, &ext); err != nil || ext.OID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidObjectID, string(b))
	}
	*id = ObjectID(ext.OID)
	return nil
}

// PackingItem is one row of a trip's packing list. ID is generated on the
// client when the trip is received and never leaves the process.
type PackingItem struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"`
	Checked     bool    `json:"checked"`
	Compartment string  `json:"compartment"`
	Weight      float64 `json:"weight"`
}

// Trip is the server's trip document. PackingList and TotalWeight are
// computed by the server and only displayed here.
type Trip struct {
	ID          ObjectID      `json:"_id"`
	Destination string        `json:"destination"`
	Purpose     string        `json:"purpose"`
	Duration    string        `json:"duration"`
	Weather     string        `json:"weather"`
	TripDate    string        `json:"trip_date"`
	PackingList []PackingItem `json:"packing_list"`
	TotalWeight float64       `json:"total_weight"`
}

// AssignItemIDs gives every packing item without an ID a fresh one.
func (t *Trip) AssignItemIDs() {
	for i := range t.PackingList {
		if t.PackingList[i].ID == "" {
			t.PackingList[i].ID = uuid.NewString()
		}
	}
}

// Clone returns a deep copy of t.
func (t Trip) Clone() Trip {
	c := t
	if t.PackingList != nil {
		c.PackingList = make([]PackingItem, len(t.PackingList))
		copy(c.PackingList, t.PackingList)
	}
	return c
}

// WithItemToggled returns a copy of t where only the item with the given ID
// has its Checked flag flipped. The second result is false when no item
// matches; t itself is never modified.
func (t Trip) WithItemToggled(itemID string) (Trip, bool) {
	c := t.Clone()
	for i := range c.PackingList {
		if c.PackingList[i].ID == itemID {
			c.PackingList[i].Checked = !c.PackingList[i].Checked
			return c, true
		}
	}
	return t, false
}

// CheckedCount reports how many items are packed.
func (t Trip) CheckedCount() int {
	n := 0
	for _, it := range t.PackingList {
		if it.Checked {
			n++
		}
	}
	return n
}

// DisplayDate renders TripDate as a short human date, falling back to the
// raw value when it is not in TripDateLayout or RFC 3339.
func (t Trip) DisplayDate() string {
	for _, layout := range []string{TripDateLayout, time.RFC3339} {
		if d, err := time.Parse(layout, t.TripDate); err == nil {
			return d.Format("Jan 2, 2006")
		}
	}
	return t.TripDate
}

// DecodeTrip unmarshals a single trip and assigns item IDs.
func DecodeTrip(b []byte) (Trip, error) {
	var t Trip
	if err := json.Unmarshal(b, &t); err != nil {
		return Trip{}, err
	}
	t.AssignItemIDs()
	return t, nil
}

// DecodeTrips unmarshals a trip array and assigns item IDs.
func DecodeTrips(b []byte) ([]Trip, error) {
	var trips []Trip
	if err := json.Unmarshal(b, &trips); err != nil {
		return nil, err
	}
	for i := range trips {
		trips[i].AssignItemIDs()
	}
	if trips == nil {
		trips = []Trip{}
	}
	return trips, nil
}
