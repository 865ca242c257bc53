package store

import "github.com/dmitrijs2005/packmate/internal/client/models"

// Messages stored in State.Error. Views show them verbatim.
const (
	ErrMsgFetchTrips = "Failed to fetch trips"
	ErrMsgAddTrip    = "Failed to add trip"
)

// State is the trip list as the dashboard sees it.
type State struct {
	Trips   []models.Trip
	Loading bool
	Error   string
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	if s.Trips != nil {
		c.Trips = make([]models.Trip, len(s.Trips))
		for i, t := range s.Trips {
			c.Trips[i] = t.Clone()
		}
	}
	return c
}

// Action is one state transition fed to Reduce.
type Action interface {
	action()
}

type (
	FetchStarted   struct{}
	FetchSucceeded struct{ Trips []models.Trip }
	FetchFailed    struct{}
	AddStarted     struct{}
	AddSucceeded   struct{ Trip models.Trip }
	AddFailed      struct{}
)

func (FetchStarted) action()   {}
func (FetchSucceeded) action() {}
func (FetchFailed) action()    {}
func (AddStarted) action()     {}
func (AddSucceeded) action()   {}
func (AddFailed) action()      {}

// Reduce returns the state that follows s after a. It never modifies s.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch a := a.(type) {
	case FetchStarted, AddStarted:
		next.Loading = true

	case FetchSucceeded:
		next.Loading = false
		next.Error = ""
		next.Trips = make([]models.Trip, len(a.Trips))
		for i, t := range a.Trips {
			next.Trips[i] = t.Clone()
		}

	case FetchFailed:
		next.Loading = false
		next.Error = ErrMsgFetchTrips

	case AddSucceeded:
		next.Loading = false
		next.Error = ""
		next.Trips = append(next.Trips, a.Trip.Clone())

	case AddFailed:
		next.Loading = false
		next.Error = ErrMsgAddTrip
	}

	return next
}
