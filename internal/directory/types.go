package directory

import "strings"

// Location kinds returned by the directory API. A "city" is a top-level
// market; an "area" is a finer-grained locality inside a city.
const (
	KindCity = "city"
	KindArea = "area"
)

// Location mirrors a location record from /api/locations endpoints.
type Location struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// DisplayName renders the human-facing label for a location: areas are shown
// as "Area, City" while cities show "City, State".
func (l Location) DisplayName() string {
	switch l.Kind {
	case KindArea:
		if l.City != "" && !strings.EqualFold(l.City, l.Name) {
			return l.Name + ", " + l.City
		}
	case KindCity:
		if l.State != "" {
			return l.Name + ", " + l.State
		}
	}
	return l.Name
}

// Valid reports whether the record carries the fields the rest of the app
// depends on. Stored preferences that fail this check are treated as absent.
func (l Location) Valid() bool {
	if strings.TrimSpace(l.ID) == "" || strings.TrimSpace(l.Name) == "" {
		return false
	}
	return l.Kind == KindCity || l.Kind == KindArea
}

// LocationListResponse mirrors /api/locations/search.
type LocationListResponse struct {
	Locations []Location `json:"locations"`
}

// DefaultLocationResponse mirrors /api/locations/default.
type DefaultLocationResponse struct {
	Location Location `json:"location"`
}

// Listing mirrors a rental listing record from /api/listings/search.
type Listing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	City     string `json:"city"`
	Area     string `json:"area"`
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
}

// DisplayName renders the label shown in the listing dropdown.
func (l Listing) DisplayName() string {
	if l.Area != "" {
		return l.Title + " — " + l.Area
	}
	return l.Title
}

// ListingListResponse mirrors /api/listings/search.
type ListingListResponse struct {
	Listings []Listing `json:"listings"`
}
