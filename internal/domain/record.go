package domain

// Post is a record served by the REST records endpoint.
type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Place is a record returned by the nearby places search.
// Rating is nil when the provider did not rate the place.
type Place struct {
	PlaceID string   `json:"place_id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Rating  *float64 `json:"rating,omitempty"`
}
