package models

// City represents a city a student can live in, based on the 'cities' table.
// City names are unique across all cities.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
