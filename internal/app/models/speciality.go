package models

// Speciality represents a teaching speciality, based on the 'specialities'
// table. Unlike cities, speciality names carry no uniqueness rule.
type Speciality struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
