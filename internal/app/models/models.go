package models

// Gender is the single-character gender code stored on the 'students' table.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Valid reports whether g is one of the stored gender codes.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}
