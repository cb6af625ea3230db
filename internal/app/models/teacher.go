package models

// Teacher defines the teacher model based on the 'teachers' table.
// SpecialityID and UserID are the stored foreign keys; Speciality and User
// are the referenced rows, populated on read by the repository.
type Teacher struct {
	ID           int64  `json:"id"`
	SSN          int64  `json:"ssn"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	SpecialityID int64  `json:"specialityId"`
	UserID       int64  `json:"userId"`

	Speciality *Speciality `json:"speciality,omitempty"`
	User       *User       `json:"user,omitempty"`
}
