package models

import "time"

// Student defines the student model based on the 'students' table.
// CityID and UserID are the stored foreign keys; City and User are the
// referenced rows, populated on read by the repository. A nil relation on a
// point read means the referenced row no longer exists.
type Student struct {
	ID        int64     `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Gender    Gender    `json:"gender"`
	BirthDate time.Time `json:"birthDate"`
	CityID    int64     `json:"cityId"`
	UserID    int64     `json:"userId"`

	City *City `json:"city,omitempty"`
	User *User `json:"user,omitempty"`
}
