package dto

// TeacherInsertDTO carries the data for creating a teacher.
type TeacherInsertDTO struct {
	SSN          int64  `json:"ssn" binding:"required"`
	Firstname    string `json:"firstname" binding:"required"`
	Lastname     string `json:"lastname" binding:"required"`
	SpecialityID int64  `json:"specialityId" binding:"required"`
	UserID       int64  `json:"userId" binding:"required"`
}

// TeacherUpdateDTO carries the data for a full-record teacher update.
type TeacherUpdateDTO struct {
	ID           int64  `json:"id"`
	SSN          int64  `json:"ssn" binding:"required"`
	Firstname    string `json:"firstname" binding:"required"`
	Lastname     string `json:"lastname" binding:"required"`
	SpecialityID int64  `json:"specialityId" binding:"required"`
	UserID       int64  `json:"userId" binding:"required"`
}
