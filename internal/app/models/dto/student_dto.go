package dto

// StudentInsertDTO carries the data for creating a student. BirthDate uses
// the dd-mm-yyyy textual pattern.
type StudentInsertDTO struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required"`
	CityID    int64  `json:"cityId" binding:"required"`
	UserID    int64  `json:"userId" binding:"required"`
}

// StudentUpdateDTO carries the data for a full-record student update.
type StudentUpdateDTO struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required"`
	CityID    int64  `json:"cityId" binding:"required"`
	UserID    int64  `json:"userId" binding:"required"`
}
