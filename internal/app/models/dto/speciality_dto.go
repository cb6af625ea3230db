package dto

// SpecialityInsertDTO carries the data for creating a speciality.
type SpecialityInsertDTO struct {
	Name string `json:"name" binding:"required"`
}

// SpecialityUpdateDTO carries the data for a full-record speciality update.
type SpecialityUpdateDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
}
