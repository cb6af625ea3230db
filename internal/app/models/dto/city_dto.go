package dto

// CityInsertDTO carries the data for creating a city.
type CityInsertDTO struct {
	Name string `json:"name" binding:"required"`
}

// CityUpdateDTO carries the data for a full-record city update.
type CityUpdateDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
}
