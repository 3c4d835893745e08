package dto

type OpeningHourDTO struct {
	Day         int    `json:"day"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

type StoreHoursDTO struct {
	StoreID   uint             `json:"store_id"`
	StoreName string           `json:"store_name"`
	Hours     []OpeningHourDTO `json:"data"`
}
