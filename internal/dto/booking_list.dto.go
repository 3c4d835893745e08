package dto

type BookingListDTO struct {
	ID           uint   `json:"id"`
	Day          string `json:"day"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address"`
}
