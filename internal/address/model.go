package address

type Address struct {
	ID           int64
	UserID       int64
	Street       string
	BuildingName string
	City         string
	State        string
	Country      string
	Pincode      string
}

type AddressInput struct {
	Street       string
	BuildingName string
	City         string
	State        string
	Country      string
	Pincode      string
}

type AddressDTO struct {
	AddressID    int64  `json:"addressId"`
	Street       string `json:"street"`
	BuildingName string `json:"buildingName"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Pincode      string `json:"pincode"`
}
