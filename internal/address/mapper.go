package address

func ToDTO(a Address) AddressDTO {
	return AddressDTO{
		AddressID:    a.ID,
		Street:       a.Street,
		BuildingName: a.BuildingName,
		City:         a.City,
		State:        a.State,
		Country:      a.Country,
		Pincode:      a.Pincode,
	}
}

func ToDTOs(addresses []Address) []AddressDTO {
	dtos := make([]AddressDTO, 0, len(addresses))
	for _, a := range addresses {
		dtos = append(dtos, ToDTO(a))
	}
	return dtos
}
