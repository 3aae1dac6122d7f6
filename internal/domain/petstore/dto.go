package petstore

// PetStoreData es la forma expuesta por la API para una tienda.
// employees/customers sólo se serializan en la vista completa (respuesta de save).
type PetStoreData struct {
	ID      *int64 `json:"petStoreId"`
	Name    string `json:"petStoreName"`
	Address string `json:"petStoreAddress"`
	City    string `json:"petStoreCity"`
	State   string `json:"petStoreState"`
	Zip     string `json:"petStoreZip"`
	Phone   string `json:"petStorePhone"`

	Employees []PetStoreEmployee `json:"employees,omitempty"`
	Customers []PetStoreCustomer `json:"customers,omitempty"`
}

type PetStoreEmployee struct {
	ID        *int64 `json:"employeeId"`
	FirstName string `json:"employeeFirstName"`
	LastName  string `json:"employeeLastName"`
	Phone     string `json:"employeePhone"`
	JobTitle  string `json:"employeeJobTitle"`
}

type PetStoreCustomer struct {
	ID        *int64 `json:"customerId"`
	FirstName string `json:"customerFirstName"`
	LastName  string `json:"customerLastName"`
	Email     string `json:"customerEmail"`
}

func newPetStoreData(p PetStore, employees []Employee, customers []Customer) PetStoreData {
	d := descriptivePetStoreData(p)
	for _, e := range employees {
		d.Employees = append(d.Employees, newPetStoreEmployee(e))
	}
	for _, c := range customers {
		d.Customers = append(d.Customers, newPetStoreCustomer(c))
	}
	return d
}

// descriptivePetStoreData copia sólo los campos descriptivos (sin colecciones).
func descriptivePetStoreData(p PetStore) PetStoreData {
	return PetStoreData{
		ID:      idPtr(p.ID),
		Name:    p.Name,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Zip:     p.Zip,
		Phone:   p.Phone,
	}
}

func newPetStoreEmployee(e Employee) PetStoreEmployee {
	return PetStoreEmployee{
		ID:        idPtr(e.ID),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Phone:     e.Phone,
		JobTitle:  e.JobTitle,
	}
}

func newPetStoreCustomer(c Customer) PetStoreCustomer {
	return PetStoreCustomer{
		ID:        idPtr(c.ID),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

func idPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
