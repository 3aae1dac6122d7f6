package petstore

// PetStore es el registro persistido de una tienda.
// Las relaciones (empleados, clientes) viven en sus propias tablas y se
// resuelven por FK / tabla de unión, nunca como referencias en memoria.
type PetStore struct {
	ID int64

	Name    string
	Address string
	City    string
	State   string
	Zip     string
	Phone   string
}

// Employee pertenece exactamente a una PetStore.
type Employee struct {
	ID         int64
	PetStoreID int64

	FirstName string
	LastName  string
	Phone     string
	JobTitle  string
}

// Customer se asocia a una o más tiendas vía pet_store_customer.
type Customer struct {
	ID int64

	FirstName string
	LastName  string
	Email     string
}
