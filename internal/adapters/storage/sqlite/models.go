package sqlite

import "pet-store/internal/domain/petstore"

// Modelos GORM. Los nombres de tabla/columna son los mismos que en postgres.
// Las relaciones se declaran sólo para que AutoMigrate cree las FKs; al
// guardar se omiten (Omit(clause.Associations)).

type petStoreModel struct {
	PetStoreID      int64  `gorm:"column:pet_store_id;primaryKey;autoIncrement"`
	PetStoreName    string `gorm:"column:pet_store_name;not null;default:''"`
	PetStoreAddress string `gorm:"column:pet_store_address;not null;default:''"`
	PetStoreCity    string `gorm:"column:pet_store_city;not null;default:''"`
	PetStoreState   string `gorm:"column:pet_store_state;not null;default:''"`
	PetStoreZip     string `gorm:"column:pet_store_zip;not null;default:''"`
	PetStorePhone   string `gorm:"column:pet_store_phone;not null;default:''"`

	Employees []employeeModel `gorm:"foreignKey:PetStoreID;references:PetStoreID;constraint:OnDelete:CASCADE"`
}

func (petStoreModel) TableName() string { return "pet_store" }

type employeeModel struct {
	EmployeeID        int64  `gorm:"column:employee_id;primaryKey;autoIncrement"`
	PetStoreID        int64  `gorm:"column:pet_store_id;not null;index"`
	EmployeeFirstName string `gorm:"column:employee_first_name;not null;default:''"`
	EmployeeLastName  string `gorm:"column:employee_last_name;not null;default:''"`
	EmployeePhone     string `gorm:"column:employee_phone;not null;default:''"`
	EmployeeJobTitle  string `gorm:"column:employee_job_title;not null;default:''"`
}

func (employeeModel) TableName() string { return "employee" }

type customerModel struct {
	CustomerID        int64  `gorm:"column:customer_id;primaryKey;autoIncrement"`
	CustomerFirstName string `gorm:"column:customer_first_name;not null;default:''"`
	CustomerLastName  string `gorm:"column:customer_last_name;not null;default:''"`
	CustomerEmail     string `gorm:"column:customer_email;not null;default:''"`
}

func (customerModel) TableName() string { return "customer" }

type petStoreCustomerModel struct {
	PetStoreID int64 `gorm:"column:pet_store_id;primaryKey;autoIncrement:false"`
	CustomerID int64 `gorm:"column:customer_id;primaryKey;autoIncrement:false;index"`
}

func (petStoreCustomerModel) TableName() string { return "pet_store_customer" }

func toPetStoreModel(p petstore.PetStore) petStoreModel {
	return petStoreModel{
		PetStoreID:      p.ID,
		PetStoreName:    p.Name,
		PetStoreAddress: p.Address,
		PetStoreCity:    p.City,
		PetStoreState:   p.State,
		PetStoreZip:     p.Zip,
		PetStorePhone:   p.Phone,
	}
}

func (m petStoreModel) toDomain() petstore.PetStore {
	return petstore.PetStore{
		ID:      m.PetStoreID,
		Name:    m.PetStoreName,
		Address: m.PetStoreAddress,
		City:    m.PetStoreCity,
		State:   m.PetStoreState,
		Zip:     m.PetStoreZip,
		Phone:   m.PetStorePhone,
	}
}

func toEmployeeModel(e petstore.Employee) employeeModel {
	return employeeModel{
		EmployeeID:        e.ID,
		PetStoreID:        e.PetStoreID,
		EmployeeFirstName: e.FirstName,
		EmployeeLastName:  e.LastName,
		EmployeePhone:     e.Phone,
		EmployeeJobTitle:  e.JobTitle,
	}
}

func (m employeeModel) toDomain() petstore.Employee {
	return petstore.Employee{
		ID:         m.EmployeeID,
		PetStoreID: m.PetStoreID,
		FirstName:  m.EmployeeFirstName,
		LastName:   m.EmployeeLastName,
		Phone:      m.EmployeePhone,
		JobTitle:   m.EmployeeJobTitle,
	}
}

func toCustomerModel(c petstore.Customer) customerModel {
	return customerModel{
		CustomerID:        c.ID,
		CustomerFirstName: c.FirstName,
		CustomerLastName:  c.LastName,
		CustomerEmail:     c.Email,
	}
}

func (m customerModel) toDomain() petstore.Customer {
	return petstore.Customer{
		ID:        m.CustomerID,
		FirstName: m.CustomerFirstName,
		LastName:  m.CustomerLastName,
		Email:     m.CustomerEmail,
	}
}
