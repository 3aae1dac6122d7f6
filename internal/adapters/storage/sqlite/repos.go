package sqlite

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pet-store/internal/domain/petstore"
)

// -------------------------
// pet_store
// -------------------------

type petStoreRepo struct {
	db *gorm.DB
}

func (r *petStoreRepo) FindByID(ctx context.Context, id int64) (petstore.PetStore, error) {
	var m petStoreModel
	err := r.db.WithContext(ctx).Where("pet_store_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return petstore.PetStore{}, errors.NotFoundf("pet store %d", id)
	}
	if err != nil {
		return petstore.PetStore{}, err
	}
	return m.toDomain(), nil
}

func (r *petStoreRepo) FindAll(ctx context.Context) ([]petstore.PetStore, error) {
	var ms []petStoreModel
	if err := r.db.WithContext(ctx).Order("pet_store_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]petstore.PetStore, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *petStoreRepo) Save(ctx context.Context, p petstore.PetStore) (petstore.PetStore, error) {
	m := toPetStoreModel(p)
	db := r.db.WithContext(ctx)

	if m.PetStoreID == 0 {
		if err := db.Omit(clause.Associations).Create(&m).Error; err != nil {
			return petstore.PetStore{}, err
		}
		return m.toDomain(), nil
	}

	// Updates con map para escribir también valores vacíos.
	res := db.Model(&petStoreModel{}).Where("pet_store_id = ?", m.PetStoreID).Updates(map[string]any{
		"pet_store_name":    m.PetStoreName,
		"pet_store_address": m.PetStoreAddress,
		"pet_store_city":    m.PetStoreCity,
		"pet_store_state":   m.PetStoreState,
		"pet_store_zip":     m.PetStoreZip,
		"pet_store_phone":   m.PetStorePhone,
	})
	if res.Error != nil {
		return petstore.PetStore{}, res.Error
	}
	if res.RowsAffected == 0 {
		return petstore.PetStore{}, errors.NotFoundf("pet store %d", m.PetStoreID)
	}
	return m.toDomain(), nil
}

// Delete borra hijos explícitamente; no dependemos de PRAGMA foreign_keys.
func (r *petStoreRepo) Delete(ctx context.Context, p petstore.PetStore) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("pet_store_id = ?", p.ID).Delete(&employeeModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("pet_store_id = ?", p.ID).Delete(&petStoreCustomerModel{}).Error; err != nil {
		return err
	}

	res := db.Where("pet_store_id = ?", p.ID).Delete(&petStoreModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.NotFoundf("pet store %d", p.ID)
	}
	return nil
}

// -------------------------
// employee
// -------------------------

type employeeRepo struct {
	db *gorm.DB
}

func (r *employeeRepo) FindByID(ctx context.Context, id int64) (petstore.Employee, error) {
	var m employeeModel
	err := r.db.WithContext(ctx).Where("employee_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return petstore.Employee{}, errors.NotFoundf("employee %d", id)
	}
	if err != nil {
		return petstore.Employee{}, err
	}
	return m.toDomain(), nil
}

func (r *employeeRepo) FindAll(ctx context.Context) ([]petstore.Employee, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *employeeRepo) FindByPetStore(ctx context.Context, petStoreID int64) ([]petstore.Employee, error) {
	return r.list(r.db.WithContext(ctx).Where("pet_store_id = ?", petStoreID))
}

func (r *employeeRepo) Save(ctx context.Context, e petstore.Employee) (petstore.Employee, error) {
	m := toEmployeeModel(e)
	db := r.db.WithContext(ctx)

	if m.EmployeeID == 0 {
		if err := db.Omit(clause.Associations).Create(&m).Error; err != nil {
			return petstore.Employee{}, err
		}
		return m.toDomain(), nil
	}

	res := db.Model(&employeeModel{}).Where("employee_id = ?", m.EmployeeID).Updates(map[string]any{
		"pet_store_id":        m.PetStoreID,
		"employee_first_name": m.EmployeeFirstName,
		"employee_last_name":  m.EmployeeLastName,
		"employee_phone":      m.EmployeePhone,
		"employee_job_title":  m.EmployeeJobTitle,
	})
	if res.Error != nil {
		return petstore.Employee{}, res.Error
	}
	if res.RowsAffected == 0 {
		return petstore.Employee{}, errors.NotFoundf("employee %d", m.EmployeeID)
	}
	return m.toDomain(), nil
}

func (r *employeeRepo) Delete(ctx context.Context, e petstore.Employee) error {
	res := r.db.WithContext(ctx).Where("employee_id = ?", e.ID).Delete(&employeeModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.NotFoundf("employee %d", e.ID)
	}
	return nil
}

func (r *employeeRepo) list(q *gorm.DB) ([]petstore.Employee, error) {
	var ms []employeeModel
	if err := q.Order("employee_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]petstore.Employee, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toDomain())
	}
	return out, nil
}

// -------------------------
// customer
// -------------------------

type customerRepo struct {
	db *gorm.DB
}

func (r *customerRepo) FindByID(ctx context.Context, id int64) (petstore.Customer, error) {
	var m customerModel
	err := r.db.WithContext(ctx).Where("customer_id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return petstore.Customer{}, errors.NotFoundf("customer %d", id)
	}
	if err != nil {
		return petstore.Customer{}, err
	}
	return m.toDomain(), nil
}

func (r *customerRepo) FindAll(ctx context.Context) ([]petstore.Customer, error) {
	return r.list(r.db.WithContext(ctx).Model(&customerModel{}))
}

func (r *customerRepo) FindByPetStore(ctx context.Context, petStoreID int64) ([]petstore.Customer, error) {
	q := r.db.WithContext(ctx).Model(&customerModel{}).
		Select("customer.*").
		Joins("JOIN pet_store_customer psc ON psc.customer_id = customer.customer_id").
		Where("psc.pet_store_id = ?", petStoreID)
	return r.list(q)
}

func (r *customerRepo) PetStoreIDs(ctx context.Context, customerID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&petStoreCustomerModel{}).
		Where("customer_id = ?", customerID).
		Order("pet_store_id ASC").
		Pluck("pet_store_id", &ids).Error
	return ids, err
}

func (r *customerRepo) AddPetStore(ctx context.Context, customerID, petStoreID int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&petStoreCustomerModel{PetStoreID: petStoreID, CustomerID: customerID}).Error
}

func (r *customerRepo) Save(ctx context.Context, c petstore.Customer) (petstore.Customer, error) {
	m := toCustomerModel(c)
	db := r.db.WithContext(ctx)

	if m.CustomerID == 0 {
		if err := db.Create(&m).Error; err != nil {
			return petstore.Customer{}, err
		}
		return m.toDomain(), nil
	}

	res := db.Model(&customerModel{}).Where("customer_id = ?", m.CustomerID).Updates(map[string]any{
		"customer_first_name": m.CustomerFirstName,
		"customer_last_name":  m.CustomerLastName,
		"customer_email":      m.CustomerEmail,
	})
	if res.Error != nil {
		return petstore.Customer{}, res.Error
	}
	if res.RowsAffected == 0 {
		return petstore.Customer{}, errors.NotFoundf("customer %d", m.CustomerID)
	}
	return m.toDomain(), nil
}

func (r *customerRepo) Delete(ctx context.Context, c petstore.Customer) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("customer_id = ?", c.ID).Delete(&petStoreCustomerModel{}).Error; err != nil {
		return err
	}

	res := db.Where("customer_id = ?", c.ID).Delete(&customerModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.NotFoundf("customer %d", c.ID)
	}
	return nil
}

func (r *customerRepo) list(q *gorm.DB) ([]petstore.Customer, error) {
	var ms []customerModel
	if err := q.Order("customer.customer_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]petstore.Customer, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toDomain())
	}
	return out, nil
}
