package router_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-store/internal/domain/petstore"
	"pet-store/internal/platform/httpclient"
	"pet-store/internal/router"
)

const basePath = "/pet_store/pet_store"

func newTestAPI(t *testing.T) (*httpclient.Client, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)

	c, err := httpclient.New(ts.URL, 5*time.Second)
	require.NoError(t, err)
	return c, ts
}

func TestHTTP_EndToEnd_PetStoreLifecycle(t *testing.T) {
	c, _ := newTestAPI(t)
	ctx := context.Background()

	// 1) Crear tienda sin ID => 201 + ID generado
	store := createPetStore(t, c, petstore.PetStoreData{
		Name:    "Pets R Us",
		Address: "1 Main St",
		City:    "Boise",
		State:   "ID",
		Zip:     "83702",
		Phone:   "555-0100",
	})
	storeID := *store.ID

	// 2) Alta de empleado
	var emp petstore.PetStoreEmployee
	err := c.Post(ctx, fmt.Sprintf("%s/%d/employee", basePath, storeID), petstore.PetStoreEmployee{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "555-0101",
		JobTitle:  "Manager",
	}, &emp)
	require.NoError(t, err)
	require.NotNil(t, emp.ID)
	assert.Equal(t, "Manager", emp.JobTitle)

	// 3) Alta de cliente
	var cust petstore.PetStoreCustomer
	err = c.Post(ctx, fmt.Sprintf("%s/%d/customer", basePath, storeID), petstore.PetStoreCustomer{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	}, &cust)
	require.NoError(t, err)
	require.NotNil(t, cust.ID)

	// 4) PUT fuerza el ID del path y devuelve la vista completa
	var updated petstore.PetStoreData
	err = c.Put(ctx, fmt.Sprintf("%s/%d", basePath, storeID), petstore.PetStoreData{
		Name: "Pets R Us Downtown",
		City: "Boise",
	}, &updated)
	require.NoError(t, err)
	assert.Equal(t, storeID, *updated.ID)
	assert.Equal(t, "Pets R Us Downtown", updated.Name)
	assert.Empty(t, updated.Address, "fields are copied as sent")
	require.Len(t, updated.Employees, 1)
	require.Len(t, updated.Customers, 1)

	// 5) GET por ID sin colecciones
	raw := getRaw(t, c, fmt.Sprintf("%s/%d", basePath, storeID))
	assert.NotContains(t, raw, `"employees"`)
	assert.NotContains(t, raw, `"customers"`)
	assert.Contains(t, raw, `"petStoreName":"Pets R Us Downtown"`)

	// 6) Listado sin colecciones
	raw = getRaw(t, c, basePath)
	assert.NotContains(t, raw, `"employees"`)
	assert.NotContains(t, raw, `"customers"`)

	var all []petstore.PetStoreData
	require.NoError(t, c.Get(ctx, basePath, &all))
	require.Len(t, all, 1)

	// 7) DELETE => mensaje
	var msg struct {
		Message string `json:"message"`
	}
	require.NoError(t, c.Delete(ctx, fmt.Sprintf("%s/%d", basePath, storeID), &msg))
	assert.Equal(t, fmt.Sprintf("Deletion of Pet Store with ID= %d was successful.", storeID), msg.Message)

	// 8) Ya no existe
	err = c.Get(ctx, fmt.Sprintf("%s/%d", basePath, storeID), nil)
	assert.Equal(t, http.StatusNotFound, httpclient.StatusCode(err))
}

func TestHTTP_CreateTwiceYieldsDistinctIDs(t *testing.T) {
	c, _ := newTestAPI(t)

	a := createPetStore(t, c, petstore.PetStoreData{Name: "A"})
	b := createPetStore(t, c, petstore.PetStoreData{Name: "B"})
	assert.NotEqual(t, *a.ID, *b.ID)
}

func TestHTTP_UpdateUsesPathIDOverBodyID(t *testing.T) {
	c, _ := newTestAPI(t)
	ctx := context.Background()

	a := createPetStore(t, c, petstore.PetStoreData{Name: "A", City: "Boise"})
	b := createPetStore(t, c, petstore.PetStoreData{Name: "B", City: "Nampa"})

	var updated petstore.PetStoreData
	err := c.Put(ctx, fmt.Sprintf("%s/%d", basePath, *a.ID), petstore.PetStoreData{
		ID:   b.ID,
		Name: "A renamed",
		City: "Meridian",
	}, &updated)
	require.NoError(t, err)
	require.NotNil(t, updated.ID)
	assert.Equal(t, *a.ID, *updated.ID)
	assert.Equal(t, "A renamed", updated.Name)

	var gotA, gotB petstore.PetStoreData
	require.NoError(t, c.Get(ctx, fmt.Sprintf("%s/%d", basePath, *a.ID), &gotA))
	require.NoError(t, c.Get(ctx, fmt.Sprintf("%s/%d", basePath, *b.ID), &gotB))

	assert.Equal(t, "A renamed", gotA.Name)
	assert.Equal(t, "Meridian", gotA.City)
	assert.Equal(t, "B", gotB.Name)
	assert.Equal(t, "Nampa", gotB.City)
}

func TestHTTP_EmployeeFromOtherStoreRejected(t *testing.T) {
	c, _ := newTestAPI(t)
	ctx := context.Background()

	seven := createPetStore(t, c, petstore.PetStoreData{Name: "Seven"})
	five := createPetStore(t, c, petstore.PetStoreData{Name: "Five"})

	var emp petstore.PetStoreEmployee
	require.NoError(t, c.Post(ctx, fmt.Sprintf("%s/%d/employee", basePath, *seven.ID), petstore.PetStoreEmployee{
		FirstName: "Bob",
	}, &emp))

	err := c.Post(ctx, fmt.Sprintf("%s/%d/employee", basePath, *five.ID), petstore.PetStoreEmployee{
		ID:        emp.ID,
		FirstName: "Bob",
	}, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpclient.StatusCode(err))
	assert.Contains(t, err.Error(), "does not belong")
}

func TestHTTP_CustomerNotAssociatedRejected(t *testing.T) {
	c, _ := newTestAPI(t)
	ctx := context.Background()

	a := createPetStore(t, c, petstore.PetStoreData{Name: "A"})
	b := createPetStore(t, c, petstore.PetStoreData{Name: "B"})

	var cust petstore.PetStoreCustomer
	require.NoError(t, c.Post(ctx, fmt.Sprintf("%s/%d/customer", basePath, *a.ID), petstore.PetStoreCustomer{
		FirstName: "Grace",
	}, &cust))

	err := c.Post(ctx, fmt.Sprintf("%s/%d/customer", basePath, *b.ID), petstore.PetStoreCustomer{
		ID:        cust.ID,
		FirstName: "Grace",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, httpclient.StatusCode(err))
}

func TestHTTP_NotFoundAndBadInput(t *testing.T) {
	c, ts := newTestAPI(t)
	ctx := context.Background()

	t.Run("DeleteUnknown", func(t *testing.T) {
		err := c.Delete(ctx, basePath+"/999", nil)
		assert.Equal(t, http.StatusNotFound, httpclient.StatusCode(err))

		var apiErr *httpclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
		assert.Equal(t, "Pet store with ID= 999 was not found.", apiErr.Message)
	})

	t.Run("UpdateUnknown", func(t *testing.T) {
		err := c.Put(ctx, basePath+"/999", petstore.PetStoreData{Name: "x"}, nil)
		assert.Equal(t, http.StatusNotFound, httpclient.StatusCode(err))
	})

	t.Run("EmployeeOnUnknownStore", func(t *testing.T) {
		err := c.Post(ctx, basePath+"/999/employee", petstore.PetStoreEmployee{FirstName: "x"}, nil)
		assert.Equal(t, http.StatusNotFound, httpclient.StatusCode(err))
	})

	t.Run("NonNumericID", func(t *testing.T) {
		err := c.Get(ctx, basePath+"/abc", nil)
		assert.Equal(t, http.StatusBadRequest, httpclient.StatusCode(err))
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		res, err := http.Post(ts.URL+basePath, "application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTP_AmbientEndpoints(t *testing.T) {
	c, ts := newTestAPI(t)

	// genera al menos una muestra para /metrics
	createPetStore(t, c, petstore.PetStoreData{Name: "m"})

	for path, want := range map[string]string{
		"/health":          "ok",
		"/metrics":         "petstore_http_requests_total",
		"/swagger/doc.json": `"CRUD API for pet stores, their employees and their customers."`,
	} {
		res, err := http.Get(ts.URL + path)
		require.NoError(t, err, path)
		body, _ := io.ReadAll(res.Body)
		_ = res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode, path)
		assert.Contains(t, string(body), want, path)
	}
}

func createPetStore(t *testing.T, c *httpclient.Client, in petstore.PetStoreData) petstore.PetStoreData {
	t.Helper()

	var out petstore.PetStoreData
	err := c.Post(context.Background(), basePath, in, &out)
	require.NoError(t, err)
	require.NotNil(t, out.ID, "create pet store: missing id")
	return out
}

func getRaw(t *testing.T, c *httpclient.Client, path string) string {
	t.Helper()

	res, err := c.HTTP.Get(c.BaseURL + path)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}
