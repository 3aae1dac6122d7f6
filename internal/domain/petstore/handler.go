package petstore

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/juju/errors"
	"github.com/rs/zerolog"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet_store/pet_store", func(pr chi.Router) {
		pr.Post("/", createPetStoreHandler(svc))
		pr.Get("/", listPetStoresHandler(svc))

		pr.Get("/{petStoreID}", getPetStoreHandler(svc))
		pr.Put("/{petStoreID}", updatePetStoreHandler(svc))
		pr.Delete("/{petStoreID}", deletePetStoreHandler(svc))

		pr.Post("/{petStoreID}/employee", addEmployeeHandler(svc))
		pr.Post("/{petStoreID}/customer", addCustomerHandler(svc))
	})
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse sigue la forma {code, message, status}.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// createPetStoreHandler godoc
// @Summary      Create a pet store
// @Description  Creates a pet store, or updates it when petStoreId is present.
// @Tags         pet_store
// @Accept       json
// @Produce      json
// @Param        body  body      PetStoreData  true  "Pet store"
// @Success      201   {object}  PetStoreData
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /pet_store/pet_store [post]
func createPetStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PetStoreData
		if !decodeJSON(w, r, &req) {
			return
		}

		zerolog.Ctx(r.Context()).Info().Str("pet_store_name", req.Name).Msg("creating pet store")

		out, err := svc.SavePetStore(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

// updatePetStoreHandler godoc
// @Summary      Update a pet store
// @Tags         pet_store
// @Accept       json
// @Produce      json
// @Param        petStoreID  path      int           true  "Pet store ID"
// @Param        body        body      PetStoreData  true  "Pet store"
// @Success      200         {object}  PetStoreData
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /pet_store/pet_store/{petStoreID} [put]
func updatePetStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petStoreID, ok := pathID(w, r)
		if !ok {
			return
		}

		var req PetStoreData
		if !decodeJSON(w, r, &req) {
			return
		}
		// El ID del path manda sobre el del body.
		req.ID = &petStoreID

		zerolog.Ctx(r.Context()).Info().Int64("pet_store_id", petStoreID).Msg("updating pet store")

		out, err := svc.SavePetStore(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// addEmployeeHandler godoc
// @Summary      Add or update an employee of a pet store
// @Tags         pet_store
// @Accept       json
// @Produce      json
// @Param        petStoreID  path      int               true  "Pet store ID"
// @Param        body        body      PetStoreEmployee  true  "Employee"
// @Success      201         {object}  PetStoreEmployee
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /pet_store/pet_store/{petStoreID}/employee [post]
func addEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petStoreID, ok := pathID(w, r)
		if !ok {
			return
		}

		var req PetStoreEmployee
		if !decodeJSON(w, r, &req) {
			return
		}

		zerolog.Ctx(r.Context()).Info().
			Int64("pet_store_id", petStoreID).
			Str("employee", req.FirstName+" "+req.LastName).
			Msg("saving employee")

		out, err := svc.SaveEmployee(r.Context(), petStoreID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

// addCustomerHandler godoc
// @Summary      Add or update a customer of a pet store
// @Tags         pet_store
// @Accept       json
// @Produce      json
// @Param        petStoreID  path      int               true  "Pet store ID"
// @Param        body        body      PetStoreCustomer  true  "Customer"
// @Success      201         {object}  PetStoreCustomer
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /pet_store/pet_store/{petStoreID}/customer [post]
func addCustomerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petStoreID, ok := pathID(w, r)
		if !ok {
			return
		}

		var req PetStoreCustomer
		if !decodeJSON(w, r, &req) {
			return
		}

		zerolog.Ctx(r.Context()).Info().
			Int64("pet_store_id", petStoreID).
			Str("customer", req.FirstName+" "+req.LastName).
			Msg("saving customer")

		out, err := svc.SaveCustomer(r.Context(), petStoreID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

// listPetStoresHandler godoc
// @Summary      List pet stores
// @Description  Descriptive fields only, employees and customers are not included.
// @Tags         pet_store
// @Produce      json
// @Success      200  {array}  PetStoreData
// @Router       /pet_store/pet_store [get]
func listPetStoresHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("retrieving all pet stores")

		items, err := svc.RetrieveAllPetStores(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// getPetStoreHandler godoc
// @Summary      Get a pet store
// @Tags         pet_store
// @Produce      json
// @Param        petStoreID  path      int  true  "Pet store ID"
// @Success      200         {object}  PetStoreData
// @Failure      404         {object}  errorResponse
// @Router       /pet_store/pet_store/{petStoreID} [get]
func getPetStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petStoreID, ok := pathID(w, r)
		if !ok {
			return
		}

		zerolog.Ctx(r.Context()).Info().Int64("pet_store_id", petStoreID).Msg("retrieving pet store")

		out, err := svc.RetrievePetStoreByID(r.Context(), petStoreID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// deletePetStoreHandler godoc
// @Summary      Delete a pet store
// @Tags         pet_store
// @Produce      json
// @Param        petStoreID  path      int  true  "Pet store ID"
// @Success      200         {object}  messageResponse
// @Failure      404         {object}  errorResponse
// @Router       /pet_store/pet_store/{petStoreID} [delete]
func deletePetStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petStoreID, ok := pathID(w, r)
		if !ok {
			return
		}

		zerolog.Ctx(r.Context()).Info().Int64("pet_store_id", petStoreID).Msg("deleting pet store")

		if err := svc.DeletePetStoreByID(r.Context(), petStoreID); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Deletion of Pet Store with ID= %d was successful.", petStoreID),
		})
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "petStoreID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeErrorStatus(w, http.StatusBadRequest, "petStoreID must be a positive integer")
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// writeError traduce los tipos de juju/errors a status HTTP.
// Los errores no tipados se loguean y se responden como 500 genérico.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errors.NotFound):
		writeErrorStatus(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errors.NotValid):
		writeErrorStatus(w, http.StatusBadRequest, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeErrorStatus(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func writeErrorStatus(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Code:    strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_")),
		Message: msg,
		Status:  status,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
