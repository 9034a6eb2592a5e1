package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-car-keeper/internal/app"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgHome, http.StatusOK)
}

// getAllCars answers 204 with no body when there are no cars.
func (h *Handler) getAllCars(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	cars, err := h.services.CarService.GetAllCars(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllCars").Msg("error getting cars")
		writeError(w, err)
		return
	}

	if len(cars) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, cars, http.StatusOK)
}

func (h *Handler) getCarByID(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	id, err := carIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCarByID").Send()
		writeError(w, err)
		return
	}

	car, err := h.services.CarService.GetCarByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCarByID").Int64("car_id", id).Msg("error getting car")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, car, http.StatusOK)
}

func (h *Handler) addCars(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	var cars []models.Car
	if err := json.NewDecoder(r.Body).Decode(&cars); err != nil {
		log.Err(err).Str("func", "*Handler.addCars").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.CarService.AddCars(r.Context(), cars)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addCars").Msg("error saving cars")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

// updateCarByID applies a partial update. The id always comes from the path;
// an id in the body is ignored.
func (h *Handler) updateCarByID(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	id, err := carIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCarByID").Send()
		writeError(w, err)
		return
	}

	var update models.CarUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateCarByID").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	update.ID = id

	car, err := h.services.CarService.UpdateCar(r.Context(), update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCarByID").Int64("car_id", id).Msg("error updating car")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, car, http.StatusOK)
}

func (h *Handler) deleteCarByID(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	id, err := carIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteCarByID").Send()
		writeError(w, err)
		return
	}

	if err = h.services.CarService.DeleteCar(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCarByID").Int64("car_id", id).Msg("error deleting car")
		writeError(w, err)
		return
	}

	utils.WriteText(w, app.MsgCarDeleted, http.StatusOK)
}

func carIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidCarID
	}
	return id, nil
}
