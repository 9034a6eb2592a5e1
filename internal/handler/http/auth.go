package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-car-keeper/internal/app"
	"github.com/MKhiriev/go-car-keeper/internal/crypto"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
	"github.com/MKhiriev/go-car-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, crypto.ErrPasswordTooLong):
			log.Err(err).Str("func", "*Handler.register").Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Info().Str("func", "*Handler.register").Str("username", credentials.Username).Msg("username already exists")
			http.Error(w, app.MsgUsernameAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Str("func", "*Handler.register").Msg("unexpected error occurred during user registration")
			writeError(w, err)
			return
		}
	}

	utils.WriteText(w, app.MsgUserRegistered, http.StatusOK)
}

// login answers with the raw token as the response body. The same token is
// mirrored in the Authorization response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.login").Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrAuthenticationFailed):
			log.Info().Str("func", "*Handler.login").Str("username", credentials.Username).Msg("invalid username/password")
			http.Error(w, app.MsgInvalidUsernamePassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("func", "*Handler.login").Msg("unexpected error occurred during user login")
			writeError(w, err)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("%s %s", bearerScheme, token.SignedString))
	utils.WriteText(w, token.SignedString, http.StatusOK)
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgHello, http.StatusOK)
}
