package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/api/shared"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/service"
	"github.com/myflix/myflix-api/internal/store"
)

// UserHandler handles account-related API requests: registration, profile
// updates, account deletion, and the favorites list.
type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// Register handles the POST /users endpoint. It is one of the two public
// routes; everything else in this handler requires an authenticated
// principal that owns the target account.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Errors: validationMessages(err),
		})
		return
	}

	user, err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password, req.Birthday)
	if err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Get handles the GET /users/{id} endpoint. Profiles are private, so a
// principal can only fetch their own record.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.Principal(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	targetID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if principal.ID != targetID {
		shared.RespondWithError(w, r, http.StatusForbidden, "Permission denied")
		return
	}

	user, err := h.userService.GetUser(r.Context(), targetID)
	if err != nil {
		h.respondUserError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Update handles the PUT /users/{id} endpoint.
// The ownership check runs inside the service before any store mutation;
// a principal targeting someone else's account gets 403 and nothing is
// written.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.Principal(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	targetID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Errors: validationMessages(err),
		})
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), principal.ID, targetID, service.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		h.respondUserError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete handles the DELETE /users/{id} endpoint.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.Principal(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	targetID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.DeleteAccount(r.Context(), principal.ID, targetID); err != nil {
		h.respondUserError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": "User deleted successfully",
	})
}

// AddFavorite handles the POST /users/{id}/favorites/{movieID} endpoint.
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, h.userService.AddFavorite)
}

// RemoveFavorite handles the DELETE /users/{id}/favorites/{movieID} endpoint.
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, h.userService.RemoveFavorite)
}

// mutateFavorites shares the path parsing and ownership plumbing between
// the add and remove favorite endpoints.
func (h *UserHandler) mutateFavorites(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, principalID, targetID, movieID uuid.UUID) (*domain.User, error),
) {
	principal, ok := shared.Principal(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	targetID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	movieID, err := getPathUUID(r, "movieID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := op(r.Context(), principal.ID, targetID, movieID)
	if err != nil {
		h.respondUserError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// respondUserError maps service and store errors from account operations
// onto the shared response helpers.
func (h *UserHandler) respondUserError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotOwner):
		shared.RespondWithError(w, r, http.StatusForbidden, "Permission denied")
	case store.IsNotFoundError(err):
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
	case store.IsDuplicateError(err):
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
	default:
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
	}
}
