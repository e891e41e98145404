// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package union

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/unionsimple/union-service/internal/http/types"
	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/storage"
	"github.com/unionsimple/union-service/internal/tracing"
	"github.com/unionsimple/union-service/internal/types"
	"github.com/unionsimple/union-service/pkg/authentication"
)

type CreateUnionRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type UpdateUnionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/unions", a.handleCreate)
	mux.Get("/api/v0/unions", a.handleList)
	mux.Get("/api/v0/unions/{slug}", a.handleDetail)
	mux.Patch("/api/v0/unions/{slug}", a.handleUpdate)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	req := new(CreateUnionRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Trim before validation so whitespace-only names fail the required
	// check instead of creating a blank union.
	req.Name = strings.TrimSpace(req.Name)
	req.Description = trimDescription(req.Description)

	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	created, err := a.service.CreateUnion(ctx, req.Name, req.Description, userID)
	if err != nil {
		a.serviceError(w, err, "failed to create union")
		return
	}

	a.writeResponse(w, http.StatusCreated, created)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	unions, err := a.service.ListUnionsByCreator(ctx, userID)
	if err != nil {
		a.serviceError(w, err, "failed to list unions")
		return
	}

	if unions == nil {
		unions = []*types.Union{}
	}

	a.writeResponse(w, http.StatusOK, unions)
}

func (a *API) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	u, err := a.service.GetUnionBySlug(ctx, chi.URLParam(r, "slug"), userID)
	if err != nil {
		a.serviceError(w, err, "failed to get union")
		return
	}

	a.writeResponse(w, http.StatusOK, u)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	req := new(UpdateUnionRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			a.writeError(w, http.StatusBadRequest, "union name must not be blank")
			return
		}
		req.Name = &trimmed
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		req.Description = &trimmed
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	update := new(types.Union)
	paths := make([]string, 0, 2)
	if req.Name != nil {
		update.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Description != nil {
		update.Description = req.Description
		paths = append(paths, "description")
	}
	if len(paths) == 0 {
		a.writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := a.service.UpdateUnion(ctx, chi.URLParam(r, "slug"), userID, update, paths)
	if err != nil {
		a.serviceError(w, err, "failed to update union")
		return
	}

	a.writeResponse(w, http.StatusOK, updated)
}

func (a *API) serviceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "union not found")
	case errors.Is(err, ErrForbidden):
		a.writeError(w, http.StatusForbidden, "forbidden")
	default:
		a.logger.Errorf("%s: %v", message, err)
		a.writeError(w, http.StatusInternalServerError, message)
	}
}

// trimDescription trims the description, dropping it entirely when blank.
func trimDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validationMessage flattens a validator error into the first field-level
// failure, which is what form clients surface.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Sprintf("field %s failed validation on %s", fieldErrs[0].Field(), fieldErrs[0].Tag())
	}
	return "invalid request"
}

func (a *API) writeResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httpTypes.Response{Data: data, Status: status}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httpTypes.Response{Message: message, Status: status}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
