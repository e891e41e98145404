// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package member

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

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

const dateLayout = "2006-01-02"

// MemberRequest is the write payload for both create and full update.
type MemberRequest struct {
	FirstName    string  `json:"first_name" validate:"required,max=80"`
	LastName     string  `json:"last_name" validate:"required,max=80"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	MemberNumber *string `json:"member_number" validate:"omitempty,max=40"`
	Status       string  `json:"status" validate:"omitempty,oneof=active pending inactive"`
	DateJoined   *string `json:"date_joined" validate:"omitempty,datetime=2006-01-02"`
}

func (r *MemberRequest) toMember() *types.Member {
	m := &types.Member{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		MemberNumber: r.MemberNumber,
		Status:       r.Status,
	}
	if r.DateJoined != nil {
		// Validated against dateLayout already.
		d, err := time.Parse(dateLayout, *r.DateJoined)
		if err == nil {
			m.DateJoined = &d
		}
	}
	return m
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
	mux.Get("/api/v0/unions/{slug}/members", a.handleList)
	mux.Post("/api/v0/unions/{slug}/members", a.handleCreate)
	mux.Get("/api/v0/unions/{slug}/members/{id}", a.handleDetail)
	mux.Put("/api/v0/unions/{slug}/members/{id}", a.handleUpdate)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	members, err := a.service.ListMembers(ctx, chi.URLParam(r, "slug"), userID)
	if err != nil {
		a.serviceError(w, err, "failed to list members")
		return
	}

	if members == nil {
		members = []*types.Member{}
	}

	a.writeResponse(w, http.StatusOK, members)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	req, ok := a.decodeRequest(w, r)
	if !ok {
		return
	}

	created, err := a.service.CreateMember(ctx, chi.URLParam(r, "slug"), userID, req.toMember())
	if err != nil {
		a.serviceError(w, err, "failed to create member")
		return
	}

	a.writeResponse(w, http.StatusCreated, created)
}

func (a *API) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	m, err := a.service.GetMember(ctx, chi.URLParam(r, "slug"), userID, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err, "failed to get member")
		return
	}

	a.writeResponse(w, http.StatusOK, m)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	req, ok := a.decodeRequest(w, r)
	if !ok {
		return
	}

	m := req.toMember()
	m.ID = chi.URLParam(r, "id")

	updated, err := a.service.UpdateMember(ctx, chi.URLParam(r, "slug"), userID, m)
	if err != nil {
		a.serviceError(w, err, "failed to update member")
		return
	}

	a.writeResponse(w, http.StatusOK, updated)
}

func (a *API) decodeRequest(w http.ResponseWriter, r *http.Request) (*MemberRequest, bool) {
	req := new(MemberRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	if err := a.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			a.writeError(w, http.StatusBadRequest, fmt.Sprintf("field %s failed validation on %s", fieldErrs[0].Field(), fieldErrs[0].Tag()))
		} else {
			a.writeError(w, http.StatusBadRequest, "invalid request")
		}
		return nil, false
	}

	return req, true
}

func (a *API) serviceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrForbidden):
		a.writeError(w, http.StatusForbidden, "forbidden")
	default:
		a.logger.Errorf("%s: %v", message, err)
		a.writeError(w, http.StatusInternalServerError, message)
	}
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
