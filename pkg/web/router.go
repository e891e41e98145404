// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/unionsimple/union-service/internal/authorization"
	"github.com/unionsimple/union-service/internal/db"
	"github.com/unionsimple/union-service/internal/logging"
	"github.com/unionsimple/union-service/internal/monitoring"
	"github.com/unionsimple/union-service/internal/slug"
	"github.com/unionsimple/union-service/internal/storage"
	"github.com/unionsimple/union-service/internal/tracing"
	"github.com/unionsimple/union-service/pkg/authentication"
	"github.com/unionsimple/union-service/pkg/member"
	"github.com/unionsimple/union-service/pkg/metrics"
	"github.com/unionsimple/union-service/pkg/status"
	"github.com/unionsimple/union-service/pkg/union"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	verifier authentication.TokenVerifierInterface,
	corsAllowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	guard := authorization.NewGuard(s, tracer, monitor, logger)
	allocator := slug.NewAllocator(s, tracer, monitor, logger)

	unionService := union.NewService(s, allocator, guard, dbClient, tracer, monitor, logger)
	memberService := member.NewService(s, guard, tracer, monitor, logger)

	// Everything behind authentication; mutating requests get a lazy
	// transaction committed only on success.
	apiRouter := chi.NewMux()
	apiRouter.Use(
		authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(),
		db.TransactionMiddleware(dbClient, logger),
	)

	union.NewAPI(unionService, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	member.NewAPI(memberService, tracer, monitor, logger).RegisterEndpoints(apiRouter)

	router.Mount("/", apiRouter)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
