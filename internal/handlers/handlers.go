// handlers.go
//
// PropIQ, a property, lease and tenant management service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of propiq.
// propiq is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propiq is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propiq.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/localnerve/propiq/internal/auth"
	"github.com/localnerve/propiq/internal/config"
	"github.com/localnerve/propiq/internal/middleware"
	"github.com/localnerve/propiq/internal/services"
	"github.com/localnerve/propiq/internal/types"
	"github.com/localnerve/propiq/internal/utils"
)

// Handler serves the /api routes
type Handler struct {
	Config   *config.Config
	DB       *gorm.DB
	Store    *services.Store
	Provider auth.Provider
	Sessions *auth.SessionStore
}

// New builds a Handler over db
func New(cfg *config.Config, db *gorm.DB, provider auth.Provider) *Handler {
	return &Handler{
		Config:   cfg,
		DB:       db,
		Store:    services.NewStore(db),
		Provider: provider,
		Sessions: auth.NewSessionStore(db, cfg.SessionTTL),
	}
}

// Register mounts every route on api. Health, nav and auth are public.
func (h *Handler) Register(api fiber.Router) {
	api.Get("/health", h.Health)
	api.Get("/nav", h.Nav)

	authGroup := api.Group("/auth")
	authGroup.Get("/session", h.GetSession)
	authGroup.Post("/signin", h.SignIn)
	authGroup.Post("/signup", h.SignUp)
	authGroup.Post("/signout", h.SignOut)

	gate := middleware.RequireSession(h.Provider, h.Sessions, h.Config.SessionCookie)

	properties := api.Group("/properties", gate)
	properties.Get("/", h.ListProperties)
	properties.Post("/", h.CreateProperty)
	properties.Get("/:id", h.GetProperty)
	properties.Get("/:id/edit", h.EditProperty)
	properties.Put("/:id", h.UpdateProperty)
	properties.Post("/:id/archive", h.ArchiveProperty)

	leases := api.Group("/leases", gate)
	leases.Get("/", h.ListLeases)
	leases.Post("/", h.CreateLease)

	tenants := api.Group("/tenants", gate)
	tenants.Get("/", h.ListTenants)
	tenants.Post("/", h.CreateTenant)
}

// ErrorHandler renders every unhandled error in the standard envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var (
		fiberErr      *fiber.Error
		customErr     *types.CustomError
		validationErr *types.ValidationError
		authErr       *types.AuthError
	)
	switch {
	case errors.As(err, &customErr):
		code, message, errorType = customErr.Code, customErr.Message, customErr.Type
	case errors.As(err, &fiberErr):
		code, message = fiberErr.Code, fiberErr.Message
	case errors.As(err, &validationErr):
		code, message, errorType = fiber.StatusBadRequest, validationErr.Message, "validation"
	case errors.As(err, &authErr):
		code, message, errorType = fiber.StatusUnauthorized, authErr.Message, "auth"
	case errors.Is(err, types.ErrNotFound):
		code, message, errorType = fiber.StatusNotFound, "Resource not found", "notFound"
	case types.IsRemote(err):
		log.Printf("Unhandled remote error: %v", err)
		message, errorType = "Internal Server Error", "remote"
	}

	return utils.ErrorResponse(c, message, code, errorType)
}

// NotFound answers any route nothing else matched
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
