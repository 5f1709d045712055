// properties.go
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
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/propiq/internal/containers"
	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/views"
)

const propertyNotFound = "This property could not be found or you don't have access to it."

type propertyFormResponse = formResponse[forms.State[forms.PropertyValues], views.PropertyListView]

type propertyEditResponse = formResponse[forms.State[forms.PropertyValues], views.PropertyDetailView]

type archiveBody struct {
	Confirm bool `json:"confirm"`
}

// ArchiveResponse reports an archive request. Without confirm the prompt is returned and nothing changes.
type ArchiveResponse struct {
	Prompt   string                  `json:"prompt"`
	Archived bool                    `json:"archived"`
	View     *views.PropertyListView `json:"view,omitempty"`
}

// ListProperties handles GET /api/properties
// @Summary List properties
// @Description Active properties with the status summary. filter narrows the rows, never the summary.
// @Tags Properties
// @Produce json
// @Param filter query string false "all, occupied or vacant"
// @Success 200 {object} views.PropertyListView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties [get]
func (h *Handler) ListProperties(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	list := containers.NewPropertyList(h.Store)
	list.Mount(ctx)
	return c.JSON(views.RenderPropertyList(list.Snapshot(), filter, views.FullAccess))
}

// CreateProperty handles POST /api/properties
// @Summary Add property
// @Description Submit the Add Property form. The list is re-fetched after a successful insert.
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body forms.PropertyValues true "Property fields"
// @Success 201 {object} propertyFormResponse
// @Failure 400 {object} propertyFormResponse
// @Failure 500 {object} propertyFormResponse
// @Security CookieAuth
// @Router /properties [post]
func (h *Handler) CreateProperty(c *fiber.Ctx) error {
	form := forms.NewPropertyForm(h.Config.DefaultCountry, nil)
	values := form.State().Values
	if err := parseBody(c, &values); err != nil {
		return err
	}
	form.Set(values)

	ctx, cancel := requestContext(c)
	defer cancel()

	list := containers.NewPropertyList(h.Store)
	list.Mount(ctx)

	err := form.Submit(ctx, list.Create)
	return c.Status(submitStatus(err, true)).JSON(propertyFormResponse{
		Form: form.State(),
		View: views.RenderPropertyList(list.Snapshot(), views.FilterAll, views.FullAccess),
	})
}

// GetProperty handles GET /api/properties/:id
// @Summary Property detail
// @Description One property, archived or not
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} views.PropertyDetailView
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} views.PropertyDetailView
// @Security CookieAuth
// @Router /properties/{id} [get]
func (h *Handler) GetProperty(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	detail := h.mountDetail(ctx, c)
	if detail == nil {
		return respondNotFound(c, propertyNotFound)
	}
	view := views.RenderPropertyDetail(detail.Snapshot(), views.FullAccess)
	if view.State == containers.DetailError {
		return c.Status(fiber.StatusInternalServerError).JSON(view)
	}
	return c.JSON(view)
}

// EditProperty handles GET /api/properties/:id/edit
// @Summary Edit property form
// @Description The Edit Property form seeded from the stored record
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} propertyEditResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id}/edit [get]
func (h *Handler) EditProperty(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	detail := h.mountDetail(ctx, c)
	if detail == nil {
		return respondNotFound(c, propertyNotFound)
	}
	snap := detail.Snapshot()
	if snap.Property == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(views.RenderPropertyDetail(snap, views.FullAccess))
	}

	initial := forms.PropertyValuesFrom(*snap.Property)
	form := forms.NewPropertyForm(h.Config.DefaultCountry, &initial)
	return c.JSON(propertyEditResponse{
		Form: form.State(),
		View: views.RenderPropertyDetail(snap, views.FullAccess),
	})
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Update property
// @Description Submit the Edit Property form. Fields absent from the body keep their stored values.
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body forms.PropertyValues true "Property fields"
// @Success 200 {object} propertyEditResponse
// @Failure 400 {object} propertyEditResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} propertyEditResponse
// @Security CookieAuth
// @Router /properties/{id} [put]
func (h *Handler) UpdateProperty(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	detail := h.mountDetail(ctx, c)
	if detail == nil {
		return respondNotFound(c, propertyNotFound)
	}
	snap := detail.Snapshot()
	if snap.Property == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(views.RenderPropertyDetail(snap, views.FullAccess))
	}

	values := forms.PropertyValuesFrom(*snap.Property)
	form := forms.NewPropertyForm(h.Config.DefaultCountry, &values)
	if err := parseBody(c, &values); err != nil {
		return err
	}
	form.Set(values)

	err := form.Submit(ctx, detail.Update)
	return c.Status(submitStatus(err, false)).JSON(propertyEditResponse{
		Form: form.State(),
		View: views.RenderPropertyDetail(detail.Snapshot(), views.FullAccess),
	})
}

// ArchiveProperty handles POST /api/properties/:id/archive
// @Summary Archive property
// @Description Without confirm the prompt is returned and nothing is written. With confirm the property is archived and the list re-fetched.
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body archiveBody false "Confirmation"
// @Success 200 {object} ArchiveResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /properties/{id}/archive [post]
func (h *Handler) ArchiveProperty(c *fiber.Ctx) error {
	id, ok := notFoundID(c)
	if !ok {
		return respondNotFound(c, propertyNotFound)
	}

	var body archiveBody
	if err := parseBody(c, &body); err != nil {
		return err
	}

	res := ArchiveResponse{Prompt: containers.ArchivePrompt}
	if !body.Confirm {
		return c.JSON(res)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// The list is mounted after the update, so the refreshed rows come from one fetch
	list := containers.NewPropertyList(h.Store)
	archived, err := list.Archive(ctx, id, containers.Answer(true))
	if err != nil {
		return err
	}
	list.Mount(ctx)

	res.Archived = archived
	log.Printf("Property %s archived by %s", id, actor(ctx))
	view := views.RenderPropertyList(list.Snapshot(), views.FilterAll, views.FullAccess)
	res.View = &view
	return c.JSON(res)
}

// mountDetail loads the property named by :id, nil when there is no such property
func (h *Handler) mountDetail(ctx context.Context, c *fiber.Ctx) *containers.PropertyDetail {
	id, _ := notFoundID(c)
	detail := containers.NewPropertyDetail(h.Store, id)
	detail.Mount(ctx)

	if detail.Snapshot().State == containers.DetailNotFound {
		return nil
	}
	return detail
}
