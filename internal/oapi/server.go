package oapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /contacts)
	GetContacts(c *fiber.Ctx) error
	// (POST /contacts)
	PostContacts(c *fiber.Ctx) error
	// (GET /contacts/{id})
	GetContactsId(c *fiber.Ctx, id string) error
	// (PATCH /contacts/{id})
	PatchContactsId(c *fiber.Ctx, id string) error
	// (DELETE /contacts/{id})
	DeleteContactsId(c *fiber.Ctx, id string) error
	// (GET /teams)
	GetTeams(c *fiber.Ctx) error
	// (POST /teams)
	PostTeams(c *fiber.Ctx) error
	// (GET /teams/{id})
	GetTeamsId(c *fiber.Ctx, id string) error
	// (DELETE /teams/{id})
	DeleteTeamsId(c *fiber.Ctx, id string) error
}

// ServerInterfaceWrapper extracts path parameters before calling the handler.
// Parameters are copied out of the request buffer, which fiber reuses.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetContacts(c *fiber.Ctx) error {
	return w.Handler.GetContacts(c)
}

func (w *ServerInterfaceWrapper) PostContacts(c *fiber.Ctx) error {
	return w.Handler.PostContacts(c)
}

func (w *ServerInterfaceWrapper) GetContactsId(c *fiber.Ctx) error {
	return w.Handler.GetContactsId(c, utils.CopyString(c.Params("id")))
}

func (w *ServerInterfaceWrapper) PatchContactsId(c *fiber.Ctx) error {
	return w.Handler.PatchContactsId(c, utils.CopyString(c.Params("id")))
}

func (w *ServerInterfaceWrapper) DeleteContactsId(c *fiber.Ctx) error {
	return w.Handler.DeleteContactsId(c, utils.CopyString(c.Params("id")))
}

func (w *ServerInterfaceWrapper) GetTeams(c *fiber.Ctx) error {
	return w.Handler.GetTeams(c)
}

func (w *ServerInterfaceWrapper) PostTeams(c *fiber.Ctx) error {
	return w.Handler.PostTeams(c)
}

func (w *ServerInterfaceWrapper) GetTeamsId(c *fiber.Ctx) error {
	return w.Handler.GetTeamsId(c, utils.CopyString(c.Params("id")))
}

func (w *ServerInterfaceWrapper) DeleteTeamsId(c *fiber.Ctx) error {
	return w.Handler.DeleteTeamsId(c, utils.CopyString(c.Params("id")))
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.Get("/contacts", wrapper.GetContacts)
	router.Post("/contacts", wrapper.PostContacts)
	router.Get("/contacts/:id", wrapper.GetContactsId)
	router.Patch("/contacts/:id", wrapper.PatchContactsId)
	router.Delete("/contacts/:id", wrapper.DeleteContactsId)

	router.Get("/teams", wrapper.GetTeams)
	router.Post("/teams", wrapper.PostTeams)
	router.Get("/teams/:id", wrapper.GetTeamsId)
	router.Delete("/teams/:id", wrapper.DeleteTeamsId)
}
