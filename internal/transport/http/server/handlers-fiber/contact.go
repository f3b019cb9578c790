package handlers_fiber

import (
	"net/http"

	"contact-directory/internal/mapper"
	api "contact-directory/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetContacts lists all contacts with their current time and teams.
func (h *Handler) GetContacts(c *fiber.Ctx) error {
	contacts, err := h.uc.ListContacts(c.Context())
	if err != nil {
		h.log.Errorw("failed to list contacts", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ContactList{Contacts: mapper.ToOAPIContactList(contacts)})
}

// GetContactsId returns contact by id.
func (h *Handler) GetContactsId(c *fiber.Ctx, id string) error {
	contact, err := h.uc.Contact(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ContactEnvelope{Contact: mapper.ToOAPIContact(*contact)})
}

// PostContacts validates the phone number and creates a contact.
func (h *Handler) PostContacts(c *fiber.Ctx) error {
	var body api.PostContactsJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	contact, err := h.uc.CreateContact(c.Context(), body.Name, body.Phone, body.Teams)
	if err != nil {
		h.log.Infow("failed to create contact", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(api.ContactEnvelope{Contact: mapper.ToOAPIContact(*contact)})
}

// PatchContactsId updates name and/or phone of a contact.
func (h *Handler) PatchContactsId(c *fiber.Ctx, id string) error {
	var body api.PatchContactsIdJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	contact, err := h.uc.UpdateContact(c.Context(), id, mapper.FromOAPIContactPatch(body))
	if err != nil {
		h.log.Infow("failed to update contact", "contact_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ContactEnvelope{Contact: mapper.ToOAPIContact(*contact)})
}

// DeleteContactsId deletes a contact.
func (h *Handler) DeleteContactsId(c *fiber.Ctx, id string) error {
	deleted, err := h.uc.DeleteContact(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.DeleteResult{Deleted: deleted})
}
