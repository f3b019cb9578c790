package handlers_fiber

import (
	"net/http"

	"contact-directory/internal/mapper"
	api "contact-directory/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetTeams lists all teams.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.TeamList{Teams: mapper.ToOAPITeamList(teams)})
}

// GetTeamsId returns team by id.
func (h *Handler) GetTeamsId(c *fiber.Ctx, id string) error {
	team, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.TeamEnvelope{Team: mapper.ToOAPITeam(*team)})
}

// PostTeams creates a team.
func (h *Handler) PostTeams(c *fiber.Ctx) error {
	var body api.PostTeamsJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	team, err := h.uc.CreateTeam(c.Context(), body.Name)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(api.TeamEnvelope{Team: mapper.ToOAPITeam(*team)})
}

// DeleteTeamsId deletes a team and detaches it from contacts.
func (h *Handler) DeleteTeamsId(c *fiber.Ctx, id string) error {
	deleted, err := h.uc.DeleteTeam(c.Context(), id)
	if err != nil {
		h.log.Errorw("failed to delete team", "team_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.DeleteResult{Deleted: deleted})
}
