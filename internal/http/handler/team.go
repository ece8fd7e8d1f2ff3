package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/http/middleware"
	"docshare/internal/service"
)

// ListTeams returns the teams the authenticated caller belongs to.
func ListTeams(teamSvc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teams, err := teamSvc.List(c.UserContext(), middleware.UserID(c))
		if err != nil {
			logHandlerError(c, "team_list_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "Failed to list teams")
		}
		return c.JSON(teams)
	}
}

type createTeamBody struct {
	Team string `json:"team"`
}

// CreateTeam creates a team from {team: name}; the caller becomes its first
// member.
func CreateTeam(teamSvc service.TeamService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body createTeamBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		team, err := teamSvc.Create(c.UserContext(), body.Team, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, service.ErrTeamNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "Team name is required")
			}
			logHandlerError(c, "team_create_failed", err)
			return writeError(c, fiber.StatusInternalServerError, "Failed to create team")
		}
		return c.Status(fiber.StatusCreated).JSON(team)
	}
}
