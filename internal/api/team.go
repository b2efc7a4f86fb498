package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lalith-99/taskflow/internal/store"
)

type TeamHandler struct {
	teams  store.TeamStore
	users  store.UserStore
	logger *zap.Logger
}

func NewTeamHandler(teams store.TeamStore, users store.UserStore, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{teams: teams, users: users, logger: logger}
}

type createTeamRequest struct {
	Name     string `json:"name"`
	LeaderID string `json:"leader_id"`
}

// Create handles POST /api/teams
//
// LeaderID is taken as-is, no lookup against the users collection. An
// empty leader still ends up seeded in the members list.
func (h *TeamHandler) Create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teams.Create(c.Request.Context(), req.Name, req.LeaderID)
	if err != nil {
		h.logger.Error("failed to create team", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team"})
		return
	}

	c.JSON(http.StatusOK, team)
}

// List handles GET /api/teams?leader_id=
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teams.List(c.Request.Context(), c.Query("leader_id"))
	if err != nil {
		h.logger.Error("failed to list teams", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teams"})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// AddMember handles POST /api/teams/:team_id/members/:user_email
//
// The user is addressed by email, the team by ID, both from the path. The
// user lookup runs first, so an unknown email 404s even when the team is
// also missing.
func (h *TeamHandler) AddMember(c *gin.Context) {
	teamID := c.Param("team_id")
	userEmail := c.Param("user_email")

	user, err := h.users.GetByEmail(c.Request.Context(), userEmail)
	if err != nil {
		h.logger.Error("failed to find user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.teams.AddMember(c.Request.Context(), teamID, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
			return
		}
		h.logger.Error("failed to add member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member added"})
}
