// controllers/context.go
package controllers

import (
	"net/http"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireVenueID pulls the authenticated venue id out of the request
// context. Responds and returns false when the claim is missing or garbled.
func requireVenueID(c *gin.Context) (uuid.UUID, bool) {
	venueID, exists := c.Get("venueId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Venue ID not found in context")
		return uuid.Nil, false
	}
	venueUUID, err := uuid.Parse(venueID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid venue ID format")
		return uuid.Nil, false
	}
	return venueUUID, true
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// parseIDParam parses the :id path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" ID format")
		return uuid.Nil, false
	}
	return id, true
}
