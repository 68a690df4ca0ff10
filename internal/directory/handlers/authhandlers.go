package handlers

import (
	"net/http"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) login(c *gin.Context) {
	var req loginRequest
	if !a.bindJSON(c, &req) {
		return
	}

	pair, err := a.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// refreshToken expects the refresh token as the bearer credential and
// returns a fresh access token.
func (a *API) refreshToken(c *gin.Context) {
	tokenString, err := auth.ExtractBearer(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	accessToken, err := a.services.Auth.Refresh(c.Request.Context(), tokenString)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}
