package handlers

import (
	"net/http"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/controller"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/gin-gonic/gin"
)

type registerUserRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

func (a *API) registerUser(c *gin.Context) {
	var req registerUserRequest
	if !a.bindJSON(c, &req) {
		return
	}

	user, err := a.services.Users.Register(c.Request.Context(), controller.RegisterUser{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
	})
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (a *API) getMe(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (a *API) updateMe(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	var req updateUserRequest
	if !a.bindJSON(c, &req) {
		return
	}

	updated, err := a.services.Users.Update(c.Request.Context(), user, &models.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(updated))
}

type changePasswordRequest struct {
	OldPassword    string `json:"old_password"`
	NewPassword    string `json:"new_password"`
	RepeatPassword string `json:"repeat_password"`
}

func (a *API) changeMyPassword(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	var req changePasswordRequest
	if !a.bindJSON(c, &req) {
		return
	}

	err = a.services.Users.ChangePassword(c.Request.Context(), user,
		req.OldPassword, req.NewPassword, req.RepeatPassword)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
