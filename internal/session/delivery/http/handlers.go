package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/pkg/response"
)

// SignUp godoc
// @Summary     Register a new account
// @Description Creates an account against the hosted auth service and returns the issued session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, err := h.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		h.l.Errorf(ctx, "provider.SignUp: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Login godoc
// @Summary     Sign in
// @Description Authenticates with email and password, returns the issued session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, err := h.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.l.Errorf(ctx, "provider.SignIn: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Logout godoc
// @Summary     Sign out
// @Description Revokes the caller's session token.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.provider.SignOut(ctx, sc.Token); err != nil {
		// Token revocation failed upstream but local state is cleared.
		h.l.Warnf(ctx, "provider.SignOut: %v", err)
	}

	response.OK(c, nil)
}
