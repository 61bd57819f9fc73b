package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"framecraft-backend/internal/config"
	"framecraft-backend/internal/logger"
	"framecraft-backend/internal/middleware"
	"framecraft-backend/internal/models"
)

const adminSessionTTL = 12 * time.Hour

type AuthHandler struct {
	cfg *config.Config
	log *logger.Logger
}

func NewAuthHandler(cfg *config.Config, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
		log: log,
	}
}

// Login godoc
// @Summary     Admin login
// @Description Verifies the shared admin password server-side and issues a signed session token for the admin routes.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Admin password"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if !h.passwordMatches(req.Password) {
		h.log.Warn("AUTH", "failed admin login attempt from %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid password"})
		return
	}

	token, expiresAt, err := middleware.IssueAdminToken(h.cfg.AdminJWTSecret, adminSessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue session token"})
		return
	}

	h.log.Info("AUTH", "admin session issued, expires %s", expiresAt.Format(time.RFC3339))
	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

func (h *AuthHandler) passwordMatches(password string) bool {
	if h.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	if h.cfg.AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(h.cfg.AdminPassword), []byte(password)) == 1
}
