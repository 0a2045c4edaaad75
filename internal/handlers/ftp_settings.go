package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"mockup-catalog-backend/internal/models"
)

type FTPSettingsHandler struct {
	settings FTPSettingsAPI
}

func NewFTPSettingsHandler(settings FTPSettingsAPI) *FTPSettingsHandler {
	return &FTPSettingsHandler{settings: settings}
}

// ListSettings godoc
// @Summary     List FTP settings
// @Description Passwords are never returned
// @Tags        ftp
// @Produce     json
// @Success     200 {object} models.FTPSettingsResponse
// @Router      /ftp-settings [get]
func (h *FTPSettingsHandler) ListSettings(c *gin.Context) {
	if h.settings == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	settings, err := h.settings.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list ftp settings")
		return
	}
	if settings == nil {
		settings = []models.FTPSetting{}
	}
	c.JSON(http.StatusOK, models.FTPSettingsResponse{Settings: settings})
}

// CreateSetting godoc
// @Summary     Save an FTP destination
// @Tags        ftp
// @Accept      json
// @Produce     json
// @Param       request body models.FTPSettingRequest true "Connection details"
// @Success     201 {object} models.FTPSetting
// @Failure     400 {object} models.ErrorResponse
// @Router      /ftp-settings [post]
func (h *FTPSettingsHandler) CreateSetting(c *gin.Context) {
	if h.settings == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	var req models.FTPSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	setting, err := h.settings.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to save ftp setting")
		return
	}
	c.JSON(http.StatusCreated, setting)
}

// UpdateSetting godoc
// @Summary     Update an FTP destination
// @Tags        ftp
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "Setting ID"
// @Param       request body models.FTPSettingRequest true "Connection details"
// @Success     200 {object} models.FTPSetting
// @Failure     404 {object} models.ErrorResponse
// @Router      /ftp-settings/{id} [put]
func (h *FTPSettingsHandler) UpdateSetting(c *gin.Context) {
	if h.settings == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.FTPSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	setting, err := h.settings.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "failed to update ftp setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

// DeleteSetting godoc
// @Summary     Delete an FTP destination
// @Description The default setting can only be removed when it is the last one
// @Tags        ftp
// @Param       id path int true "Setting ID"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Router      /ftp-settings/{id} [delete]
func (h *FTPSettingsHandler) DeleteSetting(c *gin.Context) {
	if h.settings == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.settings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete ftp setting")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetDefault godoc
// @Summary     Make an FTP destination the default
// @Tags        ftp
// @Param       id path int true "Setting ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Router      /ftp-settings/{id}/default [post]
func (h *FTPSettingsHandler) SetDefault(c *gin.Context) {
	if h.settings == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.settings.SetDefault(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to set default ftp setting")
		return
	}
	c.Status(http.StatusNoContent)
}

// TestConnection godoc
// @Summary     Test FTP connection details
// @Description Logs in and lists the working directory. Nothing is saved.
// @Tags        ftp
// @Accept      json
// @Produce     json
// @Param       request body models.FTPSettingRequest true "Connection details"
// @Success     200 {object} models.FTPResultResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /ftp-settings/test [post]
func (h *FTPSettingsHandler) TestConnection(c *gin.Context) {
	if h.settings == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	var req models.FTPSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	result, err := h.settings.Test(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to test ftp connection")
		return
	}
	c.JSON(http.StatusOK, result)
}
