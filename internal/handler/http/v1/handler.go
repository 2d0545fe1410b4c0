package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/igloo_sync/internal/config"
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/shenikar/igloo_sync/internal/position"
	"github.com/shenikar/igloo_sync/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	syncService service.SyncService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(syncService service.SyncService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		syncService: syncService,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// bindAndValidate разбирает JSON тело и проверяет его тегами validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		status, message = http.StatusNotFound, "member not found"
	case errors.Is(err, service.ErrRuleNotFound):
		status, message = http.StatusNotFound, "automation not found"
	case errors.Is(err, service.ErrInvalidFamilyCode),
		errors.Is(err, service.ErrInvalidRule),
		errors.Is(err, service.ErrInvalidReportKind),
		errors.Is(err, position.ErrInvalidFix):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, position.ErrStaleFix), errors.Is(err, position.ErrNotTracking):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrSensorUnsupported):
		status, message = http.StatusNotImplemented, "positioning is not supported"
	case errors.Is(err, position.ErrSensorBusy), errors.Is(err, service.ErrNotRunning):
		status, message = http.StatusServiceUnavailable, err.Error()
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": message})
}

// @Summary Get family state
// @Description Get the family id, name, members and automations of this instance. Requires API key.
// @Tags Family
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.GroupState
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /family [get]
func (h *Handler) getFamily(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.Family())
}

// @Summary Create a new family
// @Description Generate a new family code and move this instance to its sync channel. Requires API key.
// @Tags Family
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} FamilyCodeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /family/create [post]
func (h *Handler) createFamily(c *gin.Context) {
	log := h.logger.WithField("method", "createFamily")

	code, err := h.syncService.CreateFamily(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, FamilyCodeResponse{FamilyID: code})
}

// @Summary Join a family
// @Description Join an existing family by its invitation code. Requires API key.
// @Tags Family
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body JoinFamilyRequest true "Family code"
// @Success 200 {object} FamilyCodeResponse
// @Failure 400 {object} map[string]string "Invalid request body or family code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /family/join [post]
func (h *Handler) joinFamily(c *gin.Context) {
	var input JoinFamilyRequest
	log := h.logger.WithField("method", "joinFamily")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.syncService.JoinFamily(c.Request.Context(), input.Code); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, FamilyCodeResponse{FamilyID: h.syncService.Family().FamilyID})
}

// @Summary List members
// @Description Get all known family members in join order. Requires API key.
// @Tags Members
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Member
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /members [get]
func (h *Handler) listMembers(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.Members())
}

// @Summary Get member by ID
// @Description Get a single member. The local member is "me". Requires API key.
// @Tags Members
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Member ID"
// @Success 200 {object} models.Member
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Member not found"
// @Router /members/{id} [get]
func (h *Handler) getMember(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getMember").WithField("id", id)

	member, err := h.syncService.Member(id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary Submit a position fix
// @Description Push a position reading of this device into the tracker. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param fix body FixRequest true "Position fix"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Tracking inactive or cached fix"
// @Failure 501 {object} map[string]string "Positioning not supported"
// @Router /location/fix [post]
func (h *Handler) submitFix(c *gin.Context) {
	var input FixRequest
	log := h.logger.WithField("method", "submitFix")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.syncService.SubmitFix(c.Request.Context(), DTOToFix(input)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Report a sensor failure
// @Description Report a positioning failure observed by the device. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param error body SensorErrorRequest true "Sensor failure"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Tracking inactive"
// @Router /location/error [post]
func (h *Handler) reportSensorError(c *gin.Context) {
	var input SensorErrorRequest
	log := h.logger.WithField("method", "reportSensorError")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	kind, _ := position.ParseErrorKind(input.Kind)
	if err := h.syncService.ReportSensorError(c.Request.Context(), kind); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get tracking status
// @Description Get whether position tracking is active and the last sensor error. Requires API key.
// @Tags Tracking
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} TrackingStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /tracking/status [get]
func (h *Handler) trackingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToTrackingStatusResponse(h.syncService.TrackingStatus()))
}

// @Summary Start tracking
// @Description Start or restart position tracking. Requires API key.
// @Tags Tracking
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} TrackingStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 501 {object} map[string]string "Positioning not supported"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/start [post]
func (h *Handler) startTracking(c *gin.Context) {
	log := h.logger.WithField("method", "startTracking")

	if err := h.syncService.StartTracking(c.Request.Context()); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToTrackingStatusResponse(h.syncService.TrackingStatus()))
}

// @Summary Stop tracking
// @Description Release the position sensor. Requires API key.
// @Tags Tracking
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /tracking/stop [post]
func (h *Handler) stopTracking(c *gin.Context) {
	h.syncService.StopTracking(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary List activity reports
// @Description Get the newest activity reports, newest first. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.ActivityReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.Reports())
}

// @Summary Broadcast a report
// @Description Send a manual report from the local member to the family. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body BroadcastRequest true "Report type"
// @Success 201 {object} models.ActivityReport
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /reports [post]
func (h *Handler) broadcast(c *gin.Context) {
	var input BroadcastRequest
	log := h.logger.WithField("method", "broadcast")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	report, err := h.syncService.Broadcast(c.Request.Context(), models.ReportKind(input.Type))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// @Summary List automations
// @Description Get all geofence rules of the family. Requires API key.
// @Tags Automations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.GeofenceRule
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /automations [get]
func (h *Handler) listAutomations(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.Automations())
}

// @Summary Create an automation
// @Description Create a geofence rule and replicate it to the family. Requires API key.
// @Tags Automations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param rule body CreateAutomationRequest true "Geofence rule"
// @Success 201 {object} models.GeofenceRule
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /automations [post]
func (h *Handler) createAutomation(c *gin.Context) {
	var input CreateAutomationRequest
	log := h.logger.WithField("method", "createAutomation")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	rule, err := h.syncService.AddAutomation(c.Request.Context(), DTOToRuleModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// @Summary Toggle an automation
// @Description Enable or disable a geofence rule. Requires API key.
// @Tags Automations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Rule ID"
// @Success 200 {object} models.GeofenceRule
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Automation not found"
// @Router /automations/{id}/toggle [post]
func (h *Handler) toggleAutomation(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "toggleAutomation").WithField("id", id)

	rule, err := h.syncService.ToggleAutomation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// @Summary Toggle a member in an automation selector
// @Description Add or remove a member from the trigger or receiver set. "all" resets the set. Requires API key.
// @Tags Automations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Rule ID"
// @Param request body ToggleAutomationMemberRequest true "Selector change"
// @Success 200 {object} models.GeofenceRule
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Automation or member not found"
// @Router /automations/{id}/members [post]
func (h *Handler) toggleAutomationMember(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "toggleAutomationMember").WithField("id", id)

	var input ToggleAutomationMemberRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	rule, err := h.syncService.ToggleAutomationMember(c.Request.Context(), id, models.SelectorTarget(input.Target), input.MemberID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// @Summary Delete an automation
// @Description Delete a geofence rule and replicate the change. Requires API key.
// @Tags Automations
// @Security ApiKeyAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Automation not found"
// @Router /automations/{id} [delete]
func (h *Handler) deleteAutomation(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteAutomation").WithField("id", id)

	if err := h.syncService.DeleteAutomation(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update profile
// @Description Change the name or icon of the local member. Requires API key.
// @Tags Members
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body UpdateProfileRequest true "Profile"
// @Success 200 {object} models.Member
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input UpdateProfileRequest
	log := h.logger.WithField("method", "updateProfile")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	member, err := h.syncService.UpdateProfile(c.Request.Context(), input.Name, input.Icon)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary Get palette
// @Description Get the stored UI palette as saved. Requires API key.
// @Tags Settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Success 204 "No palette stored"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/palette [get]
func (h *Handler) getPalette(c *gin.Context) {
	log := h.logger.WithField("method", "getPalette")

	palette, err := h.syncService.Palette(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if palette == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", palette)
}

// @Summary Save palette
// @Description Store the UI palette. The body is any JSON document and is kept as is. Requires API key.
// @Tags Settings
// @Accept json
// @Security ApiKeyAuth
// @Param palette body object true "Palette"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/palette [put]
func (h *Handler) setPalette(c *gin.Context) {
	log := h.logger.WithField("method", "setPalette")

	raw, err := c.GetRawData()
	if err != nil || !json.Valid(raw) {
		log.WithError(err).Warn("Invalid palette body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.syncService.SetPalette(c.Request.Context(), json.RawMessage(raw)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get member statistics
// @Description Get the count of members whose position was seen in the stats window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.syncService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{ActiveMembers: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
