package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"washclub/internal/handler/dto/request"
	"washclub/internal/handler/dto/response"
	"washclub/internal/handler/middleware"
	"washclub/internal/usecase/commands"
	"washclub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CodeHandler struct {
	redemptionCommands commands.RedemptionCommands
	codeQueries        queries.CodeQueries
}

func NewCodeHandler(redemptionCommands commands.RedemptionCommands, codeQueries queries.CodeQueries) *CodeHandler {
	return &CodeHandler{
		redemptionCommands: redemptionCommands,
		codeQueries:        codeQueries,
	}
}

// @Summary Issue verification code
// @Description Issue a single-use verification code for the requested wash type
// @Tags codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.IssueCodeRequest true "Issue code request"
// @Success 201 {object} response.IssueCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /codes [post]
func (h *CodeHandler) IssueCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req request.IssueCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	washType, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid wash type",
		})
		return
	}

	result, err := h.redemptionCommands.IssueCode(c.Request.Context(), userID, washType)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoEntitlement):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No active subscription or purchase covers this wash type",
			})
		case errors.Is(err, commands.ErrQuotaExhausted):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Wash quota for the current period is exhausted",
			})
		case errors.Is(err, commands.ErrCodeGenerationExhausted):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Could not allocate a unique code, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, response.IssueCodeResponse{
		Code:  result.Code,
		QRPNG: base64.StdEncoding.EncodeToString(result.QRPNG),
	})
}

// @Summary List own verification codes
// @Description List the authenticated customer's codes, newest first
// @Tags codes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of codes to return"
// @Success 200 {object} response.CodeListResponse
// @Failure 401 {object} map[string]string
// @Router /codes [get]
func (h *CodeHandler) ListCodes(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	codes, err := h.codeQueries.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response.CodeListResponse{Codes: codes})
}

// @Summary Verify a code
// @Description Look up a code and report whether it is currently redeemable, without changing its state
// @Tags codes
// @Produce json
// @Security BearerAuth
// @Param code path string true "Verification code"
// @Success 200 {object} response.VerifyCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /codes/{code} [get]
func (h *CodeHandler) VerifyCode(c *gin.Context) {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.redemptionCommands.VerifyCode(c.Request.Context(), partnerID, c.Param("code"))
	if err != nil {
		respondRedemptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.VerifyCodeResponse{
		Code:             result.Code,
		Eligible:         result.Eligible,
		IneligibleReason: result.IneligibleReason,
	})
}

// respondRedemptionError maps shared redemption failures onto HTTP statuses.
func respondRedemptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCodeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Verification code not found",
		})
	case errors.Is(err, commands.ErrCodeExpired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Verification code has expired",
		})
	case errors.Is(err, commands.ErrCodeAlreadyUsed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Verification code has already been used",
		})
	case errors.Is(err, commands.ErrOwnershipMismatch):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Redemption was started by a different partner",
		})
	case errors.Is(err, commands.ErrNoEntitlement):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No active subscription or purchase covers this wash type",
		})
	case errors.Is(err, commands.ErrQuotaExhausted):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Wash quota for the current period is exhausted",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid redemption state",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
