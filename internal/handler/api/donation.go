package api

import (
	"net/http"
	"strconv"

	resdto "giveledger/internal/handler/dto/response"
	"giveledger/internal/handler/httperr"
	"giveledger/internal/infra"
	"giveledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	q queries.DonationQueries
}

func NewDonationHandler(q queries.DonationQueries) *DonationHandler {
	return &DonationHandler{q: q}
}

// @Summary List recent donations
// @Description List the most recently recorded donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} resdto.DonationListResponse
// @Failure 401 {object} map[string]string
// @Router /donations [get]
func (h *DonationHandler) List(c *gin.Context) {
	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = int32(parsed)
	}

	items, err := h.q.ListRecent(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list donations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDonationListItems(items))
}

// @Summary Get donation
// @Description Get a donation by its provider session id
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Provider session id"
// @Success 200 {object} resdto.DonationResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /donations/{sessionId} [get]
func (h *DonationHandler) Get(c *gin.Context) {
	view, err := h.q.GetBySessionID(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Donation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load donation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDonationView(view))
}

// @Summary List coupons for donation
// @Description List the coupon batch issued for a donation
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Provider session id"
// @Success 200 {array} resdto.CouponResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /donations/{sessionId}/coupons [get]
func (h *DonationHandler) ListCoupons(c *gin.Context) {
	views, err := h.q.CouponsForDonation(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Donation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list coupons", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponViews(views))
}
