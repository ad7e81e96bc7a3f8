package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to assets and liabilities.
type accountHandler struct {
	assetService     portssvc.AssetSvcFacade
	liabilityService portssvc.LiabilitySvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AssetSvcFacade, ls portssvc.LiabilitySvcFacade) *accountHandler {
	return &accountHandler{
		assetService:     as,
		liabilityService: ls,
	}
}

// registerAccountRoutes registers routes related to assets and liabilities.
func registerAccountRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade, liabilityService portssvc.LiabilitySvcFacade) {
	h := newAccountHandler(assetService, liabilityService)

	assets := rg.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.POST("", h.createAsset)
		assets.GET("/primary", h.getPrimaryAsset)
		assets.GET("/:assetID", h.getAsset)
		assets.PATCH("/:assetID", h.updateAsset)
		assets.POST("/:assetID/primary", h.setPrimaryAsset)
	}

	liabilities := rg.Group("/liabilities")
	{
		liabilities.GET("", h.listLiabilities)
		liabilities.POST("", h.createLiability)
		liabilities.GET("/:liabilityID", h.getLiability)
		liabilities.PATCH("/:liabilityID", h.updateLiability)
	}
}

// listAssets godoc
// @Summary List assets
// @Description Lists all assets, primary first, then by name
// @Tags assets
// @Produce json
// @Success 200 {array} dto.AssetResponse
// @Failure 500 {object} errorResponse
// @Router /expense/assets [get]
func (h *accountHandler) listAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list assets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}

// createAsset godoc
// @Summary Create an asset
// @Description Creates an asset. is_primary=true makes it the single primary asset.
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /expense/assets [post]
func (h *accountHandler) createAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create asset")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Asset created", slog.Int64("asset_id", asset.ID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// getPrimaryAsset godoc
// @Summary Get the primary asset
// @Tags assets
// @Produce json
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} errorResponse "No primary asset"
// @Router /expense/assets/primary [get]
func (h *accountHandler) getPrimaryAsset(c *gin.Context) {
	asset, err := h.assetService.GetPrimaryAsset(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get primary asset")
		return
	}
	if asset == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "No primary asset"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// getAsset godoc
// @Summary Get an asset by ID
// @Tags assets
// @Produce json
// @Param assetID path int true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} errorResponse
// @Router /expense/assets/{assetID} [get]
func (h *accountHandler) getAsset(c *gin.Context) {
	assetID, ok := idParam(c, "assetID")
	if !ok {
		return
	}
	asset, err := h.assetService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, err, "Failed to get asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Partial update. Fields absent from the body are left unchanged.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path int true "Asset ID"
// @Param asset body dto.UpdateAssetRequest true "Fields to change"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /expense/assets/{assetID} [patch]
func (h *accountHandler) updateAsset(c *gin.Context) {
	assetID, ok := idParam(c, "assetID")
	if !ok {
		return
	}
	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), assetID, req)
	if err != nil {
		respondError(c, err, "Failed to update asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// setPrimaryAsset godoc
// @Summary Make an asset the primary asset
// @Tags assets
// @Produce json
// @Param assetID path int true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} errorResponse
// @Router /expense/assets/{assetID}/primary [post]
func (h *accountHandler) setPrimaryAsset(c *gin.Context) {
	assetID, ok := idParam(c, "assetID")
	if !ok {
		return
	}
	asset, err := h.assetService.SetPrimaryAsset(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, err, "Failed to set primary asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// listLiabilities godoc
// @Summary List liabilities
// @Tags liabilities
// @Produce json
// @Success 200 {array} dto.LiabilityResponse
// @Router /expense/liabilities [get]
func (h *accountHandler) listLiabilities(c *gin.Context) {
	items, err := h.liabilityService.ListLiabilities(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list liabilities")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLiabilityResponse(items))
}

// createLiability godoc
// @Summary Create a liability
// @Tags liabilities
// @Accept json
// @Produce json
// @Param liability body dto.CreateLiabilityRequest true "Liability details"
// @Success 201 {object} dto.LiabilityResponse
// @Failure 400 {object} errorResponse
// @Router /expense/liabilities [post]
func (h *accountHandler) createLiability(c *gin.Context) {
	var req dto.CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	liability, err := h.liabilityService.CreateLiability(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create liability")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLiabilityResponse(liability))
}

// getLiability godoc
// @Summary Get a liability by ID
// @Tags liabilities
// @Produce json
// @Param liabilityID path int true "Liability ID"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 404 {object} errorResponse
// @Router /expense/liabilities/{liabilityID} [get]
func (h *accountHandler) getLiability(c *gin.Context) {
	liabilityID, ok := idParam(c, "liabilityID")
	if !ok {
		return
	}
	liability, err := h.liabilityService.GetLiabilityByID(c.Request.Context(), liabilityID)
	if err != nil {
		respondError(c, err, "Failed to get liability")
		return
	}
	c.JSON(http.StatusOK, dto.ToLiabilityResponse(liability))
}

// updateLiability godoc
// @Summary Update a liability
// @Description Partial update. Fields absent from the body are left unchanged.
// @Tags liabilities
// @Accept json
// @Produce json
// @Param liabilityID path int true "Liability ID"
// @Param liability body dto.UpdateLiabilityRequest true "Fields to change"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /expense/liabilities/{liabilityID} [patch]
func (h *accountHandler) updateLiability(c *gin.Context) {
	liabilityID, ok := idParam(c, "liabilityID")
	if !ok {
		return
	}
	var req dto.UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	liability, err := h.liabilityService.UpdateLiability(c.Request.Context(), liabilityID, req)
	if err != nil {
		respondError(c, err, "Failed to update liability")
		return
	}
	c.JSON(http.StatusOK, dto.ToLiabilityResponse(liability))
}
