package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_review_v1_202601/internal/api/dto"
	"shop_review_v1_202601/internal/service"
)

// ==================== ShopController 商铺控制器 ====================

// ShopController 商铺控制器
type ShopController struct {
	shopService *service.ShopService
}

// NewShopController 创建商铺控制器
func NewShopController(shopService *service.ShopService) *ShopController {
	return &ShopController{shopService: shopService}
}

// GetByID 查询商铺详情
// @Summary 查询商铺详情
// @Tags Shop
// @Produce json
// @Param id path int true "商铺 ID"
// @Success 200 {object} dto.Result
// @Router /shop/{id} [get]
func (c *ShopController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.Fail("商铺 ID 非法"))
		return
	}

	shop, err := c.shopService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.Fail(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.OkWithData(shop))
}

// ListByType 按类型分页浏览商铺
// @Summary 按类型分页浏览商铺
// @Tags Shop
// @Produce json
// @Param typeId query int true "类型 ID"
// @Param current query int false "页码，默认 1"
// @Success 200 {object} dto.Result
// @Router /shop/of/type [get]
func (c *ShopController) ListByType(ctx *gin.Context) {
	typeID, err := strconv.ParseInt(ctx.Query("typeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.Fail("类型 ID 非法"))
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("current", "1"))

	shops, total, err := c.shopService.ListByType(ctx.Request.Context(), typeID, page, 10)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.Fail(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.OkWithList(shops, total))
}
