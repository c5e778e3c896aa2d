package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_review_v1_202601/internal/api/dto"
	"shop_review_v1_202601/internal/service"
)

// ==================== ShopTypeController 商铺类型控制器 ====================

// ShopTypeController 商铺类型控制器
type ShopTypeController struct {
	typeService *service.ShopTypeService
}

// NewShopTypeController 创建商铺类型控制器
func NewShopTypeController(typeService *service.ShopTypeService) *ShopTypeController {
	return &ShopTypeController{typeService: typeService}
}

// List 查询商铺类型列表
// @Summary 查询商铺类型列表（按 sort 升序）
// @Tags ShopType
// @Produce json
// @Success 200 {object} dto.Result
// @Router /shop-type/list [get]
func (c *ShopTypeController) List(ctx *gin.Context) {
	types, err := c.typeService.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusOK, dto.Fail(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.OkWithData(types))
}
