package controller

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"shop_review_v1_202601/internal/api/dto"
	"shop_review_v1_202601/pkg/utils"
)

// ==================== UploadController 文件上传控制器 ====================

// UploadController 图片上传，落到本地磁盘
type UploadController struct {
	uploadDir string
}

// NewUploadController 创建上传控制器
func NewUploadController(uploadDir string) *UploadController {
	return &UploadController{uploadDir: uploadDir}
}

// UploadImage 上传图片
// @Summary 上传图片
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param file formData file true "图片文件"
// @Success 200 {object} dto.Result
// @Router /upload/blog [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusOK, dto.Fail("未读取到上传文件"))
		return
	}

	// 随机文件名，按前两位散列到子目录，避免单目录文件过多
	name := utils.SimpleUUID() + filepath.Ext(file.Filename)
	relPath := filepath.Join("blogs", name[0:1], name[1:2], name)
	absPath := filepath.Join(c.uploadDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		ctx.JSON(http.StatusOK, dto.Fail("创建上传目录失败"))
		return
	}
	if err := ctx.SaveUploadedFile(file, absPath); err != nil {
		ctx.JSON(http.StatusOK, dto.Fail("保存文件失败"))
		return
	}

	ctx.JSON(http.StatusOK, dto.OkWithData("/imgs/"+filepath.ToSlash(relPath)))
}

// DeleteImage 删除已上传图片
// @Summary 删除已上传图片
// @Tags Upload
// @Produce json
// @Param name query string true "图片相对路径"
// @Success 200 {object} dto.Result
// @Router /upload/blog/delete [get]
func (c *UploadController) DeleteImage(ctx *gin.Context) {
	name := strings.TrimPrefix(ctx.Query("name"), "/imgs/")
	if name == "" || strings.Contains(name, "..") {
		ctx.JSON(http.StatusOK, dto.Fail("文件名非法"))
		return
	}

	if err := os.Remove(filepath.Join(c.uploadDir, filepath.FromSlash(name))); err != nil && !os.IsNotExist(err) {
		ctx.JSON(http.StatusOK, dto.Fail("删除文件失败"))
		return
	}

	ctx.JSON(http.StatusOK, dto.Ok())
}
