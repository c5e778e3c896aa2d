package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "shop_review_v1_202601/docs"
	"shop_review_v1_202601/internal/controller"
	"shop_review_v1_202601/internal/middleware"
	"shop_review_v1_202601/internal/session"
)

// Controllers 控制器集合
type Controllers struct {
	User     *controller.UserController
	Shop     *controller.ShopController
	ShopType *controller.ShopTypeController
	Upload   *controller.UploadController
}

// InitRoutes 注册所有路由
// 路由分两类：公开路由（商铺浏览、分类、上传、验证码、登录）不强制登录，
// 但带有效 Token 时仍会填充用户上下文；其余路由要求已登录，否则 401
func InitRoutes(r *gin.Engine, sessions *session.Store, ctls *Controllers) {
	// Token 刷新必须是第一个阶段，保证下游做权限判断前上下文已就绪
	r.Use(middleware.RefreshToken(sessions))
	r.Use(middleware.AccessLog())

	// Swagger 文档路由
	// 访问 http://localhost:8081/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 公开路由
	user := r.Group("/user")
	{
		// POST /user/code?phone=
		user.POST("/code", ctls.User.SendCode)
		// POST /user/login
		user.POST("/login", ctls.User.Login)
		// GET /user/me 需要登录
		user.GET("/me", middleware.LoginRequired(), ctls.User.Me)
	}

	shop := r.Group("/shop")
	{
		// GET /shop/of/type?typeId=&current=
		shop.GET("/of/type", ctls.Shop.ListByType)
		// GET /shop/:id
		shop.GET("/:id", ctls.Shop.GetByID)
	}

	shopType := r.Group("/shop-type")
	{
		// GET /shop-type/list
		shopType.GET("/list", ctls.ShopType.List)
	}

	upload := r.Group("/upload")
	{
		// POST /upload/blog
		upload.POST("/blog", ctls.Upload.UploadImage)
		// GET /upload/blog/delete?name=
		upload.GET("/blog/delete", ctls.Upload.DeleteImage)
	}
}
