package initialization

import (
	"fmt"

	"shiftHub/api"
	"shiftHub/internal/global"

	"github.com/gin-gonic/gin"
)

// InitRoute 注册路由并启动HTTP服务
func InitRoute() {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	root := engine.Group("/api/sh")
	{
		api.UserController.Public(root)
		api.UserController.API(root)
		api.TenantController.API(root)
		api.DepartmentController.API(root)
		api.GroupController.API(root)
		api.AssignmentController.API(root)
		api.OrgTreeController.API(root)
	}

	addr := ":" + global.Config.Server.Port
	if err := engine.Run(addr); err != nil {
		panic(fmt.Sprintf("HTTP服务启动失败: %s", err.Error()))
	}
}
