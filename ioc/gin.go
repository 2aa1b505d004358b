package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/woofcourt/internal/judge"
	"github.com/ecodeclub/woofcourt/internal/jury"
	"github.com/ecodeclub/woofcourt/internal/pkg/middleware"
	"github.com/ecodeclub/woofcourt/internal/verdict"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(judgeHdl *judge.Handler,
	verdictHdl *verdict.Handler,
	juryHdl *jury.Handler,
) *egin.Component {
	res := egin.Load("server.web").Build()
	allowedDomain := econf.GetString("cors.domain")
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return allowedDomain != "" && strings.Contains(origin, allowedDomain)
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 全站匿名访问，没有登录态
	judgeHdl.PublicRoutes(res.Engine)
	verdictHdl.PublicRoutes(res.Engine)
	juryHdl.PublicRoutes(res.Engine)
	return res
}
