// internal/router/router.go
package router

import (
	"trail-comments/internal/feed"
	"trail-comments/internal/handler/http"

	"github.com/labstack/echo/v4"
)

func NewRouter(e *echo.Echo, svc feed.FeedService) {
	trl := http.NewTrailHandler(svc)
	cmt := http.NewCommentsHandler(svc)

	e.GET("/trail/today", trl.GetToday)
	e.GET("/trail/comments", cmt.ListComments)
	e.POST("/trail/comments", cmt.CreateComment)
}
