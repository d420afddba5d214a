package server

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ja-he/lunadash/internal/control"
)

var templateFuncs = template.FuncMap{
	"percent": func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
}

type pageData struct {
	View control.View
}

func (s *Server) page(ctx *gin.Context) {
	view, err := s.view(ctx)
	if err != nil {
		ctx.HTML(err.Code, "error.html", gin.H{"Code": err.Code, "Message": err.Message})
		return
	}
	ctx.HTML(http.StatusOK, "dashboard.html", pageData{View: view})
}
