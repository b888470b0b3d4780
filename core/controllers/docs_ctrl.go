package controllers

import (
	"net/http"

	"backend/core/services"

	"github.com/gin-gonic/gin"
)

type DocsCtrl struct {
	svc services.DocsSvc
}

func NewDocsCtrl(s services.DocsSvc) *DocsCtrl {
	return &DocsCtrl{svc: s}
}

func (ctrl *DocsCtrl) GetDocs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(ctrl.svc.RenderPage()))
}

func (ctrl *DocsCtrl) GetOpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.svc.FetchSpec())
}
