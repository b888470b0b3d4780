package controllers

import (
	"net/http"

	"backend/core/services"

	"github.com/gin-gonic/gin"
)

type SysCtrl struct {
	svc services.SysSvc
}

func NewSysCtrl(s services.SysSvc) *SysCtrl {
	return &SysCtrl{svc: s}
}

func (ctrl *SysCtrl) GetHealth(c *gin.Context) {
	res := ctrl.svc.FetchHealth()
	c.JSON(http.StatusOK, res)
}

func (ctrl *SysCtrl) GetRoot(c *gin.Context) {
	res := ctrl.svc.FetchWelcome()
	c.JSON(http.StatusOK, res)
}
