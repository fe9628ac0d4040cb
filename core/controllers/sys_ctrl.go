package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/services"
)

type SysCtrl struct {
	svc services.SysSvc
}

func NewSysCtrl(s services.SysSvc) *SysCtrl {
	return &SysCtrl{svc: s}
}

func (ctrl *SysCtrl) Health(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.svc.Health())
}

func (ctrl *SysCtrl) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.svc.FetchInfo())
}
