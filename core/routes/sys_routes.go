package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/classifier"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/controllers"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/repositories"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/services"
)

func SetupSysRoutes(rg *gin.RouterGroup, clf classifier.Classifier, modelLoaded, degraded bool) {
	repo := repositories.NewSysRepo()
	svc := services.NewSysSvc(repo, clf, modelLoaded, degraded)
	ctrl := controllers.NewSysCtrl(svc)

	rg.GET("/health", ctrl.Health)

	sysGroup := rg.Group("/system")
	{
		sysGroup.GET("/info", ctrl.GetInfo)
	}
}
