package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/classifier"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/controllers"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/repositories"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/services"
)

// SetupPredictRoutes wires the prediction pipeline. The classifier is
// created once at startup and injected here; request handling never
// mutates it.
func SetupPredictRoutes(rg *gin.RouterGroup, clf classifier.Classifier, uploadDir string) {
	repo := repositories.NewUploadRepo(uploadDir)
	svc := services.NewPredictSvc(clf)
	ctrl := controllers.NewPredictCtrl(svc, repo)

	rg.POST("/predict", ctrl.Predict)
}
