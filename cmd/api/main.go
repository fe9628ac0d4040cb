package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/config"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/classifier"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/routes"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/services"
)

func main() {
	cfg := config.Load()

	clf, cleanup, modelLoaded, degraded := buildClassifier(cfg.ModelPath)
	defer cleanup()

	router := gin.Default()
	router.MaxMultipartMemory = services.MaxUploadBytes
	router.Use(cors.Default())

	router.StaticFile("/", "./web/index.html")

	api := router.Group("/api")

	routes.SetupSysRoutes(api, clf, modelLoaded, degraded)
	routes.SetupPredictRoutes(api, clf, cfg.UploadDir)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Classifier runtime: %s", clf.Name())

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildClassifier loads the trained ONNX model when the configured
// file exists, and otherwise falls back to the demo classifier. The
// returned flags feed the health endpoint: degraded means a model file
// was there but could not be loaded.
func buildClassifier(modelPath string) (classifier.Classifier, func(), bool, bool) {
	if _, err := os.Stat(modelPath); err != nil {
		log.Println("No trained model found, running in demo mode (pseudo-random predictions)")
		return classifier.NewDemo(), func() {}, false, false
	}

	log.Printf("Loading model from: %s", modelPath)

	onnx, err := classifier.NewONNX(modelPath)
	if err != nil {
		log.Printf("[Model] Failed to load %s: %v", modelPath, err)
		log.Println("[Model] Falling back to demo mode (pseudo-random predictions)")
		return classifier.NewDemo(), func() {}, false, true
	}

	return onnx, onnx.Close, true, false
}
