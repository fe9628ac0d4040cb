package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/dtos"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/repositories"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/services"
)

type PredictCtrl struct {
	svc     services.PredictSvc
	uploads repositories.UploadRepo
}

func NewPredictCtrl(s services.PredictSvc, u repositories.UploadRepo) *PredictCtrl {
	return &PredictCtrl{svc: s, uploads: u}
}

func (ctrl *PredictCtrl) Predict(c *gin.Context) {
	// Reject absurd bodies before buffering the multipart form. The
	// per-file limit is enforced again below; the slack covers
	// multipart framing overhead.
	if c.Request.ContentLength > services.MaxUploadBytes+(1<<20) {
		c.JSON(http.StatusRequestEntityTooLarge, dtos.ErrorRes{
			Error: "File too large. Maximum upload size is 16 MB",
		})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dtos.ErrorRes{Error: "No image file provided"})
		return
	}

	if err := ctrl.svc.ValidateUpload(file.Filename, file.Header.Get("Content-Type"), file.Size); err != nil {
		c.JSON(statusFor(err), dtos.ErrorRes{Error: err.Error()})
		return
	}

	path, err := ctrl.uploads.Save(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dtos.ErrorRes{Error: "Failed to save uploaded file"})
		return
	}
	defer ctrl.uploads.Remove(path)

	result, err := ctrl.svc.Predict(c.Request.Context(), path)
	if err != nil {
		c.JSON(statusFor(err), dtos.ErrorRes{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos.PredictRes{Success: true, Result: &result})
}

// statusFor maps service error kinds onto HTTP statuses. Anything that
// is not a PredictError counts as an internal failure.
func statusFor(err error) int {
	var perr *services.PredictError
	if !errors.As(err, &perr) {
		return http.StatusInternalServerError
	}

	switch perr.Kind {
	case services.ErrKindValidation, services.ErrKindDecode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
