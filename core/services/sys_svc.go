package services

import (
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/classifier"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/dtos"
	"github.com/m-rithik/MRI-Based-Brain-Tumor-Detection-and-Classification-with-Deep-Learning-and-neural-networks/core/repositories"
)

type SysSvc interface {
	Health() dtos.HealthRes
	FetchInfo() dtos.SysInfoRes
}

type sysSvcImpl struct {
	repo repositories.SysRepo
	clf  classifier.Classifier

	// Set at startup. modelLoaded means the trained model is active;
	// degraded means a model file was configured but failed to load
	// and the service fell back to the demo classifier.
	modelLoaded bool
	degraded    bool
}

func NewSysSvc(r repositories.SysRepo, clf classifier.Classifier, modelLoaded, degraded bool) SysSvc {
	return &sysSvcImpl{repo: r, clf: clf, modelLoaded: modelLoaded, degraded: degraded}
}

func (s *sysSvcImpl) Health() dtos.HealthRes {
	status := "healthy"
	if s.degraded {
		status = "degraded"
	}

	return dtos.HealthRes{
		Status:      status,
		ModelLoaded: s.modelLoaded,
	}
}

func (s *sysSvcImpl) FetchInfo() dtos.SysInfoRes {
	info := s.repo.GetDeviceInfo()

	return dtos.SysInfoRes{
		DeviceName: info.CPU + " (" + info.OS + ")",
		Runtime:    s.clf.Name(),
	}
}
