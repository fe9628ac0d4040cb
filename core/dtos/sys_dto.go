package dtos

type HealthRes struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

type SysInfoRes struct {
	DeviceName string `json:"device_name"`
	Runtime    string `json:"runtime"`
}
