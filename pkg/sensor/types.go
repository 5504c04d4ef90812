package sensor

// Moisture is a single reading returned by the sensor service
type Moisture struct {
	Timestamp     int64    `json:"timestamp"`
	MoistureValue float64  `json:"moisture_value"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type actionRequest struct {
	Action string `json:"action"`
}

type motorResponse struct {
	MotorStatus *bool   `json:"motorStatus"`
	MotorAction *string `json:"Motor_action"`
}

type monitoringResponse struct {
	Message string `json:"message"`
}
