package gateway

import (
	"net/http"
	"soilgate/internal/common"
	"soilgate/internal/readings"
	"soilgate/internal/types"

	"github.com/gorilla/mux"
)

func registerRigRoutes(router *mux.Router, h *handlers) {
	rig := router.NewRoute().Subrouter()
	rig.Use(h.getRouteAuther(rejectWithUnauthorized))

	rig.HandleFunc("/moisture-level", h.handleMoistureLevel).Methods(http.MethodPost)
	rig.HandleFunc("/update-motor-status", h.handleUpdateMotorStatus).Methods(http.MethodPost)
	rig.HandleFunc("/update-continuous-monitoring", h.handleUpdateContinuousMonitoring).Methods(http.MethodPost)
	rig.HandleFunc("/give-voice-command", h.handleGiveVoiceCommand).Methods(http.MethodPost)
	rig.HandleFunc("/get-past-moisture-details", h.handleGetPastMoistureDetails).Methods(http.MethodPost)
	rig.HandleFunc("/rig-status", h.handleGetRigStatus).Methods(http.MethodGet)
}

type handleMoistureLevelOutput struct {
	MoistureValue float64 `json:"moisture_value"`
}

// handleMoistureLevel godoc
// @Summary      Fetches the current soil moisture and stores it for the session user
// @Tags         gateway
// @Produce      json
// @Success      200 {object} handleMoistureLevelOutput "ok"
// @Failure      401 {object} common.HttpResponse "login required"
// @Failure      500 {object} common.HttpResponse "internal server error"
// @Router       /moisture-level [post]
func (h *handlers) handleMoistureLevel(w http.ResponseWriter, r *http.Request) {
	value, err := h.dispatcher.FetchMoisture(r.Context(), getSession(r).Username)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "Error fetching moisture level.", getErrorCode(err))
		return
	}
	common.SendHttpJsonResponse(w, r, http.StatusOK, handleMoistureLevelOutput{MoistureValue: value})
}

type handleUpdateMotorStatusInput struct {
	MotorStatus bool `json:"motorStatus"`
}

type handleUpdateMotorStatusOutput struct {
	NewMotorStatus bool `json:"newMotorStatus"`
}

// handleUpdateMotorStatus godoc
// @Summary      Switches the pump on or off
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        request body handleUpdateMotorStatusInput true "Desired motor state"
// @Success      200 {object} handleUpdateMotorStatusOutput "ok"
// @Failure      400 {object} common.HttpResponse "bad request"
// @Failure      401 {object} common.HttpResponse "login required"
// @Failure      500 {object} common.HttpResponse "internal server error"
// @Router       /update-motor-status [post]
func (h *handlers) handleUpdateMotorStatus(w http.ResponseWriter, r *http.Request) {
	var input handleUpdateMotorStatusInput
	if err := readJsonBody(w, r, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", types.ErrorInvalidInput)
		return
	}
	confirmed, err := h.dispatcher.SetMotor(r.Context(), getSession(r).Username, input.MotorStatus)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "Error fetching motor status.", getErrorCode(err))
		return
	}
	common.SendHttpJsonResponse(w, r, http.StatusOK, handleUpdateMotorStatusOutput{NewMotorStatus: confirmed})
}

type handleUpdateContinuousMonitoringInput struct {
	ContinuousMonitoring bool `json:"continuousMonitoring"`
}

type handleUpdateContinuousMonitoringOutput struct {
	NewMonitoringStatus string `json:"newMonitoringStatus"`
}

// handleUpdateContinuousMonitoring godoc
// @Summary      Enables or disables continuous monitoring on the rig
// @Tags         gateway
// @Accept       json
// @Produce      json
// @Param        request body handleUpdateContinuousMonitoringInput true "Desired monitoring state"
// @Success      200 {object} handleUpdateContinuousMonitoringOutput "ok"
// @Failure      400 {object} common.HttpResponse "bad request"
// @Failure      401 {object} common.HttpResponse "login required"
// @Failure      500 {object} common.HttpResponse "internal server error"
// @Router       /update-continuous-monitoring [post]
func (h *handlers) handleUpdateContinuousMonitoring(w http.ResponseWriter, r *http.Request) {
	var input handleUpdateContinuousMonitoringInput
	if err := readJsonBody(w, r, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", types.ErrorInvalidInput)
		return
	}
	message, err := h.dispatcher.SetMonitoring(r.Context(), getSession(r).Username, input.ContinuousMonitoring)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "Error updating continuous monitoring.", getErrorCode(err))
		return
	}
	common.SendHttpJsonResponse(w, r, http.StatusOK, handleUpdateContinuousMonitoringOutput{NewMonitoringStatus: message})
}

// handleGiveVoiceCommand godoc
// @Summary      Records a voice command and acts on the recognised intent
// @Description  An unrecognised transcript returns an empty object
// @Tags         gateway
// @Produce      json
// @Success      200 {object} dispatch.VoiceResult "ok"
// @Failure      401 {object} common.HttpResponse "login required"
// @Failure      500 {object} common.HttpResponse "internal server error"
// @Router       /give-voice-command [post]
func (h *handlers) handleGiveVoiceCommand(w http.ResponseWriter, r *http.Request) {
	result, err := h.dispatcher.VoiceCommand(r.Context(), getSession(r).Username)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "Error processing voice command.", getErrorCode(err))
		return
	}
	common.SendHttpJsonResponse(w, r, http.StatusOK, result)
}

type handleGetPastMoistureDetailsOutput struct {
	MoistureDetailsCursor []readings.HistoryEntry `json:"moistureDetailsCursor"`
}

// handleGetPastMoistureDetails godoc
// @Summary      Lists the session user's readings, oldest first
// @Tags         gateway
// @Produce      json
// @Success      200 {object} handleGetPastMoistureDetailsOutput "ok"
// @Failure      401 {object} common.HttpResponse "login required"
// @Failure      500 {object} common.HttpResponse "internal server error"
// @Router       /get-past-moisture-details [post]
func (h *handlers) handleGetPastMoistureDetails(w http.ResponseWriter, r *http.Request) {
	history, err := h.dispatcher.History(r.Context(), getSession(r).Username)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "Error fetching moisture level.", getErrorCode(err))
		return
	}
	if history == nil {
		history = []readings.HistoryEntry{}
	}
	common.SendHttpJsonResponse(w, r, http.StatusOK, handleGetPastMoistureDetailsOutput{MoistureDetailsCursor: history})
}

// handleGetRigStatus godoc
// @Summary      Returns the last motor and monitoring states confirmed by the rig
// @Tags         gateway
// @Produce      json
// @Success      200 {object} dispatch.RigStatus "ok"
// @Failure      401 {object} common.HttpResponse "login required"
// @Router       /rig-status [get]
func (h *handlers) handleGetRigStatus(w http.ResponseWriter, r *http.Request) {
	common.SendHttpJsonResponse(w, r, http.StatusOK, h.dispatcher.GetRigStatus())
}
