package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"soilgate/internal/types"
	"strings"
	"time"
)

const (
	DefaultTimeout = 60 * time.Second

	PathStartRecording = "/start-recording"
)

type NewClientOpts struct {
	VoiceUrl string
	Timeout  time.Duration
	Id       string

	// Duration is the recording length in seconds, zero leaves it to
	// the voice service
	Duration int

	// InputDeviceIndex selects the microphone, nil leaves it to the
	// voice service
	InputDeviceIndex *int
}

func NewClient(opts NewClientOpts) (*Client, error) {
	voiceUrl, err := url.Parse(opts.VoiceUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided VoiceUrl[%s]: %w", opts.VoiceUrl, err)
	}
	if voiceUrl.Scheme == "" || voiceUrl.Host == "" {
		return nil, fmt.Errorf("failed to determine url scheme and host of VoiceUrl[%s]", opts.VoiceUrl)
	}
	if opts.Duration < 0 {
		return nil, fmt.Errorf("failed to receive a valid recording duration[%v]", opts.Duration)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Duration:         opts.Duration,
		HttpClient:       &http.Client{Timeout: timeout},
		Id:               opts.Id,
		InputDeviceIndex: opts.InputDeviceIndex,
		VoiceUrl:         voiceUrl,
	}, nil
}

type Client struct {
	Duration         int
	HttpClient       *http.Client
	Id               string
	InputDeviceIndex *int
	VoiceUrl         *url.URL
}

type recordingRequest struct {
	DataDirPath      string `json:"data_dir_path"`
	Duration         int    `json:"duration,omitempty"`
	InputDeviceIndex *int   `json:"input_device_index,omitempty"`
}

type recordingResponse struct {
	Text  *string `json:"text"`
	Error string  `json:"error"`
}

// RecordAndTranscribe has the voice service record from its microphone
// into `dataDirPath` and returns the transcript trimmed of surrounding
// whitespace
func (c *Client) RecordAndTranscribe(ctx context.Context, dataDirPath string) (string, error) {
	requestData, err := json.Marshal(recordingRequest{
		DataDirPath:      dataDirPath,
		Duration:         c.Duration,
		InputDeviceIndex: c.InputDeviceIndex,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrorClientMarshalInput, err)
	}
	httpRequest, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.VoiceUrl.JoinPath(PathStartRecording).String(),
		bytes.NewBuffer(requestData),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrorClientRequestCreation, err)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("soilgate/voice-client-%s", c.Id))

	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		return "", fmt.Errorf("failed to reach voice service: %w: %w", types.ErrorUpstreamUnavailable, err)
	}
	defer httpResponse.Body.Close()
	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read voice service response: %w: %w", types.ErrorUpstreamUnavailable, err)
	}

	var response recordingResponse
	parseErr := json.Unmarshal(responseBody, &response)
	if httpResponse.StatusCode != http.StatusOK {
		if parseErr == nil && response.Error != "" {
			return "", fmt.Errorf("voice service failed (status code: %v): %s: %w", httpResponse.StatusCode, response.Error, types.ErrorUpstreamError)
		}
		return "", fmt.Errorf("failed to receive a successful response from the voice service (status code: %v): %w", httpResponse.StatusCode, types.ErrorUpstreamError)
	}
	if parseErr != nil {
		return "", fmt.Errorf("failed to parse voice service response: %w: %w", types.ErrorUpstreamError, parseErr)
	}
	if response.Text == nil {
		return "", fmt.Errorf("failed to receive a transcript from the voice service: %w", types.ErrorUpstreamError)
	}
	return strings.TrimSpace(*response.Text), nil
}
