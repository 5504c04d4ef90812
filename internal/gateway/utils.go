package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"soilgate/internal/common"
	"soilgate/internal/types"
)

const maxRequestBodyBytes = 1 << 20

// readJsonBody decodes the request body into `output`, an empty body
// leaves `output` untouched
func readJsonBody(w http.ResponseWriter, r *http.Request, output any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(output); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse request body: %w: %w", types.ErrorInvalidInput, err)
	}
	return nil
}

// getErrorCode returns the sentinel clients branch on without leaking
// the wrapped details
func getErrorCode(err error) error {
	for _, code := range []error{
		types.ErrorUpstreamUnavailable,
		types.ErrorUpstreamError,
		types.ErrorStorageUnavailable,
	} {
		if errors.Is(err, code) {
			return code
		}
	}
	return types.ErrorGeneric
}

// getSourceIp returns the parsed client ip, header values that are not
// an ip are never recorded
func getSourceIp(r *http.Request) *string {
	ip, err := common.ExtractRequestIp(r)
	if err != nil {
		return nil
	}
	output := ip.String()
	return &output
}
