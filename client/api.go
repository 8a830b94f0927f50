package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hradmin/employee-admin/models"
)

// APIError carries the status and decoded envelope of a non-2xx reply
// so callers can tell a duplicate email from malformed input.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

type envelope struct {
	Employee *models.Employee  `json:"employee"`
	Code     string            `json:"error"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields"`
}

// API is the thin transport behind the form. Timeouts are the caller's
// job, via the context on Submit or a tuned http.Client.
type API struct {
	BaseURL string
	HTTP    *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{BaseURL: baseURL, HTTP: http.DefaultClient}
}

// submit posts a multipart body and decodes the one envelope shape both
// endpoints use.
func (a *API) submit(ctx context.Context, method, path, contentType string, body io.Reader) (*models.Employee, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return nil, &APIError{StatusCode: resp.StatusCode}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return env.Employee, nil
	}
	return nil, &APIError{
		StatusCode: resp.StatusCode,
		Code:       env.Code,
		Message:    env.Message,
		Fields:     env.Fields,
	}
}
