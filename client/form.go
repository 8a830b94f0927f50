package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"
	"sync"

	"github.com/hradmin/employee-admin/models"
	"github.com/hradmin/employee-admin/validation"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still running. No second request is issued.
var ErrSubmitInFlight = errors.New("submission already in flight")

// ErrInvalid is returned when local validation rejects the draft; the
// failing field message is in Form.Error and no request is sent.
var ErrInvalid = errors.New("draft failed validation")

// Form is the mutable working copy of an employee record. One instance
// backs one create or edit dialog; it is not shared across goroutines
// except for the single-flight guard around Submit.
type Form struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Course      []string

	// Image is the stored reference from the edit seed; it is only
	// replaced after the server confirms a new asset.
	Image string

	// Error and Success are the display strings the UI shows.
	Error   string
	Success string

	// OnSaved receives the persisted record; OnClose signals the edit
	// dialog to close after success.
	OnSaved func(*models.Employee)
	OnClose func()

	mode Mode
	id   uint
	api  *API

	pendingName string
	pendingData []byte

	mu      sync.Mutex
	loading bool
}

// NewCreateForm starts from empty defaults.
func NewCreateForm(api *API) *Form {
	return &Form{mode: ModeCreate, api: api}
}

// NewEditForm copies the existing record, image reference included.
func NewEditForm(api *API, seed *models.Employee) *Form {
	return &Form{
		mode:        ModeEdit,
		api:         api,
		id:          seed.ID,
		Name:        seed.Name,
		Email:       seed.Email,
		Mobile:      seed.Mobile,
		Designation: seed.Designation,
		Gender:      seed.Gender,
		Course:      append([]string(nil), seed.Course...),
		Image:       seed.Image,
	}
}

func (f *Form) Mode() Mode { return f.mode }

// SetField is the generic text setter. Mobile keeps the digit guard
// from the input handler: a value with non-digit characters is dropped,
// partial digit strings are fine while the user is still typing.
func (f *Form) SetField(name, value string) {
	switch name {
	case "name":
		f.Name = value
	case "email":
		f.Email = value
	case "mobile":
		if !validation.IsDigits(value) {
			return
		}
		f.Mobile = value
	case "designation":
		f.Designation = value
	case "gender":
		f.Gender = value
	}
}

// ToggleCourse mirrors a checkbox: checked adds the value if absent,
// unchecked removes it. The selection never holds duplicates.
func (f *Form) ToggleCourse(value string, checked bool) {
	for i, c := range f.Course {
		if c != value {
			continue
		}
		if !checked {
			f.Course = append(f.Course[:i], f.Course[i+1:]...)
		}
		return
	}
	if checked {
		f.Course = append(f.Course, value)
	}
}

// SetPendingAsset stages a replacement image. Form.Image is untouched
// until the submission succeeds.
func (f *Form) SetPendingAsset(filename string, data []byte) {
	f.pendingName = filename
	f.pendingData = data
}

func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Submit validates the draft, encodes it as multipart form data and
// calls the create or update endpoint. While a submission is running,
// further calls are no-ops on the wire. On any outcome the loading
// flag is cleared and the draft is left intact on failure.
func (f *Form) Submit(ctx context.Context) (*models.Employee, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	f.loading = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
	}()

	f.Error = ""
	f.Success = ""

	courses := validation.Dedupe(f.Course)
	in := &validation.Input{
		Name:        f.Name,
		Email:       f.Email,
		Mobile:      f.Mobile,
		Designation: f.Designation,
		Gender:      f.Gender,
		Course:      courses,
	}
	in.Normalize()
	if fields := validation.Validate(in); fields != nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		f.Error = fields[keys[0]]
		return nil, ErrInvalid
	}

	body, contentType, err := f.encode(in)
	if err != nil {
		f.Error = f.fallbackMessage()
		return nil, err
	}

	method, path := http.MethodPost, "/employees"
	if f.mode == ModeEdit {
		method, path = http.MethodPut, fmt.Sprintf("/employees/%d", f.id)
	}

	rec, err := f.api.submit(ctx, method, path, contentType, body)
	if err != nil {
		// server-provided message when there is one, generic otherwise
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			f.Error = apiErr.Message
		} else {
			f.Error = f.fallbackMessage()
		}
		return nil, err
	}

	if f.mode == ModeCreate {
		f.Success = "Employee added successfully!"
		f.reset()
	} else {
		f.Success = "Employee updated successfully!"
		if rec != nil {
			f.Image = rec.Image
		}
	}
	if f.OnSaved != nil {
		f.OnSaved(rec)
	}
	if f.mode == ModeEdit && f.OnClose != nil {
		f.OnClose()
	}
	return rec, nil
}

// encode builds the multipart payload: one part per scalar field, one
// part per course selection, plus the pending image when staged.
func (f *Form) encode(in *validation.Input) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        in.Name,
		"email":       in.Email,
		"mobile":      in.Mobile,
		"designation": in.Designation,
		"gender":      in.Gender,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	for _, c := range in.Course {
		if err := w.WriteField("course", c); err != nil {
			return nil, "", err
		}
	}
	if f.pendingData != nil {
		part, err := w.CreateFormFile("image", f.pendingName)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.pendingData); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (f *Form) fallbackMessage() string {
	if f.mode == ModeEdit {
		return "Failed to update employee"
	}
	return "Failed to add employee"
}

// reset returns a create form to empty defaults after success.
func (f *Form) reset() {
	f.Name = ""
	f.Email = ""
	f.Mobile = ""
	f.Designation = ""
	f.Gender = ""
	f.Course = nil
	f.pendingName = ""
	f.pendingData = nil
}
