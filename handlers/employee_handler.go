package handlers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hradmin/employee-admin/models"
	"github.com/hradmin/employee-admin/storage"
	"github.com/hradmin/employee-admin/store"
	"github.com/hradmin/employee-admin/validation"
)

type EmployeeHandler struct {
	store  store.EmployeeStore
	assets storage.AssetStore
}

func NewEmployeeHandler(s store.EmployeeStore, a storage.AssetStore) *EmployeeHandler {
	return &EmployeeHandler{store: s, assets: a}
}

// ===== Error envelope (one shape for every failure) =====

func errJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, map[string]any{"error": code, "message": message})
}

func validationJSON(c echo.Context, fields map[string]string) error {
	// deterministic message: first offending field in sorted order
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msg := keys[0] + ": " + fields[keys[0]]
	return c.JSON(http.StatusBadRequest, map[string]any{
		"error":   "VALIDATION_ERROR",
		"message": msg,
		"fields":  fields,
	})
}

// readInput decodes the multipart (or urlencoded) employee fields.
// course arrives as repeated same-named parts, one per selection; the
// values are taken as sent so a duplicated part fails validation
// instead of being papered over.
func readInput(c echo.Context) (*validation.Input, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	in := &validation.Input{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Mobile:      c.FormValue("mobile"),
		Designation: c.FormValue("designation"),
		Gender:      c.FormValue("gender"),
		Course:      params["course"],
	}
	in.Normalize()
	return in, nil
}

// storeImage saves the uploaded image part, if any. Returns "" when the
// request carries no image part.
func (h *EmployeeHandler) storeImage(c echo.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// no image part in the form
		return "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.assets.Store(fh.Filename, f)
}

// POST /employees
func (h *EmployeeHandler) Create(c echo.Context) error {
	in, err := readInput(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD", "could not parse form data")
	}
	if fields := validation.Validate(in); fields != nil {
		return validationJSON(c, fields)
	}

	// asset first, record second: a failed insert leaves at worst an
	// orphaned file for later garbage collection
	image, err := h.storeImage(c)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "ASSET_STORE_FAILED", "could not store image")
	}

	// createDate and active are server-owned, never read from the form
	e := &models.Employee{
		Name:        in.Name,
		Email:       in.Email,
		Mobile:      in.Mobile,
		Designation: in.Designation,
		Gender:      in.Gender,
		Course:      models.CourseList(in.Course),
		Image:       image,
		CreateDate:  time.Now().UTC(),
		Active:      true,
	}
	if err := h.store.Insert(c.Request().Context(), e); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return errJSON(c, http.StatusConflict, "DUPLICATE_EMAIL", "an employee with this email already exists")
		}
		return errJSON(c, http.StatusInternalServerError, "DB_INSERT_FAILED", "could not save employee")
	}
	return c.JSON(http.StatusCreated, map[string]any{"employee": e})
}

// PUT /employees/:id (POST alias registered in routes)
func (h *EmployeeHandler) Update(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return errJSON(c, http.StatusBadRequest, "INVALID_ID", "employee id must be numeric")
	}

	existing, err := h.store.Get(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND", "employee not found")
		}
		return errJSON(c, http.StatusInternalServerError, "DB_QUERY_FAILED", "could not load employee")
	}

	in, err := readInput(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD", "could not parse form data")
	}
	if fields := validation.Validate(in); fields != nil {
		return validationJSON(c, fields)
	}

	// a new asset replaces the reference; omission preserves it
	image, err := h.storeImage(c)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "ASSET_STORE_FAILED", "could not store image")
	}
	if image != "" {
		existing.Image = image
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Mobile = in.Mobile
	existing.Designation = in.Designation
	existing.Gender = in.Gender
	existing.Course = models.CourseList(in.Course)

	if err := h.store.Update(c.Request().Context(), existing); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			return errJSON(c, http.StatusConflict, "DUPLICATE_EMAIL", "an employee with this email already exists")
		case errors.Is(err, store.ErrNotFound):
			return errJSON(c, http.StatusNotFound, "NOT_FOUND", "employee not found")
		default:
			return errJSON(c, http.StatusInternalServerError, "DB_UPDATE_FAILED", "could not save employee")
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"employee": existing})
}

// GET /employees/:id
func (h *EmployeeHandler) Get(c echo.Context) error {
	id := atoiOr(c.Param("id"), 0)
	if id <= 0 {
		return errJSON(c, http.StatusBadRequest, "INVALID_ID", "employee id must be numeric")
	}
	e, err := h.store.Get(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND", "employee not found")
		}
		return errJSON(c, http.StatusInternalServerError, "DB_QUERY_FAILED", "could not load employee")
	}
	return c.JSON(http.StatusOK, map[string]any{"employee": e})
}
