package validation

import (
	"regexp"
	"strings"

	"github.com/hradmin/employee-admin/vocab"
)

// One canonical validator: the client form calls it for fast feedback,
// the HTTP handler calls it again before anything reaches the store.

var (
	reDigits = regexp.MustCompile(`^[0-9]+$`)
	reEmail  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Input carries the client-editable fields of an employee record.
// Server-owned fields (id, createDate, active, image path) are not here.
type Input struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Course      []string
}

func (in *Input) Normalize() {
	in.Name = strings.Join(strings.Fields(in.Name), " ")
	in.Email = strings.TrimSpace(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Designation = strings.TrimSpace(in.Designation)
	in.Gender = strings.TrimSpace(in.Gender)
	for i, c := range in.Course {
		in.Course[i] = strings.TrimSpace(c)
	}
}

// IsDigits reports whether s contains digit characters only. The empty
// string counts: the form's mobile guard must accept a cleared field.
func IsDigits(s string) bool {
	return s == "" || reDigits.MatchString(s)
}

// Dedupe drops repeated course values, keeping first-seen order.
func Dedupe(courses []string) []string {
	seen := make(map[string]bool, len(courses))
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Validate checks every record invariant and returns field → message.
// Returns nil when the input is clean.
func Validate(in *Input) map[string]string {
	errs := map[string]string{}

	if in.Name == "" {
		errs["name"] = "name is required"
	}
	if in.Email == "" {
		errs["email"] = "email is required"
	} else if !reEmail.MatchString(in.Email) {
		errs["email"] = "email must look like local@domain.tld"
	}
	if in.Mobile == "" {
		errs["mobile"] = "mobile is required"
	} else if !reDigits.MatchString(in.Mobile) {
		errs["mobile"] = "mobile must contain digits only"
	} else if len(in.Mobile) < 10 || len(in.Mobile) > 15 {
		errs["mobile"] = "mobile must be 10-15 digits"
	}
	if !vocab.ValidDesignation(in.Designation) {
		errs["designation"] = "designation must be one of " + strings.Join(vocab.Designations, ", ")
	}
	if !vocab.ValidGender(in.Gender) {
		errs["gender"] = "gender must be one of " + strings.Join(vocab.Genders, ", ")
	}

	if len(in.Course) == 0 {
		errs["course"] = "select at least one course"
	} else {
		// set-size check catches duplicates the transport may have re-sent
		set := make(map[string]bool, len(in.Course))
		for _, c := range in.Course {
			if !vocab.ValidCourse(c) {
				errs["course"] = "course must be one of " + strings.Join(vocab.Courses, ", ")
				break
			}
			set[c] = true
		}
		if _, bad := errs["course"]; !bad && len(set) != len(in.Course) {
			errs["course"] = "courses must be unique"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
