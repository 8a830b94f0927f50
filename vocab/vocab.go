package vocab

// Fixed vocabularies shared by the client form and the server-side
// validation. Loaded once at startup and never mutated afterwards.

var (
	Designations = []string{"Developer", "Designer", "Tester", "HR"}
	Genders      = []string{"Male", "Female", "Other"}
	Courses      = []string{"BCA", "MCA", "BSC"}
)

var (
	designationSet = toSet(Designations)
	genderSet      = toSet(Genders)
	courseSet      = toSet(Courses)
)

func toSet(vals []string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

func ValidDesignation(v string) bool { return designationSet[v] }
func ValidGender(v string) bool      { return genderSet[v] }
func ValidCourse(v string) bool      { return courseSet[v] }
