// Package dto holds the form bodies bound from browser POSTs. Beyond
// destructuring there is no schema validation; degenerate values flow
// through to the repositories.
package dto

// LoginForm is the body for POST /login and POST /register.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TodoForm is the body for POST /todo/add.
type TodoForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// SubjectForm is the body for POST /courses/bySubject and
// POST /courses/byAvailability.
type SubjectForm struct {
	Subject string `form:"subject"`
}

// WordForm is the body for POST /courses/byWord.
type WordForm struct {
	Word string `form:"word"`
}

// CoursenumForm is the body for POST /courses/byCoursenum.
type CoursenumForm struct {
	Coursenum string `form:"coursenum"`
}

// InstructorForm is the body for POST /courses/byInst. Email is the
// bare name; the institutional domain is appended server side.
type InstructorForm struct {
	Email string `form:"email"`
}

// CollegeNameForm is the body for POST /colleges/byName.
type CollegeNameForm struct {
	Name string `form:"name"`
}
