package domain

// Schedule is a join row putting one course on one user's schedule.
type Schedule struct {
	ID       int64
	UserID   int64
	CourseID int64
}

// SchoolListEntry is a join row putting one college on one user's list.
type SchoolListEntry struct {
	ID        int64
	UserID    int64
	CollegeID int64
}
