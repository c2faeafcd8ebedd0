// Package dataset ships the static course and college records consumed
// by the administrative upsert routes. The JSON files are embedded so
// the importer has no runtime file dependencies.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

//go:embed courses.json
var coursesJSON []byte

//go:embed colleges.json
var collegesJSON []byte

// CourseRecord is one raw course entry from the dataset, before the
// derived fields (num, suffix, display times) are computed.
type CourseRecord struct {
	Subject          string            `json:"subject"`
	Coursenum        string            `json:"coursenum"`
	Section          string            `json:"section"`
	Name             string            `json:"name"`
	Term             string            `json:"term"`
	Instructor       string            `json:"instructor"`
	Waiting          int               `json:"waiting"`
	IndependentStudy bool              `json:"independent_study"`
	Times            []dom.MeetingTime `json:"times"`
}

// CollegeRecord is one raw college entry from the dataset.
type CollegeRecord struct {
	UnitID         int64  `json:"unitID"`
	Name           string `json:"name"`
	State          string `json:"state"`
	WebsiteAddress string `json:"websiteAddress"`
	City           string `json:"city"`
}

// Courses decodes the embedded course dataset.
func Courses() ([]CourseRecord, error) {
	var out []CourseRecord
	if err := json.Unmarshal(coursesJSON, &out); err != nil {
		return nil, fmt.Errorf("decode courses dataset: %w", err)
	}
	return out, nil
}

// Colleges decodes the embedded college dataset.
func Colleges() ([]CollegeRecord, error) {
	var out []CollegeRecord
	if err := json.Unmarshal(collegesJSON, &out); err != nil {
		return nil, fmt.Errorf("decode colleges dataset: %w", err)
	}
	return out, nil
}
