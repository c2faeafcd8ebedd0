package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/Xinyu-Cheng/cs103a-cpa02/internal/domain"
)

func TestCollegeService_ByName(t *testing.T) {
	colleges := newMockCollegeRepo()
	colleges.add(dom.College{UnitID: 164465, Name: "Brandeis University", State: "MA"})
	colleges.add(dom.College{UnitID: 166027, Name: "Harvard University", State: "MA"})
	colleges.add(dom.College{UnitID: 168342, Name: "Williams College", State: "MA"})
	svc := NewCollegeService(colleges, newMockSchoolListRepo())

	got, err := svc.ByName(context.Background(), "university")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 case-insensitive substring matches, got %d", len(got))
	}
}

func TestCollegeService_Show_NotFound(t *testing.T) {
	svc := NewCollegeService(newMockCollegeRepo(), newMockSchoolListRepo())
	_, err := svc.Show(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCollegeService_AddToList_SequentiallyIdempotent(t *testing.T) {
	colleges := newMockCollegeRepo()
	list := newMockSchoolListRepo()
	c := colleges.add(dom.College{UnitID: 164465, Name: "Brandeis University"})
	svc := NewCollegeService(colleges, list)

	for i := 0; i < 2; i++ {
		if err := svc.AddToList(context.Background(), 1, c.ID); err != nil {
			t.Fatalf("AddToList #%d: %v", i+1, err)
		}
	}
	if n := len(list.rows); n != 1 {
		t.Errorf("expected 1 school-list row after repeated adds, got %d", n)
	}
}

func TestCollegeService_ShowList(t *testing.T) {
	colleges := newMockCollegeRepo()
	list := newMockSchoolListRepo()
	a := colleges.add(dom.College{UnitID: 1, Name: "Amherst College"})
	colleges.add(dom.College{UnitID: 2, Name: "Bowdoin College"})
	svc := NewCollegeService(colleges, list)

	if err := svc.AddToList(context.Background(), 1, a.ID); err != nil {
		t.Fatal(err)
	}
	got, err := svc.ShowList(context.Background(), 1)
	if err != nil {
		t.Fatalf("ShowList: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Amherst College" {
		t.Errorf("expected [Amherst College], got %v", got)
	}
}

func TestCollegeService_RemoveFromList_AbsentIsNoop(t *testing.T) {
	svc := NewCollegeService(newMockCollegeRepo(), newMockSchoolListRepo())
	if err := svc.RemoveFromList(context.Background(), 1, 999); err != nil {
		t.Errorf("removing an absent college should be a no-op, got %v", err)
	}
}
