package services

import (
	"errors"
	"testing"

	"ranking-league-system/models"
)

func categoryFixture() (*CategoryService, *fakeCategoryRepo) {
	players := newFakePlayerDirectory(
		models.Player{ID: "player-a", Name: "Ana", Email: "ana@league.test"},
		models.Player{ID: "player-b", Name: "Bia", Email: "bia@league.test"},
	)
	repo := newFakeCategoryRepo()
	return NewCategoryService(repo, players), repo
}

func TestCreateCategory(t *testing.T) {
	svc, _ := categoryFixture()

	category, err := svc.CreateCategory(CreateCategoryRequest{
		Name:        "serie a",
		Description: "top tier",
		Events: []CategoryEventRequest{
			{Name: "VICTORY", Operation: "+", Value: 30},
			{Name: "DEFEAT", Operation: "+", Value: 0},
		},
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if category.Slug != "serie-a" {
		t.Errorf("slug = %q, want serie-a", category.Slug)
	}
	if category.DisplayName != "Serie A" {
		t.Errorf("display name = %q, want Serie A", category.DisplayName)
	}
	if len(category.Events) != 2 || category.Events[1].SortOrder != 1 {
		t.Errorf("events not stored in order: %+v", category.Events)
	}

	_, err = svc.CreateCategory(CreateCategoryRequest{Name: "serie a"})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("duplicate label err = %v, want ValidationError", err)
	}
}

func TestAssignPlayerToCategory(t *testing.T) {
	svc, repo := categoryFixture()
	if _, err := svc.CreateCategory(CreateCategoryRequest{Name: "X"}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if _, err := svc.AssignPlayerToCategory("X", "player-a"); err != nil {
		t.Fatalf("AssignPlayerToCategory: %v", err)
	}
	if _, ok := repo.members["player-a"]; !ok {
		t.Error("membership not recorded")
	}

	category, err := svc.FindCategoryOfPlayer("player-a")
	if err != nil {
		t.Fatalf("FindCategoryOfPlayer: %v", err)
	}
	if category.Name != "X" {
		t.Errorf("category = %q, want X", category.Name)
	}
}

func TestAssignPlayerRejectsSecondMembership(t *testing.T) {
	svc, _ := categoryFixture()
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	_, err := svc.CreateCategory(CreateCategoryRequest{Name: "X"})
	must(err)
	_, err = svc.CreateCategory(CreateCategoryRequest{Name: "Y"})
	must(err)
	_, err = svc.AssignPlayerToCategory("X", "player-a")
	must(err)

	var validation *ValidationError

	// Same category twice
	if _, err := svc.AssignPlayerToCategory("X", "player-a"); !errors.As(err, &validation) {
		t.Errorf("re-assign err = %v, want ValidationError", err)
	}
	// A different category while the first membership exists
	if _, err := svc.AssignPlayerToCategory("Y", "player-a"); !errors.As(err, &validation) {
		t.Errorf("cross-assign err = %v, want ValidationError", err)
	}
}

func TestAssignPlayerUnknownTargets(t *testing.T) {
	svc, _ := categoryFixture()
	if _, err := svc.CreateCategory(CreateCategoryRequest{Name: "X"}); err != nil {
		t.Fatal(err)
	}

	var notFound *NotFoundError
	if _, err := svc.AssignPlayerToCategory("Z", "player-a"); !errors.As(err, &notFound) {
		t.Errorf("unknown category err = %v, want NotFoundError", err)
	}
	if _, err := svc.AssignPlayerToCategory("X", "ghost"); !errors.As(err, &notFound) {
		t.Errorf("unknown player err = %v, want NotFoundError", err)
	}
}

func TestFindCategoryOfPlayerWithoutMembership(t *testing.T) {
	svc, _ := categoryFixture()
	var notFound *NotFoundError
	if _, err := svc.FindCategoryOfPlayer("player-a"); !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestUpdateCategoryReplacesEvents(t *testing.T) {
	svc, _ := categoryFixture()
	if _, err := svc.CreateCategory(CreateCategoryRequest{
		Name:   "X",
		Events: []CategoryEventRequest{{Name: "VICTORY", Operation: "+", Value: 30}},
	}); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateCategory("X", UpdateCategoryRequest{
		Description: "revised",
		Events: []CategoryEventRequest{
			{Name: "VICTORY", Operation: "+", Value: 50},
			{Name: "VICTORY_LEADER", Operation: "+", Value: 70},
		},
	})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if len(updated.Events) != 2 {
		t.Errorf("events = %d, want replaced set of 2", len(updated.Events))
	}
	if updated.Description != "revised" {
		t.Errorf("description = %q, want revised", updated.Description)
	}
}

func TestDeleteCategory(t *testing.T) {
	svc, repo := categoryFixture()
	if _, err := svc.CreateCategory(CreateCategoryRequest{Name: "X"}); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteCategory("X"); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if len(repo.categories) != 0 {
		t.Error("category not deleted")
	}

	var notFound *NotFoundError
	if err := svc.DeleteCategory("X"); !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}
