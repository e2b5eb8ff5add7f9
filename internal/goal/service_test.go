package goal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dental-tracker-api/internal/apperror"
	"dental-tracker-api/internal/goal"
)

type fakeRepository struct {
	goals        map[uuid.UUID]*goal.Goal
	activities   *fakeActivityStore
	forceDeleted []uuid.UUID

	// runs between the guarded delete starting and the count being read,
	// standing in for a concurrently logged activity
	beforeGuardedDelete func()
}

func newFakeRepository(activities *fakeActivityStore) *fakeRepository {
	return &fakeRepository{goals: map[uuid.UUID]*goal.Goal{}, activities: activities}
}

func (f *fakeRepository) Create(g *goal.Goal) error {
	copied := *g
	f.goals[g.ID] = &copied
	return nil
}

func (f *fakeRepository) FindAllByUserID(userID uuid.UUID) ([]goal.Goal, error) {
	var out []goal.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindByIDAndUserID(id, userID uuid.UUID) (*goal.Goal, error) {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (f *fakeRepository) Update(g *goal.Goal) error {
	copied := *g
	f.goals[g.ID] = &copied
	return nil
}

func (f *fakeRepository) DeleteIfUnreferenced(id uuid.UUID) (bool, error) {
	if f.beforeGuardedDelete != nil {
		f.beforeGuardedDelete()
	}
	count, err := f.activities.CountByGoalID(nil, id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	delete(f.goals, id)
	return true, nil
}

func (f *fakeRepository) ForceDelete(id uuid.UUID) error {
	if err := f.activities.DeleteByGoalID(nil, id); err != nil {
		return err
	}
	delete(f.goals, id)
	f.forceDeleted = append(f.forceDeleted, id)
	return nil
}

type fakeActivityStore struct {
	counts map[uuid.UUID]int64
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{counts: map[uuid.UUID]int64{}}
}

func (f *fakeActivityStore) CountByGoalID(_ *gorm.DB, goalID uuid.UUID) (int64, error) {
	return f.counts[goalID], nil
}

func (f *fakeActivityStore) DeleteByGoalID(_ *gorm.DB, goalID uuid.UUID) error {
	delete(f.counts, goalID)
	return nil
}

func newService() (goal.Service, *fakeRepository, *fakeActivityStore) {
	activities := newFakeActivityStore()
	repo := newFakeRepository(activities)
	return goal.NewService(repo), repo, activities
}

func validGoal() goal.CreateGoalDTO {
	return goal.CreateGoalDTO{
		Title:       "Floss",
		Description: "Floss every evening",
		Period:      goal.PeriodWeekly,
		Priority:    goal.PriorityMedium,
	}
}

func TestCreateGoal(t *testing.T) {
	owner := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := newService()

		response, err := svc.Create(owner, validGoal())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if response.ID == uuid.Nil {
			t.Error("no id assigned")
		}
		if response.UserID != owner {
			t.Errorf("wrong owner: %s", response.UserID)
		}
		if response.CreatedAt.IsZero() {
			t.Error("CreatedAt not set")
		}
		if _, ok := repo.goals[response.ID]; !ok {
			t.Error("goal not persisted")
		}
	})

	t.Run("Validation", func(t *testing.T) {
		svc, _, _ := newService()

		cases := map[string]goal.CreateGoalDTO{
			"EmptyTitle":       {Title: "  ", Description: "d", Period: goal.PeriodDaily, Priority: goal.PriorityLow},
			"EmptyDescription": {Title: "t", Description: "", Period: goal.PeriodDaily, Priority: goal.PriorityLow},
			"BadPeriod":        {Title: "t", Description: "d", Period: "FORTNIGHTLY", Priority: goal.PriorityLow},
			"BadPriority":      {Title: "t", Description: "d", Period: goal.PeriodDaily, Priority: "URGENT"},
		}
		for name, dto := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := svc.Create(owner, dto); apperror.KindOf(err) != apperror.KindValidation {
					t.Errorf("want validation error, got %v", err)
				}
			})
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	svc, repo, _ := newService()
	created, err := svc.Create(owner, validGoal())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	update := goal.UpdateGoalDTO{
		Title:       "Floss daily",
		Description: "Every evening before bed",
		Period:      goal.PeriodDaily,
		Priority:    goal.PriorityHigh,
	}

	t.Run("OtherOwnerGetsNotFound", func(t *testing.T) {
		_, err := svc.Update(stranger, created.ID, update)
		if apperror.KindOf(err) != apperror.KindNotFound {
			t.Fatalf("foreign goal must look absent, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		response, err := svc.Update(owner, created.ID, update)
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if response.Title != "Floss daily" || response.Period != goal.PeriodDaily {
			t.Errorf("fields not updated: %+v", response)
		}
		if response.UpdatedAt == nil {
			t.Error("UpdatedAt should be set after update")
		}
		if repo.goals[created.ID].Title != "Floss daily" {
			t.Error("update not persisted")
		}
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := svc.Update(owner, uuid.New(), update)
		if apperror.KindOf(err) != apperror.KindNotFound {
			t.Errorf("want not found, got %v", err)
		}
	})
}

func TestDeleteGoal(t *testing.T) {
	owner := uuid.New()

	t.Run("GuardedWhileActivitiesExist", func(t *testing.T) {
		svc, repo, activities := newService()
		created, err := svc.Create(owner, validGoal())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		activities.counts[created.ID] = 2

		err = svc.Delete(owner, created.ID)
		if !errors.Is(err, goal.ErrHasActivities) {
			t.Fatalf("want ErrHasActivities, got %v", err)
		}
		if _, ok := repo.goals[created.ID]; !ok {
			t.Error("guarded delete must not remove the goal")
		}
		if activities.counts[created.ID] != 2 {
			t.Error("guarded delete must not touch activities")
		}
	})

	t.Run("GuardSeesConcurrentActivity", func(t *testing.T) {
		svc, repo, activities := newService()
		created, err := svc.Create(owner, validGoal())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		// an activity lands after the delete request is accepted but before
		// the store decides; the guard must still see it
		repo.beforeGuardedDelete = func() {
			activities.counts[created.ID] = 1
		}

		err = svc.Delete(owner, created.ID)
		if !errors.Is(err, goal.ErrHasActivities) {
			t.Fatalf("want ErrHasActivities, got %v", err)
		}
		if _, ok := repo.goals[created.ID]; !ok {
			t.Error("goal must survive when an activity appears mid-delete")
		}
	})

	t.Run("DeletesWhenNoActivities", func(t *testing.T) {
		svc, repo, _ := newService()
		created, err := svc.Create(owner, validGoal())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if err := svc.Delete(owner, created.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, ok := repo.goals[created.ID]; ok {
			t.Error("goal should be gone")
		}
	})

	t.Run("ForceDeleteRemovesBoth", func(t *testing.T) {
		svc, repo, activities := newService()
		created, err := svc.Create(owner, validGoal())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		activities.counts[created.ID] = 3

		if err := svc.ForceDelete(owner, created.ID); err != nil {
			t.Fatalf("ForceDelete failed: %v", err)
		}
		if _, ok := repo.goals[created.ID]; ok {
			t.Error("goal should be gone")
		}
		if activities.counts[created.ID] != 0 {
			t.Error("activities should be gone")
		}
		if len(repo.forceDeleted) != 1 {
			t.Error("force delete should go through the transactional path")
		}
	})

	t.Run("OtherOwnerGetsNotFound", func(t *testing.T) {
		svc, _, _ := newService()
		created, err := svc.Create(owner, validGoal())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if err := svc.Delete(uuid.New(), created.ID); apperror.KindOf(err) != apperror.KindNotFound {
			t.Errorf("want not found, got %v", err)
		}
		if err := svc.ForceDelete(uuid.New(), created.ID); apperror.KindOf(err) != apperror.KindNotFound {
			t.Errorf("want not found, got %v", err)
		}
	})
}

func TestListGoals(t *testing.T) {
	owner := uuid.New()
	svc, _, _ := newService()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(owner, validGoal()); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	if _, err := svc.Create(uuid.New(), validGoal()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	goals, err := svc.List(owner)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(goals) != 3 {
		t.Errorf("want 3 goals for owner, got %d", len(goals))
	}
	for _, g := range goals {
		if g.UserID != owner {
			t.Errorf("foreign goal leaked into listing: %+v", g)
		}
	}
}
