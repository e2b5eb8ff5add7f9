package tip_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"dental-tracker-api/internal/apperror"
	"dental-tracker-api/internal/tip"
)

type fakeRepository struct {
	tips []tip.Tip
}

func (f *fakeRepository) FindActive() ([]tip.Tip, error) {
	var out []tip.Tip
	for _, t := range f.tips {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepository) Count() (int64, error) {
	return int64(len(f.tips)), nil
}

func (f *fakeRepository) CreateAll(tips []tip.Tip) error {
	f.tips = append(f.tips, tips...)
	return nil
}

func makeTip(content string, active bool) tip.Tip {
	return tip.Tip{ID: uuid.New(), Content: content, IsActive: active, CreatedAt: time.Now().UTC()}
}

func TestRandom(t *testing.T) {
	t.Run("EmptyActiveSet", func(t *testing.T) {
		repo := &fakeRepository{tips: []tip.Tip{makeTip("inactive", false)}}
		svc := tip.NewService(repo)

		_, err := svc.Random()
		if apperror.KindOf(err) != apperror.KindNotFound {
			t.Fatalf("want not found, got %v", err)
		}
	})

	t.Run("RoughlyUniform", func(t *testing.T) {
		repo := &fakeRepository{tips: []tip.Tip{
			makeTip("brush", true),
			makeTip("floss", true),
			makeTip("rinse", true),
			makeTip("retired", false),
		}}
		svc := tip.NewService(repo)

		active := map[uuid.UUID]bool{}
		for _, candidate := range repo.tips {
			if candidate.IsActive {
				active[candidate.ID] = true
			}
		}

		const draws = 300
		counts := map[uuid.UUID]int{}
		for i := 0; i < draws; i++ {
			picked, err := svc.Random()
			if err != nil {
				t.Fatalf("Random failed: %v", err)
			}
			if !active[picked.ID] {
				t.Fatal("picked an inactive tip")
			}
			counts[picked.ID]++
		}

		if len(counts) != 3 {
			t.Fatalf("want all 3 active tips to appear, got %d", len(counts))
		}
		// expected ~100 each; these bounds are many standard deviations wide
		for id, count := range counts {
			if count < 40 || count > 160 {
				t.Errorf("tip %s drawn %d times out of %d, far from uniform", id, count, draws)
			}
		}
	})

	t.Run("ReflectsActiveSetChanges", func(t *testing.T) {
		repo := &fakeRepository{tips: []tip.Tip{makeTip("only", true)}}
		svc := tip.NewService(repo)

		if _, err := svc.Random(); err != nil {
			t.Fatalf("Random failed: %v", err)
		}

		repo.tips[0].IsActive = false
		_, err := svc.Random()
		if apperror.KindOf(err) != apperror.KindNotFound {
			t.Fatalf("selection must see the live active set, got %v", err)
		}
	})
}

func TestListActive(t *testing.T) {
	repo := &fakeRepository{tips: []tip.Tip{
		makeTip("brush", true),
		makeTip("retired", false),
	}}
	svc := tip.NewService(repo)

	tips, err := svc.ListActive()
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(tips) != 1 || tips[0].Content != "brush" {
		t.Errorf("want only active tips, got %+v", tips)
	}
}

func TestSeed(t *testing.T) {
	repo := &fakeRepository{}

	if err := tip.Seed(repo); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	seeded := len(repo.tips)
	if seeded == 0 {
		t.Fatal("seed must install a starter catalog on an empty table")
	}

	if err := tip.Seed(repo); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if len(repo.tips) != seeded {
		t.Error("seeding must be a no-op on a populated table")
	}
}
