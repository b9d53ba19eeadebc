package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/trade_site/models/entities"
)

func TestSEOTaskListOrderAndCountOpen(t *testing.T) {
	db := newTestDB(t)
	repo := NewSEOTaskRepository(db, nopLogger())
	ctx := context.Background()

	p := seedProduct(t, db, "Steel Pipe", "steel-pipe", nil, entities.ProductStatusActive)
	soon := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(72 * time.Hour)

	noDue := &entities.SEOTask{ProductID: p.ID, Title: "Add alt text", Status: entities.TaskStatusTodo}
	second := &entities.SEOTask{ProductID: p.ID, Title: "Write meta", Status: entities.TaskStatusInProgress, DueDate: &later}
	first := &entities.SEOTask{ProductID: p.ID, Title: "Fix title", Status: entities.TaskStatusDone, DueDate: &soon}
	for _, task := range []*entities.SEOTask{noDue, second, first} {
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tasks, err := repo.List(ctx, &p.ID, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 3 || tasks[0].ID != first.ID || tasks[1].ID != second.ID || tasks[2].ID != noDue.ID {
		t.Errorf("tasks not ordered by due date with nulls last")
	}

	open, err := repo.CountOpen(ctx)
	if err != nil || open != 2 {
		t.Errorf("CountOpen = %d, %v; want 2", open, err)
	}

	done := entities.TaskStatusDone
	tasks, _ = repo.List(ctx, nil, &done)
	if len(tasks) != 1 {
		t.Errorf("status filter returned %d", len(tasks))
	}

	if err := repo.Delete(ctx, noDue.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, noDue.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("second delete: %v", err)
	}
	if err := repo.Update(ctx, 12345, map[string]interface{}{"title": "x"}); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("update missing: %v", err)
	}
}
