package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ToDoList/task-tracker/internal/models"
	"github.com/google/uuid"
)

type fakeUserStore struct {
	ids map[uuid.UUID]bool
}

func (f *fakeUserStore) Exists(id uuid.UUID) (bool, error) {
	return f.ids[id], nil
}

// fakeTaskStore keeps tasks by value so that in-memory mutations only
// become visible once Save is called, like a real store.
type fakeTaskStore struct {
	tasks map[uuid.UUID]models.Task
	saves int
}

func (f *fakeTaskStore) FindByID(id uuid.UUID) (*models.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (f *fakeTaskStore) FindByUser(userID uuid.UUID) ([]models.Task, error) {
	var out []models.Task
	for _, task := range f.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) Save(task *models.Task) error {
	f.saves++
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskStore) DeleteByID(id uuid.UUID) error {
	delete(f.tasks, id)
	return nil
}

var testNow = time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)

func newTestTaskService() (*TaskService, *fakeUserStore, *fakeTaskStore, uuid.UUID) {
	owner := uuid.New()
	users := &fakeUserStore{ids: map[uuid.UUID]bool{owner: true}}
	tasks := &fakeTaskStore{tasks: map[uuid.UUID]models.Task{}}
	svc := NewTaskService(users, tasks)
	svc.now = func() time.Time { return testNow }
	return svc, users, tasks, owner
}

func TestCreateTaskDerivesBothMacros(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()

	id, err := svc.CreateTask(owner, models.TaskCreateModel{
		Title:       "Finish report !2 !before 15-04-2026",
		Description: "quarterly numbers",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, ok := tasks.tasks[id]
	if !ok {
		t.Fatal("task was not persisted")
	}
	if stored.Title != "Finish report  " {
		t.Errorf("expected both macros stripped, got title %q", stored.Title)
	}
	if stored.Priority != models.PriorityMedium {
		t.Errorf("expected priority Medium, got %s", stored.Priority)
	}
	wantDeadline := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
	if stored.Deadline == nil || !stored.Deadline.Equal(wantDeadline) {
		t.Errorf("expected deadline %v, got %v", wantDeadline, stored.Deadline)
	}
	if stored.Status != models.StatusActive {
		t.Errorf("expected status Active, got %s", stored.Status)
	}
	if stored.UpdateTime != nil {
		t.Errorf("expected no update time on create, got %v", stored.UpdateTime)
	}
	if !stored.CreateTime.Equal(testNow) {
		t.Errorf("expected create time %v, got %v", testNow, stored.CreateTime)
	}
	if stored.UserID != owner {
		t.Errorf("expected owner %s, got %s", owner, stored.UserID)
	}
}

func TestCreateTaskDefaultsPriorityWithoutMacro(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()

	id, err := svc.CreateTask(owner, models.TaskCreateModel{Title: "Water plants"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := tasks.tasks[id]
	if stored.Priority != models.PriorityMedium {
		t.Errorf("expected default Medium, got %s", stored.Priority)
	}
	if stored.Deadline != nil {
		t.Errorf("expected no deadline, got %v", stored.Deadline)
	}
	if stored.Title != "Water plants" {
		t.Errorf("expected title untouched, got %q", stored.Title)
	}
}

func TestCreateTaskExplicitFieldsWin(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()

	priority := models.PriorityCritical
	deadline := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	id, err := svc.CreateTask(owner, models.TaskCreateModel{
		Title:    "Pay rent",
		Priority: &priority,
		Deadline: &deadline,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := tasks.tasks[id]
	if stored.Priority != models.PriorityCritical {
		t.Errorf("expected Critical, got %s", stored.Priority)
	}
	if stored.Deadline == nil || !stored.Deadline.Equal(deadline) {
		t.Errorf("expected deadline %v, got %v", deadline, stored.Deadline)
	}
}

func TestCreateTaskUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestTaskService()

	_, err := svc.CreateTask(uuid.New(), models.TaskCreateModel{Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateTaskInvalidMacroDate(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()

	_, err := svc.CreateTask(owner, models.TaskCreateModel{Title: "Pay taxes !before 31.02.2026"})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if len(tasks.tasks) != 0 {
		t.Error("no task should be persisted on a failed create")
	}
}

func seedTask(tasks *fakeTaskStore, owner uuid.UUID, mutate func(*models.Task)) uuid.UUID {
	task := models.Task{
		ID:         uuid.New(),
		UserID:     owner,
		Title:      "seeded",
		Status:     models.StatusActive,
		Priority:   models.PriorityMedium,
		CreateTime: testNow.Add(-48 * time.Hour),
	}
	if mutate != nil {
		mutate(&task)
	}
	tasks.tasks[task.ID] = task
	return task.ID
}

func TestEditTaskMarksLate(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()
	id := seedTask(tasks, owner, nil)

	yesterday := testNow.Add(-24 * time.Hour)
	err := svc.EditTask(id, owner, models.EditTaskModel{
		Title:       "seeded",
		Description: "done at last",
		Status:      models.StatusCompleted,
		Deadline:    &yesterday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := tasks.tasks[id]
	if stored.Status != models.StatusLate {
		t.Errorf("expected Late, got %s", stored.Status)
	}
	if stored.UpdateTime == nil || !stored.UpdateTime.Equal(testNow) {
		t.Errorf("expected update time %v, got %v", testNow, stored.UpdateTime)
	}
	if stored.Description != "done at last" {
		t.Errorf("expected description updated, got %q", stored.Description)
	}
}

func TestEditTaskStaysActiveWithFutureDeadline(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()
	id := seedTask(tasks, owner, nil)

	tomorrow := testNow.Add(24 * time.Hour)
	err := svc.EditTask(id, owner, models.EditTaskModel{
		Title:    "seeded",
		Status:   models.StatusOverdue,
		Deadline: &tomorrow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tasks.tasks[id].Status; got != models.StatusActive {
		t.Errorf("expected Active, got %s", got)
	}
}

func TestEditTaskStripsBothMacros(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()
	id := seedTask(tasks, owner, nil)

	err := svc.EditTask(id, owner, models.EditTaskModel{
		Title:  "Ship build !4 !before 01.01.2020",
		Status: models.StatusActive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := tasks.tasks[id]
	if stored.Title != "Ship build  " {
		t.Errorf("expected both macros stripped, got %q", stored.Title)
	}
	if stored.Priority != models.PriorityCritical {
		t.Errorf("expected Critical from macro, got %s", stored.Priority)
	}
	// Macro deadline is long past, so the requested Active resolves to
	// Overdue.
	if stored.Status != models.StatusOverdue {
		t.Errorf("expected Overdue, got %s", stored.Status)
	}
}

func TestEditTaskWrongOwner(t *testing.T) {
	svc, users, tasks, owner := newTestTaskService()
	id := seedTask(tasks, owner, nil)

	stranger := uuid.New()
	users.ids[stranger] = true

	err := svc.EditTask(id, stranger, models.EditTaskModel{Title: "hijack", Status: models.StatusActive})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if got := tasks.tasks[id].Title; got != "seeded" {
		t.Errorf("task must be untouched, got title %q", got)
	}
}

func TestEditTaskUnknownTask(t *testing.T) {
	svc, _, _, owner := newTestTaskService()

	err := svc.EditTask(uuid.New(), owner, models.EditTaskModel{Title: "x", Status: models.StatusActive})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()
	id := seedTask(tasks, owner, nil)

	if err := svc.DeleteTask(id, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := tasks.tasks[id]; ok {
		t.Error("task should be gone")
	}
}

func TestDeleteTaskWrongOwner(t *testing.T) {
	svc, users, tasks, owner := newTestTaskService()
	id := seedTask(tasks, owner, nil)

	stranger := uuid.New()
	users.ids[stranger] = true

	if err := svc.DeleteTask(id, stranger); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, ok := tasks.tasks[id]; !ok {
		t.Error("task must survive a denied delete")
	}
}

func TestGetTaskRefreshPersistsOverdue(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()
	yesterday := testNow.Add(-24 * time.Hour)
	id := seedTask(tasks, owner, func(task *models.Task) {
		task.Deadline = &yesterday
	})

	view, err := svc.GetTask(id, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != models.StatusOverdue {
		t.Errorf("expected returned status Overdue, got %s", view.Status)
	}
	if got := tasks.tasks[id].Status; got != models.StatusOverdue {
		t.Errorf("refresh must be persisted, stored status is %s", got)
	}
}

func TestGetTaskLeavesCompletedAlone(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()
	yesterday := testNow.Add(-24 * time.Hour)
	id := seedTask(tasks, owner, func(task *models.Task) {
		task.Status = models.StatusCompleted
		task.Deadline = &yesterday
	})

	savesBefore := tasks.saves
	view, err := svc.GetTask(id, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != models.StatusCompleted {
		t.Errorf("expected Completed, got %s", view.Status)
	}
	if tasks.saves != savesBefore {
		t.Error("an unchanged task must not be re-saved")
	}
}

func TestGetTaskWrongOwner(t *testing.T) {
	svc, users, tasks, owner := newTestTaskService()
	id := seedTask(tasks, owner, nil)

	stranger := uuid.New()
	users.ids[stranger] = true

	if _, err := svc.GetTask(id, stranger); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestListTasksSortsAndProjects(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()
	seedTask(tasks, owner, func(task *models.Task) {
		task.Title = "older"
		task.CreateTime = testNow.Add(-72 * time.Hour)
	})
	seedTask(tasks, owner, func(task *models.Task) {
		task.Title = "newer"
		task.CreateTime = testNow.Add(-24 * time.Hour)
	})

	got, err := svc.ListTasks(owner, models.SortDescCreationTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "newer" || got[1].Title != "older" {
		t.Fatalf("expected [newer older], got %v", titlesOf(got))
	}
}

func TestListTasksDoesNotRefreshOverdue(t *testing.T) {
	svc, _, tasks, owner := newTestTaskService()
	yesterday := testNow.Add(-24 * time.Hour)
	id := seedTask(tasks, owner, func(task *models.Task) {
		task.Deadline = &yesterday
	})

	got, err := svc.ListTasks(owner, models.SortDescCreationTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only single-item reads refresh; listings report the stored status.
	if got[0].Status != models.StatusActive {
		t.Errorf("expected listing to report Active, got %s", got[0].Status)
	}
	if stored := tasks.tasks[id].Status; stored != models.StatusActive {
		t.Errorf("list must not write, stored status is %s", stored)
	}
}

func TestListTasksOnlyOwnTasks(t *testing.T) {
	svc, users, tasks, owner := newTestTaskService()
	other := uuid.New()
	users.ids[other] = true
	seedTask(tasks, owner, nil)
	seedTask(tasks, other, nil)

	got, err := svc.ListTasks(owner, models.SortDescCreationTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
}

func TestListTasksUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestTaskService()

	if _, err := svc.ListTasks(uuid.New(), models.SortDescCreationTime); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
