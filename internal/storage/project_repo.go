package storage

import (
	"context"
	"sort"

	"github.com/runwayhq/backend/internal/model"
)

// ProjectRepo provides operations for Project records.
type ProjectRepo struct {
	repo
}

// NewProjectRepo creates a new project repository.
func NewProjectRepo(s Store) *ProjectRepo {
	return &ProjectRepo{repo: newRepo(s)}
}

// List retrieves all projects, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	projects, err := GetAllByPrefix[model.Project](ctx, r.store, model.PrefixProject+":")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

// Create adds a project. Start and end dates default to the creation
// day and status to "planning" when absent.
func (r *ProjectRepo) Create(ctx context.Context, in model.ProjectInput) (model.Project, error) {
	now := r.now().UTC()
	today := model.DateOnly(now)

	project := model.Project{
		ID:        model.NewKey(model.PrefixProject, now),
		Name:      in.Name,
		Budget:    in.Budget.Float(),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Code:      in.Code,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      []string{},
	}
	if project.StartDate == "" {
		project.StartDate = today
	}
	if project.EndDate == "" {
		project.EndDate = today
	}
	if project.Status == "" {
		project.Status = model.DefaultProjectStatus
	}

	if err := r.store.Set(ctx, project.ID, project); err != nil {
		return model.Project{}, err
	}
	return project, nil
}

// Update merges the payload over an existing project; omitted dates and
// status keep their prior values. Returns ErrKeyNotFound when the
// project does not exist.
func (r *ProjectRepo) Update(ctx context.Context, id string, in model.ProjectInput) (model.Project, error) {
	var project model.Project
	if err := r.store.Get(ctx, id, &project); err != nil {
		return model.Project{}, err
	}

	project.Name = in.Name
	project.Budget = in.Budget.Float()
	project.Code = in.Code
	if in.StartDate != "" {
		project.StartDate = in.StartDate
	}
	if in.EndDate != "" {
		project.EndDate = in.EndDate
	}
	if in.Status != "" {
		project.Status = in.Status
	}
	project.UpdatedAt = r.now().UTC()

	if err := r.store.Set(ctx, id, project); err != nil {
		return model.Project{}, err
	}
	return project, nil
}

// Delete removes a project unconditionally.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
