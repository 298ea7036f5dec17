package project

import (
	"context"

	"github.com/glassdash/crm-backend-go/internal/domain/project"
	"github.com/google/uuid"
)

type ProjectServiceImpl struct {
	projectRepo project.Repository
}

func NewProjectService(projectRepo project.Repository) project.Service {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	status := project.Status(req.Status)
	if req.Status == "" {
		status = project.StatusInProgress
	}

	newProject := project.Project{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Client: req.Client,
		Status: status,
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return project.Project{}, err
	}
	if err := s.projectRepo.Save(ctx, append(projects, newProject)); err != nil {
		return project.Project{}, err
	}
	return newProject, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return project.Project{}, err
	}

	for i, p := range projects {
		if p.ID != id {
			continue
		}
		p.Name = req.Name
		p.Client = req.Client
		if req.Status != "" {
			p.Status = project.Status(req.Status)
		}
		if req.Progress != nil {
			p.Progress = *req.Progress
		}
		projects[i] = p
		if err := s.projectRepo.Save(ctx, projects); err != nil {
			return project.Project{}, err
		}
		return p, nil
	}
	return project.Project{}, project.ErrProjectNotFound
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := projects[:0]
	found := false
	for _, p := range projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return project.ErrProjectNotFound
	}
	return s.projectRepo.Save(ctx, kept)
}
