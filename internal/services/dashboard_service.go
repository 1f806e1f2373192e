package services

import (
	"context"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

// RecentActivityLimit is the number of projects and messages in the activity feed.
const RecentActivityLimit = 3

// DashboardService aggregates counts across resources for the admin overview.
type DashboardService struct {
	projects     repositories.ProjectRepository
	skills       repositories.SkillRepository
	messages     repositories.MessageRepository
	certificates repositories.CertificateRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	projects repositories.ProjectRepository,
	skills repositories.SkillRepository,
	messages repositories.MessageRepository,
	certificates repositories.CertificateRepository,
) *DashboardService {
	return &DashboardService{
		projects:     projects,
		skills:       skills,
		messages:     messages,
		certificates: certificates,
	}
}

// GetStats reads each count independently; the result is display-only and
// may mix values from concurrent writes.
func (s *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		out models.DashboardStats
		err error
	)
	if out.Stats.Projects, err = s.projects.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if out.Stats.Skills, err = s.skills.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if out.Stats.Messages, err = s.messages.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if out.Stats.UnreadMessages, err = s.messages.CountUnread(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if out.Stats.Certificates, err = s.certificates.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if out.RecentActivity.Projects, err = s.projects.Recent(ctx, RecentActivityLimit); err != nil {
		return nil, fmt.Errorf("dashboard recent projects: %w", err)
	}
	if out.RecentActivity.Messages, err = s.messages.Recent(ctx, RecentActivityLimit); err != nil {
		return nil, fmt.Errorf("dashboard recent messages: %w", err)
	}
	if out.RecentActivity.Projects == nil {
		out.RecentActivity.Projects = []models.ProjectSummary{}
	}
	if out.RecentActivity.Messages == nil {
		out.RecentActivity.Messages = []models.MessageSummary{}
	}
	return &out, nil
}
