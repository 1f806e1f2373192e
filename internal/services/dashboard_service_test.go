package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetStats(t *testing.T) {
	projects := new(MockProjectRepository)
	skills := new(MockSkillRepository)
	messages := new(MockMessageRepository)
	certificates := new(MockCertificateRepository)
	service := services.NewDashboardService(projects, skills, messages, certificates)

	now := time.Now()
	recentProjects := []models.ProjectSummary{{ID: "p-1", Title: "Site", CreatedAt: now}}

	projects.On("Count").Return(int64(4), nil)
	skills.On("Count").Return(int64(7), nil)
	messages.On("Count").Return(int64(3), nil)
	messages.On("CountUnread").Return(int64(2), nil)
	certificates.On("Count").Return(int64(1), nil)
	projects.On("Recent", services.RecentActivityLimit).Return(recentProjects, nil)
	messages.On("Recent", services.RecentActivityLimit).Return(nil, nil)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardCounts{Projects: 4, Skills: 7, Messages: 3, Certificates: 1, UnreadMessages: 2}, stats.Stats)
	assert.Equal(t, recentProjects, stats.RecentActivity.Projects)
	assert.NotNil(t, stats.RecentActivity.Messages)
	assert.Empty(t, stats.RecentActivity.Messages)
}

func TestDashboardService_GetStats_Error(t *testing.T) {
	projects := new(MockProjectRepository)
	service := services.NewDashboardService(projects, new(MockSkillRepository), new(MockMessageRepository), new(MockCertificateRepository))

	projects.On("Count").Return(int64(0), errors.New("db down"))

	_, err := service.GetStats(context.Background())
	assert.ErrorContains(t, err, "db down")
}
