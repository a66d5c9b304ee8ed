package board

import (
	"context"

	"github.com/mmcdole/jobboard/internal/domain"
)

var demoJobs = []domain.JobDraft{
	{Title: "Backend Engineer", Company: "Northwind", Location: "Remote", Description: "Build and operate Go services behind our job marketplace.", Tags: []string{"Go", "PostgreSQL"}},
	{Title: "Product Designer", Company: "Acme", Location: "Tashkent", Description: "Own the hiring flow from first sketch to shipped screens.", Tags: []string{"Figma", "Research"}},
	{Title: "QA Engineer", Company: "Globex", Location: "Berlin", Description: "Design test plans and automate the regression suite.", JobType: "Contract"},
	{Title: "Data Analyst", Company: "Initech", Location: "Remote", Description: "Turn application funnels into weekly insights.", JobType: "Part Time"},
}

var demoSpecialists = []domain.SpecialistDraft{
	{FullName: "Ada Lovelace", Email: "ada@example.com", Profession: "Engineer", Location: "London", Skills: []string{"Math", "Algorithms"}},
	{FullName: "Grace Hopper", Email: "grace@example.com", Profession: "Developer", Location: "New York", Skills: []string{"COBOL", "Compilers"}},
	{FullName: "Dieter Rams", Email: "dieter@example.com", Profession: "Designer", Location: "Kronberg", Skills: []string{"Industrial design"}},
}

// SeedDemo fills empty collections with sample records. Collections that
// already hold data are left alone.
func (s *Service) SeedDemo(ctx context.Context) error {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		for _, draft := range demoJobs {
			if _, err := s.CreateJob(ctx, draft); err != nil {
				return err
			}
		}
	}

	specialists, err := s.specialists.List(ctx)
	if err != nil {
		return err
	}
	if len(specialists) == 0 {
		for _, draft := range demoSpecialists {
			if _, err := s.CreateSpecialist(ctx, draft); err != nil {
				return err
			}
		}
	}

	s.logger.Debug("demo data ready")
	return nil
}
