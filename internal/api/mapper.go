package api

import (
	"strings"

	"github.com/mmcdole/jobboard/internal/domain"
)

// MapJob converts a wire job to a domain job
func MapJob(dto JobDTO) *domain.Job {
	return &domain.Job{
		ID:          dto.ID,
		Title:       strings.TrimSpace(dto.Title),
		Company:     strings.TrimSpace(dto.Company),
		Location:    strings.TrimSpace(dto.Location),
		Description: dto.Description,
		JobType:     strings.TrimSpace(dto.JobType),
		Tags:        dto.Tags,
	}
}

// MapJobs converts wire jobs, skipping records without an identifier
func MapJobs(dtos []JobDTO) (jobs []*domain.Job, skipped int) {
	jobs = make([]*domain.Job, 0, len(dtos))
	for _, dto := range dtos {
		if dto.ID.IsZero() {
			skipped++
			continue
		}
		jobs = append(jobs, MapJob(dto))
	}
	return jobs, skipped
}

// MapSpecialist converts a wire specialist to a domain specialist
func MapSpecialist(dto SpecialistDTO) *domain.Specialist {
	name := dto.FullName
	if name == "" {
		name = dto.FullNameCamel
	}
	return &domain.Specialist{
		ID:         dto.ID,
		FullName:   strings.TrimSpace(name),
		Email:      strings.TrimSpace(dto.Email),
		Profession: strings.TrimSpace(dto.Profession),
		Location:   strings.TrimSpace(dto.Location),
		Skills:     []string(dto.Skills),
		Username:   dto.Username,
		Phone:      dto.Phone,
		Address:    dto.Address,
		Bio:        dto.Bio,
	}
}

// MapSpecialists converts wire specialists, skipping records without an identifier
func MapSpecialists(dtos []SpecialistDTO) (specialists []*domain.Specialist, skipped int) {
	specialists = make([]*domain.Specialist, 0, len(dtos))
	for _, dto := range dtos {
		if dto.ID.IsZero() {
			skipped++
			continue
		}
		specialists = append(specialists, MapSpecialist(dto))
	}
	return specialists, skipped
}
