package api

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/mmcdole/jobboard/internal/domain"
)

// errorResponse covers the error bodies seen in the wild:
// {"message": ...}, {"detail": ...} (Django REST framework), {"error": ...}
type errorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   string `json:"error"`
}

// pagedResponse is the envelope used by paginated collection endpoints
type pagedResponse[T any] struct {
	Results []T `json:"results"`
}

// JobDTO is the wire shape of a job
type JobDTO struct {
	ID          domain.ID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	JobType     string    `json:"job_type"`
	Tags        []string  `json:"tags"`
}

// SpecialistDTO is the wire shape of a specialist.
// The name arrives as full_name or fullName depending on the endpoint.
type SpecialistDTO struct {
	ID            domain.ID `json:"id"`
	FullName      string    `json:"full_name"`
	FullNameCamel string    `json:"fullName"`
	Email         string    `json:"email"`
	Profession    string    `json:"profession"`
	Location      string    `json:"location"`
	Skills        skillList `json:"skills"`
	Username      string    `json:"username"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Bio           string    `json:"bio"`
}

// skillList accepts ["go", "sql"] as well as "go, sql"
type skillList []string

func (s *skillList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}

	if data[0] == '"' {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		*s = splitSkills(joined)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

func splitSkills(joined string) []string {
	var skills []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// decodeList parses a bare JSON array or a {"results": [...]} envelope
func decodeList[T any](body []byte) ([]T, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, false
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, false
		}
		return items, true
	case '{':
		var paged pagedResponse[T]
		if err := json.Unmarshal(trimmed, &paged); err != nil || paged.Results == nil {
			return nil, false
		}
		return paged.Results, true
	default:
		return nil, false
	}
}

func escapeID(id domain.ID) string {
	return url.PathEscape(string(id))
}
