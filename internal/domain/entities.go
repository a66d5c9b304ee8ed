package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultJobType is used when a job is posted without an employment type
const DefaultJobType = "Full Time"

// JobTypes lists the employment types offered by the create form
var JobTypes = []string{"Full Time", "Part Time", "Internship", "Remote"}

// ID is an opaque, server-assigned identifier.
// The wire format may carry it as a JSON string or a JSON number.
type ID string

// IsZero reports whether the identifier is missing
func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts both string and numeric identifiers
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes integer identifiers as JSON numbers, everything else as strings
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Job represents a job posting
type Job struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	JobType     string   `json:"job_type"`
	Tags        []string `json:"tags,omitempty"`
}

// ListItem interface implementation for Job

func (j *Job) GetID() ID              { return j.ID }
func (j *Job) GetTitle() string       { return j.Title }
func (j *Job) GetDescription() string { return j.Description }
func (j *Job) GetTags() []string      { return j.Tags }

func (j *Job) GetSubtitle() string {
	location := j.Location
	if location == "" {
		location = "Unknown"
	}
	if j.Company == "" {
		return location
	}
	return j.Company + " • " + location
}

// TypeLabel returns the employment type, falling back to the default
func (j *Job) TypeLabel() string {
	if j.JobType == "" {
		return DefaultJobType
	}
	return j.JobType
}

// Specialist represents a candidate profile
type Specialist struct {
	ID         ID       `json:"id"`
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Profession string   `json:"profession"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`

	// Detail-only fields
	Username string `json:"username,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// ListItem interface implementation for Specialist

func (s *Specialist) GetID() ID         { return s.ID }
func (s *Specialist) GetTags() []string { return s.Skills }

// GetName returns the raw name, empty when the profile has none
func (s *Specialist) GetName() string { return s.FullName }

func (s *Specialist) GetTitle() string {
	if s.FullName == "" {
		return "Specialist"
	}
	return s.FullName
}

func (s *Specialist) GetSubtitle() string {
	profession := s.Profession
	if profession == "" {
		profession = "Developer"
	}
	location := s.Location
	if location == "" {
		location = "Unknown location"
	}
	return profession + " • " + location
}

func (s *Specialist) GetDescription() string {
	if s.Bio != "" {
		return s.Bio
	}
	if s.Email == "" {
		return "No email"
	}
	return s.Email
}

// Initial returns the avatar letter shown next to the name
func (s *Specialist) Initial() string {
	for _, r := range s.FullName {
		return strings.ToUpper(string(r))
	}
	return "S"
}

// User is an account registered through the demo auth endpoints.
// PasswordHash never leaves the server.
type User struct {
	ID           ID     `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
