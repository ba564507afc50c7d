package store

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// The helpers below never modify their input slice; they return a new one
// when something changes, so earlier snapshots stay intact.

func indexOf[T types.Record](items []T, id string) int {
	for i, item := range items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

func appended[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

func updated[T types.Record](items []T, id string, apply func(T) T) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i] = apply(items[i])
	return out, true
}

func removed[T types.Record](items []T, id string) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}

// moved shifts the record by delta positions, clamped to the bounds.
func moved[T types.Record](items []T, id string, delta int) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	j := min(max(i+delta, 0), len(items)-1)
	if i == j {
		return items, false
	}
	out := make([]T, 0, len(items))
	rest := append(append(make([]T, 0, len(items)-1), items[:i]...), items[i+1:]...)
	out = append(out, rest[:j]...)
	out = append(out, items[i])
	return append(out, rest[j:]...), true
}

// Experience

// AddExperience appends an empty position and returns its id.
func (s *Store) AddExperience() string {
	id := s.newID()
	s.mutate("add_experience", func(doc *types.Resume) bool {
		doc.Experience = appended(doc.Experience, types.NewExperience(id))
		return true
	})
	return id
}

// UpdateExperience merges patch into the position with the given id. An
// unknown id is ignored.
func (s *Store) UpdateExperience(id string, patch types.ExperiencePatch) {
	s.mutate("update_experience", func(doc *types.Resume) (ok bool) {
		doc.Experience, ok = updated(doc.Experience, id, patch.Apply)
		return ok
	})
}

// RemoveExperience deletes the position with the given id, if present.
func (s *Store) RemoveExperience(id string) {
	s.mutate("remove_experience", func(doc *types.Resume) (ok bool) {
		doc.Experience, ok = removed(doc.Experience, id)
		return ok
	})
}

// MoveExperience shifts a position up (negative delta) or down.
func (s *Store) MoveExperience(id string, delta int) {
	s.mutate("move_experience", func(doc *types.Resume) (ok bool) {
		doc.Experience, ok = moved(doc.Experience, id, delta)
		return ok
	})
}

// Education

// AddEducation appends an empty education entry and returns its id.
func (s *Store) AddEducation() string {
	id := s.newID()
	s.mutate("add_education", func(doc *types.Resume) bool {
		doc.Education = appended(doc.Education, types.NewEducation(id))
		return true
	})
	return id
}

// UpdateEducation merges patch into the entry with the given id.
func (s *Store) UpdateEducation(id string, patch types.EducationPatch) {
	s.mutate("update_education", func(doc *types.Resume) (ok bool) {
		doc.Education, ok = updated(doc.Education, id, patch.Apply)
		return ok
	})
}

// RemoveEducation deletes the entry with the given id, if present.
func (s *Store) RemoveEducation(id string) {
	s.mutate("remove_education", func(doc *types.Resume) (ok bool) {
		doc.Education, ok = removed(doc.Education, id)
		return ok
	})
}

// MoveEducation shifts an entry by delta positions.
func (s *Store) MoveEducation(id string, delta int) {
	s.mutate("move_education", func(doc *types.Resume) (ok bool) {
		doc.Education, ok = moved(doc.Education, id, delta)
		return ok
	})
}

// Skills

// AddSkill appends an intermediate-level skill and returns its id.
func (s *Store) AddSkill() string {
	id := s.newID()
	s.mutate("add_skill", func(doc *types.Resume) bool {
		doc.Skills = appended(doc.Skills, types.NewSkill(id))
		return true
	})
	return id
}

// UpdateSkill merges patch into the skill with the given id. A level outside
// the enumeration is rejected without changing anything.
func (s *Store) UpdateSkill(id string, patch types.SkillPatch) error {
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	s.mutate("update_skill", func(doc *types.Resume) (ok bool) {
		doc.Skills, ok = updated(doc.Skills, id, patch.Apply)
		return ok
	})
	return nil
}

// RemoveSkill deletes the skill with the given id, if present.
func (s *Store) RemoveSkill(id string) {
	s.mutate("remove_skill", func(doc *types.Resume) (ok bool) {
		doc.Skills, ok = removed(doc.Skills, id)
		return ok
	})
}

// MoveSkill shifts a skill by delta positions.
func (s *Store) MoveSkill(id string, delta int) {
	s.mutate("move_skill", func(doc *types.Resume) (ok bool) {
		doc.Skills, ok = moved(doc.Skills, id, delta)
		return ok
	})
}

// Certifications

// AddCertification appends an empty certification and returns its id.
func (s *Store) AddCertification() string {
	id := s.newID()
	s.mutate("add_certification", func(doc *types.Resume) bool {
		doc.Certifications = appended(doc.Certifications, types.NewCertification(id))
		return true
	})
	return id
}

// UpdateCertification merges patch into the certification with the given id.
func (s *Store) UpdateCertification(id string, patch types.CertificationPatch) {
	s.mutate("update_certification", func(doc *types.Resume) (ok bool) {
		doc.Certifications, ok = updated(doc.Certifications, id, patch.Apply)
		return ok
	})
}

// RemoveCertification deletes the certification with the given id, if present.
func (s *Store) RemoveCertification(id string) {
	s.mutate("remove_certification", func(doc *types.Resume) (ok bool) {
		doc.Certifications, ok = removed(doc.Certifications, id)
		return ok
	})
}

// MoveCertification shifts a certification by delta positions.
func (s *Store) MoveCertification(id string, delta int) {
	s.mutate("move_certification", func(doc *types.Resume) (ok bool) {
		doc.Certifications, ok = moved(doc.Certifications, id, delta)
		return ok
	})
}

// Projects

// AddProject appends an empty project and returns its id.
func (s *Store) AddProject() string {
	id := s.newID()
	s.mutate("add_project", func(doc *types.Resume) bool {
		doc.Projects = appended(doc.Projects, types.NewProject(id))
		return true
	})
	return id
}

// UpdateProject merges patch into the project with the given id.
func (s *Store) UpdateProject(id string, patch types.ProjectPatch) {
	s.mutate("update_project", func(doc *types.Resume) (ok bool) {
		doc.Projects, ok = updated(doc.Projects, id, patch.Apply)
		return ok
	})
}

// RemoveProject deletes the project with the given id, if present.
func (s *Store) RemoveProject(id string) {
	s.mutate("remove_project", func(doc *types.Resume) (ok bool) {
		doc.Projects, ok = removed(doc.Projects, id)
		return ok
	})
}

// MoveProject shifts a project by delta positions.
func (s *Store) MoveProject(id string, delta int) {
	s.mutate("move_project", func(doc *types.Resume) (ok bool) {
		doc.Projects, ok = moved(doc.Projects, id, delta)
		return ok
	})
}

// Languages

// AddLanguage appends a conversational-level language and returns its id.
func (s *Store) AddLanguage() string {
	id := s.newID()
	s.mutate("add_language", func(doc *types.Resume) bool {
		doc.Languages = appended(doc.Languages, types.NewLanguage(id))
		return true
	})
	return id
}

// UpdateLanguage merges patch into the language with the given id. A
// proficiency outside the enumeration is rejected without changing anything.
func (s *Store) UpdateLanguage(id string, patch types.LanguagePatch) error {
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("failed to update language: %w", err)
	}
	s.mutate("update_language", func(doc *types.Resume) (ok bool) {
		doc.Languages, ok = updated(doc.Languages, id, patch.Apply)
		return ok
	})
	return nil
}

// RemoveLanguage deletes the language with the given id, if present.
func (s *Store) RemoveLanguage(id string) {
	s.mutate("remove_language", func(doc *types.Resume) (ok bool) {
		doc.Languages, ok = removed(doc.Languages, id)
		return ok
	})
}

// MoveLanguage shifts a language by delta positions.
func (s *Store) MoveLanguage(id string, delta int) {
	s.mutate("move_language", func(doc *types.Resume) (ok bool) {
		doc.Languages, ok = moved(doc.Languages, id, delta)
		return ok
	})
}

// Awards

// AddAward appends an empty award and returns its id.
func (s *Store) AddAward() string {
	id := s.newID()
	s.mutate("add_award", func(doc *types.Resume) bool {
		doc.Awards = appended(doc.Awards, types.NewAward(id))
		return true
	})
	return id
}

// UpdateAward merges patch into the award with the given id.
func (s *Store) UpdateAward(id string, patch types.AwardPatch) {
	s.mutate("update_award", func(doc *types.Resume) (ok bool) {
		doc.Awards, ok = updated(doc.Awards, id, patch.Apply)
		return ok
	})
}

// RemoveAward deletes the award with the given id, if present.
func (s *Store) RemoveAward(id string) {
	s.mutate("remove_award", func(doc *types.Resume) (ok bool) {
		doc.Awards, ok = removed(doc.Awards, id)
		return ok
	})
}

// MoveAward shifts an award by delta positions.
func (s *Store) MoveAward(id string, delta int) {
	s.mutate("move_award", func(doc *types.Resume) (ok bool) {
		doc.Awards, ok = moved(doc.Awards, id, delta)
		return ok
	})
}
