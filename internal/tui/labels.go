package tui

import (
	"caretrack/internal/core/domain"
	"caretrack/internal/grid"
	"caretrack/pkg/translator"
)

// BuildLabels resolves the grid's enum labels through the translation bundle
// so the grid filters over exactly what the user sees on screen.
func BuildLabels(lang string) grid.LabelSet {
	return grid.LabelSet{
		Priority: map[domain.Priority]string{
			domain.PriorityLow:    translator.Localize(lang, "priorityLow"),
			domain.PriorityMedium: translator.Localize(lang, "priorityMedium"),
			domain.PriorityHigh:   translator.Localize(lang, "priorityHigh"),
		},
		Status: map[domain.Status]string{
			domain.StatusPending:    translator.Localize(lang, "statusPending"),
			domain.StatusInProgress: translator.Localize(lang, "statusInProgress"),
			domain.StatusCompleted:  translator.Localize(lang, "statusCompleted"),
			domain.StatusCancelled:  translator.Localize(lang, "statusCancelled"),
		},
		Category: map[domain.Category]string{
			domain.CategoryExamination:  translator.Localize(lang, "categoryExamination"),
			domain.CategorySurgery:      translator.Localize(lang, "categorySurgery"),
			domain.CategoryMedication:   translator.Localize(lang, "categoryMedication"),
			domain.CategoryConsultation: translator.Localize(lang, "categoryConsultation"),
			domain.CategoryFollowUp:     translator.Localize(lang, "categoryFollowUp"),
		},
		Role: map[domain.Role]string{
			domain.RoleDoctor:     translator.Localize(lang, "roleDoctor"),
			domain.RoleNurse:      translator.Localize(lang, "roleNurse"),
			domain.RoleSpecialist: translator.Localize(lang, "roleSpecialist"),
		},
	}
}
