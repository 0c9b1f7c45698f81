package heuristic

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"caretrack/internal/core/domain"
)

// Draft is a best-effort structured guess extracted from free text. It is
// always usable as a create payload; nothing downstream may rely on the
// guesses being right.
type Draft struct {
	Title       string
	Description string
	Priority    domain.Priority
	DueDate     time.Time
	Patient     *domain.Patient
}

const maxTitleLen = 120

var (
	highKeywords   = []string{"urgent", "immédiat", "immediat", "asap", "stat"}
	mediumKeywords = []string{"important", "priorité", "priorite"}

	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})(?:[/\-](\d{2,4}))?\b`)

	patientPattern   = regexp.MustCompile(`(?i)(?:pour|patient|patiente|chez):?\s+([^,.\n]+)`)
	honorificPattern = regexp.MustCompile(`(?i)\b(m\.?|mr\.?|monsieur|mme\.?|madame|mlle\.?|dr\.?|docteur)\b\.?\s*`)
	markerPattern    = regexp.MustCompile(`(?i)^(?:la\s+|le\s+)?(?:patiente?)\s+`)
	nameStopPattern  = regexp.MustCompile(`(?i)\b(demain|aujourd'hui|tomorrow|today|urgent|important|immédiat|immédiatement|pour|à|a)\b.*`)
	capitalizedPair  = regexp.MustCompile(`\b(\p{Lu}[\p{Ll}'\-]+)\s+(\p{Lu}[\p{Ll}'\-]+)\b`)
)

// Infer extracts a task draft from one free-text instruction, e.g.
// "ECG pour M. Dupont demain matin, urgent". It never fails: anything it
// cannot read falls back to a neutral default.
func Infer(text string, now time.Time) Draft {
	text = strings.TrimSpace(text)

	return Draft{
		Title:       inferTitle(text),
		Description: text,
		Priority:    inferPriority(text),
		DueDate:     inferDueDate(text, now),
		Patient:     inferPatient(text),
	}
}

func inferTitle(text string) string {
	title := text
	if idx := strings.IndexAny(text, ".\n"); idx >= 0 {
		title = text[:idx]
	}
	runes := []rune(title)
	if len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen])
	}
	return strings.TrimSpace(title)
}

func inferPriority(text string) domain.Priority {
	lower := strings.ToLower(text)
	for _, kw := range highKeywords {
		if strings.Contains(lower, kw) {
			return domain.PriorityHigh
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(lower, kw) {
			return domain.PriorityMedium
		}
	}
	return domain.PriorityLow
}

func inferDueDate(text string, now time.Time) time.Time {
	lower := strings.ToLower(text)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if strings.Contains(lower, "aujourd'hui") || strings.Contains(lower, "aujourd’hui") ||
		strings.Contains(lower, "aujourd hui") || strings.Contains(lower, "today") {
		return today
	}
	if strings.Contains(lower, "demain") || strings.Contains(lower, "tomorrow") {
		return today.AddDate(0, 0, 1)
	}

	if m := numericDatePattern.FindStringSubmatch(text); m != nil {
		day := atoiSafe(m[1])
		month := atoiSafe(m[2])
		year := now.Year()
		if m[3] != "" {
			year = atoiSafe(m[3])
			if year < 100 {
				year += 2000
			}
		}
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			// Day-first, the way the source notes are written.
			candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
			if candidate.Day() == day {
				return candidate
			}
		}
	}

	return today
}

func inferPatient(text string) *domain.Patient {
	// Honorifics carry sentence-ending dots ("M.", "Dr.") that would cut the
	// capture short, so they go before matching.
	cleaned := honorificPattern.ReplaceAllString(text, "")

	if m := patientPattern.FindStringSubmatch(cleaned); m != nil {
		if p := buildPatient(m[1]); p != nil {
			return p
		}
	}
	if m := capitalizedPair.FindStringSubmatch(cleaned); m != nil {
		return buildPatient(m[1] + " " + m[2])
	}
	return nil
}

func buildPatient(raw string) *domain.Patient {
	raw = markerPattern.ReplaceAllString(raw, "")
	raw = nameStopPattern.ReplaceAllString(raw, "")
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil
	}

	first := capitalize(tokens[0])
	last := capitalize(tokens[len(tokens)-1])
	if len(tokens) == 1 {
		last = first
	}

	return &domain.Patient{
		ID:        strings.ToLower(last) + "-" + strings.ToLower(first),
		FirstName: first,
		LastName:  last,
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
