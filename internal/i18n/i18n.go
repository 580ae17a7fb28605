// Package i18n holds the CLI output string tables.
package i18n

import "github.com/tiwariank/goaleasy/internal/model"

// Strings is the set of translated labels the CLI prints.
type Strings struct {
	Today         string
	ThisWeek      string
	ThisMonth     string
	AllTime       string
	DaysRemaining string
	Streak        string
	Todo          string
	Doing         string
	Done          string
	Motivation    string
	GoalProgress  string
}

var tables = map[model.Language]Strings{
	model.LangEnglish: {
		Today:         "Today",
		ThisWeek:      "This Week",
		ThisMonth:     "This Month",
		AllTime:       "All Time",
		DaysRemaining: "days remaining",
		Streak:        "day streak",
		Todo:          "To Do",
		Doing:         "Doing",
		Done:          "Done",
		Motivation:    "Small steps every day lead to big results",
		GoalProgress:  "Goal Progress",
	},
	model.LangHindi: {
		Today:         "आज",
		ThisWeek:      "इस सप्ताह",
		ThisMonth:     "इस महीने",
		AllTime:       "अब तक",
		DaysRemaining: "दिन शेष",
		Streak:        "दिन की स्ट्रीक",
		Todo:          "करना है",
		Doing:         "चल रहा है",
		Done:          "पूर्ण",
		Motivation:    "हर दिन छोटे कदम बड़े नतीजे लाते हैं",
		GoalProgress:  "लक्ष्य प्रगति",
	},
}

// For returns the string table for lang, falling back to English.
func For(lang model.Language) Strings {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[model.LangEnglish]
}

// FilterLabel returns the translated name of a dashboard filter.
func FilterLabel(lang model.Language, f model.Filter) string {
	t := For(lang)
	switch f {
	case model.FilterToday:
		return t.Today
	case model.FilterWeek:
		return t.ThisWeek
	case model.FilterMonth:
		return t.ThisMonth
	default:
		return t.AllTime
	}
}

// StatusLabel returns the translated name of a milestone column.
func StatusLabel(lang model.Language, s model.MilestoneStatus) string {
	t := For(lang)
	switch s {
	case model.StatusTodo:
		return t.Todo
	case model.StatusDoing:
		return t.Doing
	default:
		return t.Done
	}
}
