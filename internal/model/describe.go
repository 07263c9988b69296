package model

import (
	"fmt"
	"time"
)

// Describe renders the action as a one-line notification, e.g.
//
//	"alice" pushed to "main" on 1st January 2024 - 12:00 AM UTC
//
// It returns false when the action lacks a field the sentence needs.
func (a Action) Describe() (string, bool) {
	if a.Author == "" || a.Timestamp.IsZero() {
		return "", false
	}
	when := FormatNotificationTime(a.Timestamp)

	switch a.Kind {
	case ActionPush:
		if a.ToBranch == "" {
			return "", false
		}
		return fmt.Sprintf("%q pushed to %q on %s", a.Author, a.ToBranch, when), true
	case ActionPullRequest:
		if a.FromBranch == "" || a.ToBranch == "" {
			return "", false
		}
		return fmt.Sprintf("%q submitted a pull request from %q to %q on %s", a.Author, a.FromBranch, a.ToBranch, when), true
	case ActionMerge:
		if a.FromBranch == "" || a.ToBranch == "" {
			return "", false
		}
		return fmt.Sprintf("%q merged branch %q to %q on %s", a.Author, a.FromBranch, a.ToBranch, when), true
	default:
		return "", false
	}
}

// FormatNotificationTime formats t in UTC as "2nd March 2024 - 3:04 PM UTC".
func FormatNotificationTime(t time.Time) string {
	t = t.UTC()
	day := t.Day()
	return fmt.Sprintf("%d%s %s", day, ordinalSuffix(day), t.Format("January 2006 - 3:04 PM UTC"))
}

func ordinalSuffix(day int) string {
	switch {
	case day%10 == 1 && day != 11:
		return "st"
	case day%10 == 2 && day != 12:
		return "nd"
	case day%10 == 3 && day != 13:
		return "rd"
	default:
		return "th"
	}
}
