package uploader

import (
	"fmt"
	"strings"
)

// MeetingTitle builds the default video title for a meeting.
func MeetingTitle(number int, date string) string {
	if number > 0 {
		return fmt.Sprintf("Spotkanie SKNWPL #%d - %s", number, date)
	}
	return fmt.Sprintf("Spotkanie SKNWPL %s", date)
}

// MeetingDescription builds the YouTube description from the meeting
// date and optional agenda/highlights sections.
func MeetingDescription(date, agenda, highlights string) string {
	parts := []string{
		fmt.Sprintf("Nagranie spotkania Sekcji Koła Naukowego z dnia %s.", date),
		"",
	}

	if agenda != "" {
		parts = append(parts, "AGENDA:", agenda, "")
	}
	if highlights != "" {
		parts = append(parts, "NAJWAŻNIEJSZE PUNKTY:", highlights, "")
	}

	parts = append(parts,
		"---",
		"Automatycznie wygenerowane przez SKNWPL Meetings System",
	)

	return strings.Join(parts, "\n")
}
