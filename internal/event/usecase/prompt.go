package usecase

import (
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/pkg/datemath"
)

const (
	extractTemperature = 0.2
	extractMaxTokens   = 8192
)

// buildExtractPrompt renders the instruction sent with every extraction. It
// depends only on its arguments.
func buildExtractPrompt(text string, mode event.Mode, today datemath.Date) string {
	subject := "transcript"
	if mode == event.ModeTask {
		subject = "instruction set"
	}

	var sb strings.Builder
	sb.WriteString("You are an expert Personal Assistant.\n")
	sb.WriteString(fmt.Sprintf("Analyze the following %s.\n", subject))
	sb.WriteString(fmt.Sprintf("Today's date is %s (%s).\n\n", today, today.Weekday()))

	sb.WriteString(`If it's an instruction to create a recurring meeting (e.g., "second Thursday", "repeats third Wednesday"):
1. Calculate the EXACT dates for all occurrences.
2. Return each occurrence as an individual event object in the array, with isRecurring set to true and a shared recurrenceId.
3. Ensure the 'title', 'time', 'duration', 'description' (bullet points), 'color', and 'notifications' are correctly mapped.

Rules for response:
- Resolve relative dates ("next Tuesday", "the 28th") against today's date.
- Format dates as YYYY-MM-DD and times as HH:MM in 24-hour form. Omit 'time' for all-day events.
- For events spanning several days set 'endDate' to the last day, inclusive.
- 'type' is one of MEETING, HOLIDAY, APPOINTMENT, PARTY, REMINDER, OTHER.
- 'duration' and 'timeBefore' are minutes.
- If color "purple" is requested, set color to "#9333ea".
- If specific notifications are requested (e.g. 24h email), include them in the notifications array with type EMAIL or POPUP.
- Return a JSON array. Return an empty array when the input contains no events.

Input:
`)
	sb.WriteString(fmt.Sprintf("%q\n", text))
	return sb.String()
}
