package web

// Sample inputs pre-filled in the two input tabs.
const (
	SampleTranscript = `Um, hi. Thank you again so much for agreeing to help me sort out my calendar for the next month... So, uh, in July, I actually have, um, holiday planned in July from, uh, July 20th until, uh, July 25th... And then on the 28th of July, I have a huge meeting at 3:00 PM... Um, on the 4th of July, that is a holiday... On the 12th and the 16th, I have a huge, huge meeting with Sarah. From Amazon... at 12 noon... Also on the 16th at um, 9:00 AM I actually have a dentist appointment... On the 1st of July... I have a eye appointment... at 4:00 PM... On the 11th of July. We have the company, uh, the company party... 7:00 PM at the Hilton Hotel downtown... Can you just add a reminder before my holiday that I need to, um, book the hotel and book the flights the week before...`

	SampleTaskInstructions = `a. Open your Google Calendar and switch to the Month view.
b. Create a new event scheduled on the second Thursday of the current month, then set it to repeat monthly on the same weekday and position (third Wednesday).
c. Adjust the recurrence settings so the event automatically ends after four occurrences.
d. Title the event "Team Meeting" and select the correct time slot.
e. Set the event duration to 30 minutes, ensuring the start and end times are accurate.
f. In the event description, insert a bullet-point agenda that includes: Introduction, Last Meeting's Minutes, New Business, Additional Updates, Open Discussion.
g. Change the event color to purple.
h. Add two notifications: One email reminder 24 hours before the event, One notification 10 minutes before the event.`
)
