package calendar

// DaysPerWeek is the number of grid columns.
const DaysPerWeek = 7

// WeekdayLabels are the column headers, Sunday first.
var WeekdayLabels = [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
