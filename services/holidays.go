package services

// Known holiday departure dates for the two seasons currently sold. This is
// a fixed membership table, not a holiday calendar: dates outside 2025-2026
// simply return false.
var holidayDates = map[string]bool{
	// 2025
	"2025-01-01": true,
	"2025-01-06": true,
	"2025-04-17": true,
	"2025-04-18": true,
	"2025-05-01": true,
	"2025-08-15": true,
	"2025-10-12": true,
	"2025-11-01": true,
	"2025-12-06": true,
	"2025-12-08": true,
	"2025-12-25": true,
	// 2026
	"2026-01-01": true,
	"2026-01-06": true,
	"2026-04-02": true,
	"2026-04-03": true,
	"2026-05-01": true,
	"2026-08-15": true,
	"2026-10-12": true,
	"2026-11-01": true,
	"2026-12-06": true,
	"2026-12-08": true,
	"2026-12-25": true,
}

// IsHoliday reports whether the YYYY-MM-DD date is in the static table.
func IsHoliday(date string) bool {
	return holidayDates[date]
}
