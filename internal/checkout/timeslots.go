package checkout

import (
	"fmt"
	"time"
)

// Restaurant hours: 11:00 - 22:00.
const (
	openingHour = 11
	closingHour = 22
)

// PickupSlots returns the pickup times offered at the given moment, in
// 30-minute steps from max(opening, next full hour) up to closing. When
// the current minute is already past :30, the first hour keeps only its
// :00 slot. The sequence is capped at maxSlots and recomputed on every
// call, never cached.
func PickupSlots(now time.Time, maxSlots int) []string {
	var slots []string
	currentHour := now.Hour()
	currentMinute := now.Minute()

	startHour := currentHour + 1
	if startHour < openingHour {
		startHour = openingHour
	}

	for hour := startHour; hour < closingHour; hour++ {
		if hour == currentHour+1 && currentMinute > 30 {
			slots = append(slots, fmt.Sprintf("%02d:00", hour))
		} else {
			slots = append(slots, fmt.Sprintf("%02d:00", hour))
			slots = append(slots, fmt.Sprintf("%02d:30", hour))
		}
	}

	if maxSlots > 0 && len(slots) > maxSlots {
		slots = slots[:maxSlots]
	}
	return slots
}
