// Package datefmt renders durations and timestamps through token templates.
//
// A template is free text containing runs of the letters
//
//	Y  years     M  months    D  days
//	h  hours     m  minutes   s  seconds   S  milliseconds
//
// The length of a run sets the minimum width of the value, padded with
// leading zeros. A value wider than its run is printed in full, never
// truncated. Any other character passes through literally. Only the leftmost
// run of each letter is substituted.
//
// Years, months and days are measured as the distance from epoch zero
// (1970-01-01 00:00:00 wall-clock time in the value's location), so a
// duration expressed as "epoch + d" renders with calendar-field semantics:
// 90 seconds with "mm:ss" prints "01:30", 26 hours with "D hh" prints "1 02".
package datefmt
