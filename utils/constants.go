// File: utils/constants.go
package utils

import "time"

// TimeslotCachePrefix is the prefix used for Redis timeslot cache keys.
const TimeslotCachePrefix = "timeslots:"

// TeamCachePrefix is the prefix used for Redis team cache keys.
const TeamCachePrefix = "team:"

// TeamCacheTTL is the time-to-live for cached team documents.
const TeamCacheTTL = 10 * time.Minute

// DayIDLayout is the wire format for day identifiers ("2006-01-02").
const DayIDLayout = "2006-01-02"

// MonthIDLayout is the wire format for month identifiers ("2006-01").
const MonthIDLayout = "2006-01"

// YearIDLayout is the wire format for year identifiers ("2006").
const YearIDLayout = "2006"
