package availability

// Policy holds the booking-policy knobs. The defaults reproduce the
// production calendar behavior; deployments override them through config.
type Policy struct {
	// GranularityMinutes is the step between generated candidate starts.
	GranularityMinutes int
	// CutoffHour is the wall-clock hour on the query day after which the
	// earliest bookable day closes (14 = bookings for tomorrow must be
	// requested before 2pm today).
	CutoffHour int
	// MinLeadDays is the number of days between the query day and the
	// earliest bookable day. 1 means same-day bookings are impossible.
	MinLeadDays int
	// DefaultBookingDuration is assumed for existing bookings that carry no
	// duration of their own.
	DefaultBookingDuration int
}

// DefaultPolicy returns the reference policy values.
func DefaultPolicy() Policy {
	return Policy{
		GranularityMinutes:     10,
		CutoffHour:             14,
		MinLeadDays:            1,
		DefaultBookingDuration: 20,
	}
}

// orDefaults fills unset fields so a zero-value Policy behaves like
// DefaultPolicy.
func (p Policy) orDefaults() Policy {
	def := DefaultPolicy()
	if p.GranularityMinutes <= 0 {
		p.GranularityMinutes = def.GranularityMinutes
	}
	if p.CutoffHour <= 0 {
		p.CutoffHour = def.CutoffHour
	}
	if p.MinLeadDays < 0 {
		p.MinLeadDays = def.MinLeadDays
	}
	if p.DefaultBookingDuration <= 0 {
		p.DefaultBookingDuration = def.DefaultBookingDuration
	}
	return p
}
