package types

import "time"

// TimeOfDay is the coarse daypart a recommendation targets.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// Season is a calendar season tag.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// SeasonForTime derives the calendar season for a point in time:
// spring = Mar-May, summer = Jun-Aug, fall = Sep-Nov, winter = Dec-Feb.
func SeasonForTime(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// Weather is an optional weather snapshot supplied with a request.
type Weather struct {
	TemperatureC float64 `json:"temperature_c"`
	Condition    string  `json:"condition,omitempty"`
	Humidity     float64 `json:"humidity,omitempty"`
}

// RequestContext carries the situational constraints for one recommendation
// request. It is constructed per request and never persisted by the engine.
type RequestContext struct {
	Occasion           string    `json:"occasion" validate:"required"`
	TimeOfDay          TimeOfDay `json:"time_of_day,omitempty" validate:"omitempty,oneof=morning afternoon evening night"`
	Weather            *Weather  `json:"weather,omitempty"`
	Season             Season    `json:"season,omitempty" validate:"omitempty,oneof=spring summer fall winter"`
	SeasonalPreference bool      `json:"seasonal_preference,omitempty"`
	ColorTheoryMode    bool      `json:"color_theory_mode,omitempty"`
}

// EffectiveSeason returns the context's explicit season when set, otherwise
// the calendar season for now.
func (c *RequestContext) EffectiveSeason(now time.Time) Season {
	if c.Season != "" {
		return c.Season
	}
	return SeasonForTime(now)
}

// IsEvening reports whether the context targets evening or night.
func (c *RequestContext) IsEvening() bool {
	return c.TimeOfDay == TimeEvening || c.TimeOfDay == TimeNight
}
