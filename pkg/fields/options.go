package fields

import (
	"strconv"
	"time"
)

// FormatFull and friends are the recognized Format values.
const (
	FormatFull   = "full"
	FormatShort  = "short"
	FormatNumber = "number"
	FormatLower  = "lower"
	Format12Hour = "12"
	Format24Hour = "24"
)

// ResolveOptions returns the ordered option list for a field. Table-backed
// types resolve against their fixed table, selected by Format where the type
// has variants; option-backed types return the caller-supplied options. The
// year type generates its range from Attrs["min"] and Attrs["max"],
// descending, defaulting to 1900 through the current year.
func ResolveOptions(f Field) Options {
	switch f.Type {
	case TypeAmPm:
		return choicesAmPm
	case TypeCountry:
		if f.Format == FormatFull {
			return choicesCountryFull
		}
		return choicesCountry
	case TypeDay:
		return choicesDay
	case TypeHour:
		if f.Format == Format24Hour {
			return choicesHour24
		}
		return choicesHour12
	case TypeMinute:
		return choicesMinute
	case TypeMonth:
		switch f.Format {
		case FormatFull:
			return choicesMonthFull
		case FormatShort:
			return choicesMonthShort
		default:
			return choicesMonth
		}
	case TypeState:
		if f.Format == FormatFull {
			return choicesStateFull
		}
		return choicesState
	case TypeWeekday:
		switch f.Format {
		case FormatFull:
			return choicesWeekdayFull
		case FormatShort:
			return choicesWeekdayShort
		default:
			return choicesWeekday
		}
	case TypeYear:
		return yearOptions(f)
	case TypeEnableDisableButtonGroup:
		return choicesEnableDisable
	case TypeEnabledDisabledButtonGroup:
		return choicesEnabledDisabled
	case TypeOnOffButtonGroup:
		return choicesOnOff
	case TypeYesNoButtonGroup:
		return choicesYesNo
	default:
		return f.Options
	}
}

func yearOptions(f Field) Options {
	min := 1900
	max := time.Now().Year()
	if raw, ok := f.Attrs["min"]; ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			min = parsed
		}
	}
	if raw, ok := f.Attrs["max"]; ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			max = parsed
		}
	}
	if max < min {
		return nil
	}

	options := make(Options, 0, max-min+1)
	for year := max; year >= min; year-- {
		value := strconv.Itoa(year)
		options = append(options, Choice{Value: value, Label: value})
	}
	return options
}
