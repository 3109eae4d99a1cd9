package message

import "time"

const TimeFormatString = time.RFC3339

// TimeStamp is a UTC wall clock time with second precision.
type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.UTC().Format(TimeFormatString))
}

func Now() TimeStamp {
	return NewTimeStamp(time.Now())
}

func (ts TimeStamp) Time() (time.Time, error) {
	return time.Parse(TimeFormatString, string(ts))
}
