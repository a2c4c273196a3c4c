package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDateTime is a timestamp rendered without zone information in the
// application location, e.g. "2024-05-01T14:03:22". It is stored in UTC.
type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

var appLocation = time.Local

// SetLocation changes the zone used to render and parse zone-less values.
func SetLocation(name string) error {
	if name == "" || name == "Local" {
		appLocation = time.Local
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load location %q: %w", name, err)
	}
	appLocation = loc
	return nil
}

func Now() LocalDateTime {
	return LocalDateTime{Time: time.Now().UTC().Truncate(time.Microsecond)}
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t.UTC()}
}

// ParseLocalDateTime accepts the zone-less layout (interpreted in the
// application location) or RFC 3339.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	if t, err := time.ParseInLocation(layout, s, appLocation); err == nil {
		return NewLocalDateTime(t), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("invalid date-time %q", s)
	}
	return NewLocalDateTime(t), nil
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*ldt = parsed
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(appLocation).Format(layout) + `"`), nil
}

func (ldt LocalDateTime) GormDataType() string {
	return "time"
}

func (ldt LocalDateTime) Value() (driver.Value, error) {
	if ldt.IsZero() {
		return nil, nil
	}
	return ldt.Time.UTC(), nil
}

func (ldt *LocalDateTime) Scan(value interface{}) error {
	if value == nil {
		ldt.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ldt.Time = v.UTC()
		return nil
	case []byte:
		return ldt.scanString(string(v))
	case string:
		return ldt.scanString(v)
	default:
		return fmt.Errorf("cannot scan type %T into LocalDateTime", value)
	}
}

func (ldt *LocalDateTime) scanString(s string) error {
	for _, f := range []string{"2006-01-02 15:04:05.999999999-07:00", time.RFC3339Nano, "2006-01-02 15:04:05.999999999"} {
		if t, err := time.Parse(f, s); err == nil {
			ldt.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q into LocalDateTime", s)
}
