package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Sheet names, one collection per entity
const (
	SheetCustomers  = "Customers"
	SheetProducts   = "Products"
	SheetOrders     = "Orders"
	SheetOrderItems = "OrderItems"
	SheetReminders  = "Reminders"
	SheetUsers      = "Users"
)

// Placeholders used when a joined row is missing
const (
	UnknownCustomer = "Unknown"
	UnknownProduct  = "Unknown Product"
)

// TimestampLayout is the layout of CreatedAt, OrderDate and LastLogin cells
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the layout of date-only cells such as DueDate
const DateLayout = "2006-01-02"

// FormatTimestamp formats t in UTC with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts full timestamps as well as plain dates
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	_, err := time.Parse(time.RFC3339Nano, s)
	return time.Time{}, err
}

// orDefault returns def when v is empty
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// FlexString accepts a JSON string, number or boolean and keeps its text,
// since every sheet cell is stored as a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(strconv.FormatBool(b))
	return nil
}

// String returns the text, empty for a nil pointer
func (f *FlexString) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}
