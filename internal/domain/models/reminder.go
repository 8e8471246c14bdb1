package models

// ReminderColumns is the header row of the Reminders sheet
var ReminderColumns = []string{"ID", "OrderID", "ReminderType", "DueDate", "Amount", "Status", "Notes", "CreatedAt"}

const (
	DefaultReminderType   = "payment"
	ReminderStatusPending = "pending"
)

// Reminder is one row of the Reminders sheet
type Reminder struct {
	ID           string `json:"ID"`
	OrderID      string `json:"OrderID"`
	ReminderType string `json:"ReminderType"`
	DueDate      string `json:"DueDate"`
	Amount       string `json:"Amount"`
	Status       string `json:"Status"`
	Notes        string `json:"Notes"`
	CreatedAt    string `json:"CreatedAt"`
}

// ReminderDetail is a reminder joined through its order to the customer
type ReminderDetail struct {
	Reminder
	LinkedOrderID string `json:"order_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// ReminderInput is a reminder creation request
type ReminderInput struct {
	OrderID      string      `json:"order_id" binding:"required"`
	ReminderType string      `json:"reminder_type"`
	DueDate      string      `json:"due_date"`
	Amount       *FlexString `json:"amount"`
	Notes        string      `json:"notes"`
}

func ReminderFromRecord(r map[string]string) Reminder {
	return Reminder{
		ID:           r["ID"],
		OrderID:      r["OrderID"],
		ReminderType: r["ReminderType"],
		DueDate:      r["DueDate"],
		Amount:       r["Amount"],
		Status:       r["Status"],
		Notes:        r["Notes"],
		CreatedAt:    r["CreatedAt"],
	}
}

func (r Reminder) Record() map[string]string {
	return map[string]string{
		"ID":           r.ID,
		"OrderID":      r.OrderID,
		"ReminderType": r.ReminderType,
		"DueDate":      r.DueDate,
		"Amount":       r.Amount,
		"Status":       r.Status,
		"Notes":        r.Notes,
		"CreatedAt":    r.CreatedAt,
	}
}

// NewReminder builds a reminder row; new reminders always start pending and
// fall due today unless a date is given.
func NewReminder(id, now, today string, in ReminderInput) Reminder {
	return Reminder{
		ID:           id,
		OrderID:      in.OrderID,
		ReminderType: orDefault(in.ReminderType, DefaultReminderType),
		DueDate:      orDefault(in.DueDate, today),
		Amount:       orDefault(in.Amount.String(), DefaultAmount),
		Status:       ReminderStatusPending,
		Notes:        in.Notes,
		CreatedAt:    now,
	}
}
