package models

// OrderColumns is the header row of the Orders sheet
var OrderColumns = []string{
	"ID", "CustomerID", "OrderDate", "Status", "DeliveryFee", "TotalAmount",
	"AmountCollected", "DeliveryDate", "PaymentStatus", "Notes", "CreatedAt",
}

// OrderItemColumns is the header row of the OrderItems sheet
var OrderItemColumns = []string{"ID", "OrderID", "ProductID", "Quantity", "Price", "CreatedAt"}

// Default and well-known order values
const (
	OrderStatusPending  = "pending"
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
	DefaultAmount       = "0"
	DefaultItemQuantity = "1"
)

// Order is one row of the Orders sheet
type Order struct {
	ID              string `json:"ID"`
	CustomerID      string `json:"CustomerID"`
	OrderDate       string `json:"OrderDate"`
	Status          string `json:"Status"`
	DeliveryFee     string `json:"DeliveryFee"`
	TotalAmount     string `json:"TotalAmount"`
	AmountCollected string `json:"AmountCollected"`
	DeliveryDate    string `json:"DeliveryDate"`
	PaymentStatus   string `json:"PaymentStatus"`
	Notes           string `json:"Notes"`
	CreatedAt       string `json:"CreatedAt"`
}

// OrderItem is one row of the OrderItems sheet
type OrderItem struct {
	ID        string `json:"ID"`
	OrderID   string `json:"OrderID"`
	ProductID string `json:"ProductID"`
	Quantity  string `json:"Quantity"`
	Price     string `json:"Price"`
	CreatedAt string `json:"CreatedAt"`
}

// OrderSummary is an order joined to its customer's name
type OrderSummary struct {
	Order
	CustomerName string `json:"customer_name"`
}

// OrderItemDetail is an order item joined to its product's name
type OrderItemDetail struct {
	OrderItem
	ProductName string `json:"product_name"`
}

// OrderDetail is an order joined to its customer and line items
type OrderDetail struct {
	Order
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerAddress string            `json:"customer_address"`
	Items           []OrderItemDetail `json:"items"`
}

// WeeklySales aggregates orders of one ISO week
type WeeklySales struct {
	Week       string  `json:"week"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

// OrderItemInput is one line of an order creation request
type OrderItemInput struct {
	ProductID string      `json:"product_id" binding:"required"`
	Quantity  *FlexString `json:"quantity"`
	Price     *FlexString `json:"price"`
}

// OrderInput is an order creation request
type OrderInput struct {
	CustomerID      string           `json:"customer_id" binding:"required"`
	Status          string           `json:"status"`
	DeliveryFee     *FlexString      `json:"delivery_fee"`
	TotalAmount     *FlexString      `json:"total_amount"`
	AmountCollected *FlexString      `json:"amount_collected"`
	DeliveryDate    string           `json:"delivery_date"`
	PaymentStatus   string           `json:"payment_status"`
	Notes           string           `json:"notes"`
	Items           []OrderItemInput `json:"items" binding:"omitempty,dive"`
}

func OrderFromRecord(r map[string]string) Order {
	return Order{
		ID:              r["ID"],
		CustomerID:      r["CustomerID"],
		OrderDate:       r["OrderDate"],
		Status:          r["Status"],
		DeliveryFee:     r["DeliveryFee"],
		TotalAmount:     r["TotalAmount"],
		AmountCollected: r["AmountCollected"],
		DeliveryDate:    r["DeliveryDate"],
		PaymentStatus:   r["PaymentStatus"],
		Notes:           r["Notes"],
		CreatedAt:       r["CreatedAt"],
	}
}

func (o Order) Record() map[string]string {
	return map[string]string{
		"ID":              o.ID,
		"CustomerID":      o.CustomerID,
		"OrderDate":       o.OrderDate,
		"Status":          o.Status,
		"DeliveryFee":     o.DeliveryFee,
		"TotalAmount":     o.TotalAmount,
		"AmountCollected": o.AmountCollected,
		"DeliveryDate":    o.DeliveryDate,
		"PaymentStatus":   o.PaymentStatus,
		"Notes":           o.Notes,
		"CreatedAt":       o.CreatedAt,
	}
}

// NewOrder builds an order row from a request, applying the creation defaults
func NewOrder(id, now string, in OrderInput) Order {
	return Order{
		ID:              id,
		CustomerID:      in.CustomerID,
		OrderDate:       now,
		Status:          orDefault(in.Status, OrderStatusPending),
		DeliveryFee:     orDefault(in.DeliveryFee.String(), DefaultAmount),
		TotalAmount:     orDefault(in.TotalAmount.String(), DefaultAmount),
		AmountCollected: orDefault(in.AmountCollected.String(), DefaultAmount),
		DeliveryDate:    in.DeliveryDate,
		PaymentStatus:   orDefault(in.PaymentStatus, PaymentStatusUnpaid),
		Notes:           in.Notes,
		CreatedAt:       now,
	}
}

func OrderItemFromRecord(r map[string]string) OrderItem {
	return OrderItem{
		ID:        r["ID"],
		OrderID:   r["OrderID"],
		ProductID: r["ProductID"],
		Quantity:  r["Quantity"],
		Price:     r["Price"],
		CreatedAt: r["CreatedAt"],
	}
}

func (i OrderItem) Record() map[string]string {
	return map[string]string{
		"ID":        i.ID,
		"OrderID":   i.OrderID,
		"ProductID": i.ProductID,
		"Quantity":  i.Quantity,
		"Price":     i.Price,
		"CreatedAt": i.CreatedAt,
	}
}

// NewOrderItem builds an order item row, applying the creation defaults
func NewOrderItem(id, orderID, now string, in OrderItemInput) OrderItem {
	return OrderItem{
		ID:        id,
		OrderID:   orderID,
		ProductID: in.ProductID,
		Quantity:  orDefault(in.Quantity.String(), DefaultItemQuantity),
		Price:     orDefault(in.Price.String(), DefaultAmount),
		CreatedAt: now,
	}
}
