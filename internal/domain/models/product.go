package models

// ProductColumns is the header row of the Products sheet
var ProductColumns = []string{"ID", "Name", "Description", "Price", "StockQuantity", "CreatedAt"}

// Product is one row of the Products sheet. Price and StockQuantity stay strings as stored.
type Product struct {
	ID            string `json:"ID"`
	Name          string `json:"Name"`
	Description   string `json:"Description"`
	Price         string `json:"Price"`
	StockQuantity string `json:"StockQuantity"`
	CreatedAt     string `json:"CreatedAt"`
}

// ProductInput carries the writable product fields
type ProductInput struct {
	Name          *string     `json:"name"`
	Description   *string     `json:"description"`
	Price         *FlexString `json:"price"`
	StockQuantity *FlexString `json:"stock_quantity"`
}

func ProductFromRecord(r map[string]string) Product {
	return Product{
		ID:            r["ID"],
		Name:          r["Name"],
		Description:   r["Description"],
		Price:         r["Price"],
		StockQuantity: r["StockQuantity"],
		CreatedAt:     r["CreatedAt"],
	}
}

func (p Product) Record() map[string]string {
	return map[string]string{
		"ID":            p.ID,
		"Name":          p.Name,
		"Description":   p.Description,
		"Price":         p.Price,
		"StockQuantity": p.StockQuantity,
		"CreatedAt":     p.CreatedAt,
	}
}

// Apply overwrites the fields present in the input
func (p *Product) Apply(in ProductInput) {
	set(&p.Name, in.Name)
	set(&p.Description, in.Description)
	set(&p.Price, in.Price)
	set(&p.StockQuantity, in.StockQuantity)
}

// NewProduct builds a product row; price and stock default to "0"
func NewProduct(id, now string, in ProductInput) Product {
	p := Product{ID: id, Price: DefaultAmount, StockQuantity: DefaultAmount, CreatedAt: now}
	p.Apply(in)
	p.Price = orDefault(p.Price, DefaultAmount)
	p.StockQuantity = orDefault(p.StockQuantity, DefaultAmount)
	return p
}
