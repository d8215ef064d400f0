package order

// Product is the contract an order line consumes from the catalog. The catalog
// itself lives outside the fulfillment core; orders only read price, name and
// availability.
type Product interface {
	// Name returns the display name of the product.
	Name() string
	// FinalPrice returns the price of one unit of the product.
	FinalPrice() float64
	// IsAvailable reports whether the product can currently be ordered.
	IsAvailable() bool
}

// Item is one order line: a product reference, a quantity and optional special
// instructions for the kitchen.
//
// Items are deliberately permissive: a nil product and a non-positive quantity
// are both accepted. Callers that want stricter input validation wrap the order
// API rather than relying on the line itself to reject values.
type Item struct {
	// product is a reference to the catalog entry, not owned by the item
	product Product
	// quantity is the number of units ordered
	quantity int
	// specialInstructions is an optional free-form note, empty if absent
	specialInstructions string
}

// NewItem creates an order line for the given product and quantity.
// Always succeeds, even for a nil product or a quantity of zero or less.
func NewItem(product Product, quantity int) *Item {
	return &Item{
		product:  product,
		quantity: quantity,
	}
}

// Product returns the referenced catalog product. May be nil.
func (i *Item) Product() Product {
	return i.product
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// SpecialInstructions returns the optional kitchen note, empty if none was set.
func (i *Item) SpecialInstructions() string {
	return i.specialInstructions
}

// SetSpecialInstructions attaches a free-form note to the line.
func (i *Item) SetSpecialInstructions(instructions string) {
	i.specialInstructions = instructions
}

// TotalPrice returns the line total: unit price multiplied by quantity.
// A line with a nil product contributes nothing.
func (i *Item) TotalPrice() float64 {
	if i.product == nil {
		return 0
	}
	return i.product.FinalPrice() * float64(i.quantity)
}

// IsEqual compares two lines by product reference, quantity and instructions.
// Used by the aggregate to locate the first matching line on removal.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil &&
		i.product == other.product &&
		i.quantity == other.quantity &&
		i.specialInstructions == other.specialInstructions
}
