package order

import (
	"errors"
	"math"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Delivery cost tiers on the address distance proxy.
const (
	shortDistanceLimit  = 3.0
	mediumDistanceLimit = 5.0

	shortDistanceCost  = 100.0
	mediumDistanceCost = 150.0
	longDistanceCost   = 200.0

	// baseDeliveryMinutes is the fixed preparation-and-handoff overhead added to
	// every delivery estimate.
	baseDeliveryMinutes = 30
	// minutesPerDistanceUnit scales the distance proxy into travel minutes.
	minutesPerDistanceUnit = 5
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDIsRequired is returned when attempting to create an order without an id.
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order id")
)

// Customer is the contract the fulfillment core consumes from customer management.
// The customer's lifecycle is owned elsewhere; orders hold a reference only.
type Customer interface {
	// FullName returns the customer's display name.
	FullName() string
	// AddToOrderHistory records an order id in the customer's history.
	AddToOrderHistory(orderID string)
}

// Order is the aggregate for one customer transaction: line items, lifecycle
// status, discount, payment flag and an optional delivery address.
//
// Order owns every financial calculation in the core:
//   - Price: the sum of line totals
//   - DeliveryCost / DeliveryTime: tiered on the address distance proxy
//   - FinalPrice: price plus delivery, after the order's own discount
//
// The aggregate is intentionally permissive where the business is permissive:
// items with non-positive quantities or nil products are accepted, the discount
// percentage is stored verbatim without bounds checking, and UpdateStatus assigns
// any target state unconditionally. The validated counterparts (kernel.Discount,
// dispatcher address validation) live outside the aggregate.
//
// Order is not safe for unsynchronized concurrent mutation; the registry owning
// the order serializes access.
type Order struct {
	// id is assigned once by the registry at creation
	id string
	// customer is a reference, not owned by the order
	customer Customer
	// items are the order lines, in insertion order
	items []*Item
	// status is the current lifecycle label
	status Status
	// orderTime is set at construction
	orderTime time.Time
	// discountPercentage is stored verbatim, no bounds check
	discountPercentage float64
	// isPaid is set true only by a successful ProcessPayment
	isPaid bool
	// deliveryAddress is nil for pickup orders
	deliveryAddress *kernel.Address

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in Pending status with its order time set to now.
//
// Parameters:
//   - id: the registry-allocated identifier (must be non-empty)
//   - customer: reference to the ordering customer (may be nil)
//
// Returns ErrOrderIDIsRequired if the id is empty.
func NewOrder(id string, customer Customer) (*Order, error) {
	if id == "" {
		return nil, ErrOrderIDIsRequired
	}

	return &Order{
		id:        id,
		customer:  customer,
		status:    Pending,
		orderTime: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's identifier.
func (o *Order) ID() string {
	return o.id
}

// SetID reassigns the order's identifier. The registry assigns the id once at
// creation and never calls this; it exists for callers that number orders
// outside a registry.
func (o *Order) SetID(id string) {
	o.id = id
}

// Customer returns the ordering customer reference. May be nil.
func (o *Order) Customer() Customer {
	return o.customer
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// UpdateStatus assigns the target status unconditionally. Any state may follow
// any other; there is no transition guard.
func (o *Order) UpdateStatus(status Status) {
	o.status = status
}

// OrderTime returns the construction timestamp.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// IsPaid reports whether a successful payment settled this order.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// DeliveryAddress returns the delivery destination, or nil for pickup orders.
func (o *Order) DeliveryAddress() *kernel.Address {
	return o.deliveryAddress
}

// SetDeliveryAddress attaches a delivery destination. Passing nil turns the
// order back into a pickup order.
func (o *Order) SetDeliveryAddress(address *kernel.Address) {
	o.deliveryAddress = address
}

// AddItem constructs an order line and appends it. Always succeeds, even for a
// quantity of zero or less or a nil product. Returns the appended line so the
// caller can attach special instructions or remove it later.
func (o *Order) AddItem(product Product, quantity int) *Item {
	item := NewItem(product, quantity)
	o.items = append(o.items, item)
	return item
}

// RemoveItem removes the first line equal to the given one. No-op when no line
// matches.
func (o *Order) RemoveItem(item *Item) {
	if item == nil {
		return
	}
	for idx, existing := range o.items {
		if existing.IsEqual(item) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return
		}
	}
}

// Items returns a copy of the order lines in insertion order. Mutating the
// returned slice does not affect the order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalItems returns the sum of quantities across all lines.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// Price returns the sum of line totals. An empty order prices at 0.
func (o *Order) Price() float64 {
	price := 0.0
	for _, item := range o.items {
		price += item.TotalPrice()
	}
	return price
}

// ApplyDiscount stores the percentage verbatim. No bounds check is performed
// here; kernel.Discount is the validated counterpart.
func (o *Order) ApplyDiscount(percentage float64) {
	o.discountPercentage = percentage
}

// DiscountPercentage returns the stored discount percentage.
func (o *Order) DiscountPercentage() float64 {
	return o.discountPercentage
}

// DeliveryCost returns the delivery charge for the order. Pickup orders (no
// address) cost nothing; otherwise the charge is tiered on the address
// distance proxy.
func (o *Order) DeliveryCost() float64 {
	if o.deliveryAddress == nil {
		return 0
	}

	distance := o.deliveryAddress.Latitude()
	switch {
	case distance < shortDistanceLimit:
		return shortDistanceCost
	case distance < mediumDistanceLimit:
		return mediumDistanceCost
	default:
		return longDistanceCost
	}
}

// DeliveryTime returns the estimated delivery duration in minutes: a fixed
// preparation overhead plus travel time scaled from the distance proxy.
// Pickup orders estimate to 0.
func (o *Order) DeliveryTime() int {
	if o.deliveryAddress == nil {
		return 0
	}

	distance := o.deliveryAddress.Latitude()
	return baseDeliveryMinutes + int(math.Floor(minutesPerDistanceUnit*distance))
}

// FinalPrice returns the settled amount: item price plus delivery cost, after
// the order's discount percentage.
func (o *Order) FinalPrice() float64 {
	return (o.Price() + o.DeliveryCost()) * (1 - o.discountPercentage/100)
}

// ProcessPayment settles the order if the amount covers the final price.
//
// On success the order is marked paid and moves to Confirmed, and true is
// returned. An insufficient amount (including zero and negative values) simply
// fails the comparison: false is returned and nothing changes.
func (o *Order) ProcessPayment(amount float64) bool {
	if amount < o.FinalPrice() {
		return false
	}

	o.isPaid = true
	o.status = Confirmed
	return true
}
