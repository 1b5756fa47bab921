package domain

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusPaid    OrderStatus = "paid"
	StatusShipped OrderStatus = "shipped"
)

// validTransitions defines the allowed state machine transitions.
// There is no way back: a paid order never returns to pending and a
// shipped order is terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusPaid},
	StatusPaid:    {StatusShipped},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a purchase of a part placed by a user. Email is the owner key
// checked by the ownership guard; TransactionID is set when the order is paid.
type Order struct {
	ID            string      `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string      `json:"email" bson:"email"`
	PartID        string      `json:"partId,omitempty" bson:"partId,omitempty"`
	PartName      string      `json:"partName,omitempty" bson:"partName,omitempty"`
	Quantity      int         `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Price         float64     `json:"price" bson:"price"`
	Status        OrderStatus `json:"status" bson:"status"`
	TransactionID string      `json:"tId,omitempty" bson:"tId,omitempty"`
}
