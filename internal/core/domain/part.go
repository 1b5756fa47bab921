package domain

// Part is a catalogue item. AvailableQuantity is the only field mutated
// after creation.
type Part struct {
	ID                string  `json:"_id,omitempty" bson:"_id,omitempty"`
	Name              string  `json:"name" bson:"name"`
	Image             string  `json:"img,omitempty" bson:"img,omitempty"`
	Description       string  `json:"description,omitempty" bson:"description,omitempty"`
	Price             float64 `json:"price" bson:"price"`
	MinOrderQuantity  int     `json:"minOrderQuantity,omitempty" bson:"minOrderQuantity,omitempty"`
	AvailableQuantity int     `json:"availableQuantity" bson:"availableQuantity"`
}
