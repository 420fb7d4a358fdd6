package model

// Line is one raw cart entry: an ingredient occurrence in a recipe that
// sits in the user's shopping cart.
type Line struct {
	Name            string
	MeasurementUnit string
	Amount          int
}

// Item is an aggregated shopping list entry. Amounts only merge when both
// the ingredient name and the measurement unit match, so 500 g of sugar
// never folds into 1 kg of sugar.
type Item struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int64  `json:"total"`
}
