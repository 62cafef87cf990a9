// Package dashboard serves the demo analytics the portal renders: a fixed
// weekly sales series and shelf stock levels. There is no live reporting
// pipeline behind these numbers.
package dashboard

type SalesPoint struct {
	Day        string  `json:"day"`
	Sales      float64 `json:"sales"`
	Prediction float64 `json:"prediction"`
}

type StockLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Min   int    `json:"min"`
}

var weeklySales = []SalesPoint{
	{Day: "Mon", Sales: 4000, Prediction: 4200},
	{Day: "Tue", Sales: 3000, Prediction: 3100},
	{Day: "Wed", Sales: 2000, Prediction: 2400},
	{Day: "Thu", Sales: 2780, Prediction: 2900},
	{Day: "Fri", Sales: 1890, Prediction: 3000},
	{Day: "Sat", Sales: 2390, Prediction: 4000},
	{Day: "Sun", Sales: 3490, Prediction: 4200},
}

var stockLevels = []StockLevel{
	{Name: "Headphones", Level: 12, Min: 20},
	{Name: "LED Bulbs", Level: 85, Min: 50},
	{Name: "Rice Bags", Level: 5, Min: 10},
	{Name: "Vases", Level: 44, Min: 10},
}

func WeeklySales() []SalesPoint {
	out := make([]SalesPoint, len(weeklySales))
	copy(out, weeklySales)
	return out
}

func StockLevels() []StockLevel {
	out := make([]StockLevel, len(stockLevels))
	copy(out, stockLevels)
	return out
}
