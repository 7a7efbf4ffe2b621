package dashboard

type ChartView string

const (
	ChartOrderCount ChartView = "orderCount"
	ChartRevenue    ChartView = "revenue"
)

// ParseChartView returns the view named by s; ok is false for anything else,
// in which case no chart is shown.
func ParseChartView(s string) (ChartView, bool) {
	switch ChartView(s) {
	case ChartOrderCount, ChartRevenue:
		return ChartView(s), true
	}
	return "", false
}

func (v ChartView) Title() string {
	switch v {
	case ChartOrderCount:
		return "Order Count Chart"
	case ChartRevenue:
		return "Revenue Chart"
	}
	return ""
}

// ChartData is the bar chart payload handed to Chart.js.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

var chartLabels = []string{"Pending", "Dispatched", "Completed"}

// Chart builds the dataset for view from s.
func Chart(view ChartView, s Stats) ChartData {
	var ds ChartDataset
	switch view {
	case ChartRevenue:
		ds = ChartDataset{
			Label:           "Revenue ($)",
			Data:            []float64{s.PendingRevenue.InexactFloat64(), s.DispatchRevenue.InexactFloat64(), s.CompletedRevenue.InexactFloat64()},
			BackgroundColor: "rgba(153, 102, 255, 0.2)",
			BorderColor:     "rgba(153, 102, 255, 1)",
			BorderWidth:     1,
		}
	default:
		ds = ChartDataset{
			Label:           "Order Count",
			Data:            []float64{float64(s.PendingCount), float64(s.DispatchCount), float64(s.CompletedCount)},
			BackgroundColor: "rgba(75, 192, 192, 0.2)",
			BorderColor:     "rgba(75, 192, 192, 1)",
			BorderWidth:     1,
		}
	}
	return ChartData{Labels: chartLabels, Datasets: []ChartDataset{ds}}
}
