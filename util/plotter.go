package util

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"trip-planner/models/itinerary"
	"trip-planner/models/venue"
	"trip-planner/planner"
)

const budgetStack = "budget"

// PlotBudgetByDay renders the itinerary's spend as an HTML bar chart, one
// stacked series per category and one bar per day.
func PlotBudgetByDay(it *itinerary.Itinerary, w io.Writer) error {
	if it == nil {
		return errors.New("nil itinerary")
	}

	days := make([]string, len(it.Days))
	for i, d := range it.Days {
		days[i] = fmt.Sprintf("Day %d", d.Day)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Trip Budget",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Estimated budget per day",
			Subtitle: "Total " + planner.FormatRupiah(it.EstimatedBudget),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(days)

	for _, c := range venue.AllCategories {
		data := make([]opts.BarData, len(it.Days))
		for i, d := range it.Days {
			data[i] = opts.BarData{Value: spendOn(d, c)}
		}
		bar.AddSeries(string(c), data, charts.WithBarChartOpts(opts.BarChart{Stack: budgetStack}))
	}

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render budget chart: %w", err)
	}
	return nil
}

func spendOn(d itinerary.Day, c venue.Category) int64 {
	var total int64
	for _, a := range d.Activities {
		if a.Category == c {
			total += a.Price
		}
	}
	return total
}
