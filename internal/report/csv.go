package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"financial-health/internal/model"
)

// WriteForecastCSV writes one row per forecast period.
func WriteForecastCSV(w io.Writer, f model.Forecast) error {
	cw := csv.NewWriter(w)

	header := []string{
		"period",
		"revenue_forecast",
		"profit_forecast",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, p := range f.RevenueForecast {
		profit := ""
		if i < len(f.ProfitForecast) {
			profit = fmtAmount(f.ProfitForecast[i].Value)
		}
		row := []string{
			strconv.Itoa(p.Period),
			fmtAmount(p.Value),
			profit,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteForecastCSVFile writes the forecast CSV to path.
func WriteForecastCSVFile(path string, f model.Forecast) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return WriteForecastCSV(out, f)
}
