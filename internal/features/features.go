// Package features derives model-ready columns from a daily weather series:
// lagged values, rolling statistics and cyclical date encodings. Transforms
// are pure; the only state is the table being built.
package features

import (
	"fmt"
	"math"
	"time"

	"github.com/weatherlab/weather-dashboard/internal/weather"
)

// Default feature parameters used by Engineer.
var (
	DefaultLags    = []int{1, 7, 14, 30}
	DefaultWindows = []int{7, 14, 30}
)

// Table is a columnar view of a daily series: a shared date index plus named
// float columns of equal length. NaN marks a cell invalidated by a shift or
// rolling window; DropMissing removes such rows.
type Table struct {
	Dates   []time.Time          `json:"dates"`
	Columns []string             `json:"columns"`
	Data    map[string][]float64 `json:"data"`
}

// FromSeries converts a cleaned series into its tabular form.
func FromSeries(s weather.DailySeries) *Table {
	n := len(s.Observations)
	t := &Table{
		Dates: make([]time.Time, n),
		Data:  make(map[string][]float64),
	}
	cols := map[string][]float64{
		"tavg": make([]float64, n),
		"tmin": make([]float64, n),
		"tmax": make([]float64, n),
		"prcp": make([]float64, n),
		"wspd": make([]float64, n),
		"pres": make([]float64, n),
	}
	for i, o := range s.Observations {
		t.Dates[i] = o.Date
		cols["tavg"][i] = o.Tavg
		cols["tmin"][i] = o.Tmin
		cols["tmax"][i] = o.Tmax
		cols["prcp"][i] = o.Prcp
		cols["wspd"][i] = o.Wspd
		cols["pres"][i] = o.Pres
	}
	for _, name := range []string{"tavg", "tmin", "tmax", "prcp", "wspd", "pres"} {
		t.addColumn(name, cols[name])
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Dates)
}

// Column returns the named column.
func (t *Table) Column(name string) ([]float64, bool) {
	vals, ok := t.Data[name]
	return vals, ok
}

func (t *Table) addColumn(name string, vals []float64) {
	if _, exists := t.Data[name]; !exists {
		t.Columns = append(t.Columns, name)
	}
	t.Data[name] = vals
}

// AddLags appends shifted copies of a column, named <col>_lag_<n>. The first
// n rows of each lag column are missing.
func (t *Table) AddLags(col string, lags []int) error {
	src, ok := t.Data[col]
	if !ok {
		return fmt.Errorf("unknown column %q", col)
	}
	for _, lag := range lags {
		shifted := make([]float64, len(src))
		for i := range shifted {
			if i < lag {
				shifted[i] = math.NaN()
			} else {
				shifted[i] = src[i-lag]
			}
		}
		t.addColumn(fmt.Sprintf("%s_lag_%d", col, lag), shifted)
	}
	return nil
}

// AddRolling appends rolling mean and sample-std columns over each window,
// named <col>_rolling_mean_<w> and <col>_rolling_std_<w>. Rows without a full
// window behind them are missing.
func (t *Table) AddRolling(col string, windows []int) error {
	src, ok := t.Data[col]
	if !ok {
		return fmt.Errorf("unknown column %q", col)
	}
	for _, w := range windows {
		means := make([]float64, len(src))
		stds := make([]float64, len(src))
		for i := range src {
			if i+1 < w {
				means[i] = math.NaN()
				stds[i] = math.NaN()
				continue
			}
			window := src[i+1-w : i+1]
			var sum float64
			for _, v := range window {
				sum += v
			}
			mean := sum / float64(w)
			var ss float64
			for _, v := range window {
				ss += (v - mean) * (v - mean)
			}
			means[i] = mean
			stds[i] = math.Sqrt(ss / float64(w-1))
		}
		t.addColumn(fmt.Sprintf("%s_rolling_mean_%d", col, w), means)
		t.addColumn(fmt.Sprintf("%s_rolling_std_%d", col, w), stds)
	}
	return nil
}

// AddCyclical appends sine/cosine encodings of day-of-year, month and
// day-of-week, so the model sees day 365 and day 1 as numerically close.
func (t *Table) AddCyclical() {
	n := len(t.Dates)
	doySin := make([]float64, n)
	doyCos := make([]float64, n)
	monSin := make([]float64, n)
	monCos := make([]float64, n)
	dowSin := make([]float64, n)
	dowCos := make([]float64, n)

	for i, d := range t.Dates {
		doy := float64(d.YearDay())
		mon := float64(d.Month())
		dow := float64((int(d.Weekday()) + 6) % 7) // Monday = 0

		doySin[i] = math.Sin(2 * math.Pi * doy / 365)
		doyCos[i] = math.Cos(2 * math.Pi * doy / 365)
		monSin[i] = math.Sin(2 * math.Pi * mon / 12)
		monCos[i] = math.Cos(2 * math.Pi * mon / 12)
		dowSin[i] = math.Sin(2 * math.Pi * dow / 7)
		dowCos[i] = math.Cos(2 * math.Pi * dow / 7)
	}

	t.addColumn("day_of_year_sin", doySin)
	t.addColumn("day_of_year_cos", doyCos)
	t.addColumn("month_sin", monSin)
	t.addColumn("month_cos", monCos)
	t.addColumn("day_of_week_sin", dowSin)
	t.addColumn("day_of_week_cos", dowCos)
}

// DropMissing removes every row containing a missing cell. Lag and rolling
// features leave leading rows missing, so this must run before the table is
// considered complete.
func (t *Table) DropMissing() {
	keep := make([]int, 0, len(t.Dates))
	for i := range t.Dates {
		complete := true
		for _, name := range t.Columns {
			if math.IsNaN(t.Data[name][i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	dates := make([]time.Time, len(keep))
	for j, i := range keep {
		dates[j] = t.Dates[i]
	}
	t.Dates = dates

	for _, name := range t.Columns {
		src := t.Data[name]
		vals := make([]float64, len(keep))
		for j, i := range keep {
			vals[j] = src[i]
		}
		t.Data[name] = vals
	}
}

// Engineer applies the full pipeline to a cleaned series: default lags and
// rolling statistics of the target column, cyclical date encodings, then a
// missing-row sweep.
func Engineer(s weather.DailySeries, target string) (*Table, error) {
	t := FromSeries(s)
	if err := t.AddLags(target, DefaultLags); err != nil {
		return nil, err
	}
	if err := t.AddRolling(target, DefaultWindows); err != nil {
		return nil, err
	}
	t.AddCyclical()
	t.DropMissing()
	return t, nil
}

// ProphetRow is one (ds, y) observation in Prophet's expected input format.
type ProphetRow struct {
	DS time.Time `json:"ds"`
	Y  float64   `json:"y"`
}

// ProphetFrame extracts the target column as (ds, y) rows for an external
// Prophet trainer.
func ProphetFrame(t *Table, target string) ([]ProphetRow, error) {
	vals, ok := t.Column(target)
	if !ok {
		return nil, fmt.Errorf("unknown column %q", target)
	}
	rows := make([]ProphetRow, len(vals))
	for i, v := range vals {
		rows[i] = ProphetRow{DS: t.Dates[i], Y: v}
	}
	return rows, nil
}
