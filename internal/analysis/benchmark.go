package analysis

import (
	"math"
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
	"github.com/ashureev/founder-compass/internal/profile"
)

// trackedMetrics lists the profile fields compared against stage
// benchmarks, in scorecard order. Metric keys equal catalog field names.
var trackedMetrics = []string{"mrr", "churnRate", "cac", "conversionRate", "salesCycle", "growthRate"}

// target90Fraction is how far toward the "good" reference the 90-day
// target moves from the current value.
const target90Fraction = 0.6

// BuildScorecard compares the user's metrics against the stage benchmark
// data. Metrics without a configured median are omitted entirely; metrics
// the user did not disclose (or that do not parse as a number) appear as
// not_disclosed rows without a score.
func BuildScorecard(p domain.Profile, data domain.StageData) []domain.ScorecardRow {
	var rows []domain.ScorecardRow
	for _, key := range trackedMetrics {
		bench, ok := data.Metrics[key]
		if !ok || bench.Median <= 0 {
			continue
		}
		field, ok := profile.Lookup(key)
		if !ok {
			continue
		}

		good := goodRef(bench)
		bad := badRef(bench)
		row := domain.ScorecardRow{
			Metric:     key,
			Label:      field.Label,
			Unit:       bench.Unit,
			RawValue:   field.Value(&p),
			Median:     bench.Median,
			Good:       good,
			Bad:        bad,
			Source:     bench.Source,
			Assessment: domain.AssessmentNotDisclosed,
		}

		if v, parsed := extractMetric(row.RawValue); parsed {
			score := Normalize(v, good, bad, bench.LowerIsBetter)
			row.Value = &v
			row.Score = &score
			row.Assessment = assess(v, bench.Median, good, bad, bench.LowerIsBetter)
		}
		rows = append(rows, row)
	}
	return rows
}

func extractMetric(raw string) (float64, bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, false
	}
	return ExtractNumber(raw)
}

// goodRef returns the explicit "good" reference or derives one from the
// median, direction-aware.
func goodRef(b domain.Benchmark) float64 {
	if b.Good != nil {
		return *b.Good
	}
	if b.LowerIsBetter {
		return b.Median * 0.5
	}
	return b.Median * 2
}

// badRef mirrors goodRef for the "bad" reference.
func badRef(b domain.Benchmark) float64 {
	if b.Bad != nil {
		return *b.Bad
	}
	if b.LowerIsBetter {
		return b.Median * 2
	}
	return b.Median * 0.5
}

// Normalize maps a metric value onto the 0-100 scale: at or beyond "good"
// is 100, at or beyond "bad" is 0, values between interpolate linearly.
// The result is always clamped to [0,100].
func Normalize(v, good, bad float64, lowerIsBetter bool) int {
	var frac float64
	if lowerIsBetter {
		if v <= good {
			return 100
		}
		if v >= bad {
			return 0
		}
		frac = (bad - v) / (bad - good)
	} else {
		if v >= good {
			return 100
		}
		if v <= bad {
			return 0
		}
		frac = (v - bad) / (good - bad)
	}
	score := int(math.Round(frac * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func assess(v, median, good, bad float64, lowerIsBetter bool) domain.Assessment {
	if lowerIsBetter {
		switch {
		case v <= good:
			return domain.AssessmentStrong
		case v >= bad:
			return domain.AssessmentCritical
		case v <= median:
			return domain.AssessmentAboveMedian
		default:
			return domain.AssessmentBelowMedian
		}
	}
	switch {
	case v >= good:
		return domain.AssessmentStrong
	case v <= bad:
		return domain.AssessmentCritical
	case v >= median:
		return domain.AssessmentAboveMedian
	default:
		return domain.AssessmentBelowMedian
	}
}

// BuildChartSeries turns scored rows into normalized user-vs-median pairs
// for visualization. Rows without a score carry no chart point.
func BuildChartSeries(rows []domain.ScorecardRow, data domain.StageData) []domain.ChartPoint {
	var points []domain.ChartPoint
	for _, row := range rows {
		if row.Score == nil {
			continue
		}
		bench := data.Metrics[row.Metric]
		points = append(points, domain.ChartPoint{
			Metric:      row.Metric,
			Label:       row.Label,
			UserScore:   *row.Score,
			MedianScore: Normalize(bench.Median, row.Good, row.Bad, bench.LowerIsBetter),
		})
	}
	return points
}

// BuildDashboard computes the 90-day target view: each disclosed metric
// moved 60% of the distance toward its "good" reference, direction-aware.
// Values already at or past "good" stay where they are rather than
// regressing, and targets are rounded to two decimals.
func BuildDashboard(rows []domain.ScorecardRow, data domain.StageData) []domain.DashboardMetric {
	var out []domain.DashboardMetric
	for _, row := range rows {
		if row.Value == nil {
			continue
		}
		bench := data.Metrics[row.Metric]
		v := *row.Value
		target := v
		if bench.LowerIsBetter {
			if v > row.Good {
				target = v - target90Fraction*(v-row.Good)
			}
		} else {
			if v < row.Good {
				target = v + target90Fraction*(row.Good-v)
			}
		}
		out = append(out, domain.DashboardMetric{
			Metric:      row.Metric,
			Label:       row.Label,
			Unit:        row.Unit,
			Current:     v,
			Target90Day: math.Round(target*100) / 100,
			Good:        row.Good,
		})
	}
	return out
}
