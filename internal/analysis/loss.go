package analysis

import "netlog-analyzer/internal/models"

const (
	minorLossLimit       = 5
	significantLossLimit = 10
)

// ClassifyLoss buckets a loss percentage. A missing value and 0% are both
// loss-free.
func ClassifyLoss(loss *int) models.LossClass {
	switch {
	case loss == nil || *loss <= 0:
		return models.LossFree
	case *loss < minorLossLimit:
		return models.Minor
	case *loss < significantLossLimit:
		return models.Significant
	default:
		return models.Major
	}
}

// LatestLoss classifies the most recent sample, or LossFree when there are none
func LatestLoss(samples []models.PingSample) models.LossClass {
	if len(samples) == 0 {
		return models.LossFree
	}
	return ClassifyLoss(samples[len(samples)-1].LossPercent)
}
