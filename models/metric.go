package models

import "time"

// Metric is a health measurement extracted from a patient message,
// for example a weight or a blood pressure reading.
type Metric struct {
	ID        int64     `json:"-"`
	PatientID int64     `json:"-"`
	Type      string    `json:"metric_type"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// ExtractedMetric is a metric as reported by the assistant's analysis.
type ExtractedMetric struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Analysis is the assistant's reading of an inbound patient message.
type Analysis struct {
	IsAlert          bool              `json:"is_alert"`
	AutoReplyText    string            `json:"auto_reply_text"`
	ExtractedMetrics []ExtractedMetric `json:"extracted_metrics"`
}
