package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// submissionsTotal counts onboarding submissions by outcome.
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prejoin_submissions_total",
			Help: "Onboarding form submissions by result (stored, rejected, failed).",
		},
		[]string{"result"},
	)

	// filesStored counts attachments written to the upload directory.
	filesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prejoin_files_stored_total",
			Help: "Attachments written to the upload directory, by form field.",
		},
		[]string{"field"},
	)

	bytesStored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prejoin_file_bytes_stored_total",
			Help: "Total bytes of attachments written to the upload directory.",
		},
	)

	exportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prejoin_csv_exports_total",
			Help: "CSV exports generated.",
		},
	)
)
