package main

import "github.com/rxtech-lab/argo-insight/internal/analysis"

// ReportMsg carries a finished analysis report.
type ReportMsg struct {
	Report *analysis.Report
}

// AnalysisErrMsg indicates a failed render.
type AnalysisErrMsg struct {
	Err error
}
