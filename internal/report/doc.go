// Package report derives analytics from a full catalog export: lifecycle
// funnel, genre and format distributions, rating and year breakdowns. It is
// read-only and renders to plain text tables.
package report
