// Package report renders search results, predictions and reservoirs as
// aligned text tables, and predictions as gonum/plot charts.
package report
