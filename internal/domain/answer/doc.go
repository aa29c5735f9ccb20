// Package answer contains the record of a solved puzzle day.
//
// A Record is what gets printed and appended to the answers history.
package answer
