// Package rows derives filter inputs from the data a dashboard already has:
// the distinct values per column of a result set, and request parameters
// normalized against the "no filter" sentinel.
package rows
