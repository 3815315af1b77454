// Package views derives everything the tracker displays from a user's
// loaded items: range-filtered subsets, progress ratios, category columns,
// approaching deadlines, completion trends and the category distribution.
//
// All functions are pure. The current day is always passed in explicitly and
// only its calendar date matters.
package views
