package models

import "math"

// PerPage is the fixed page size of every admin listing.
const PerPage = 10

// MaxPage keeps the row offset within a Postgres integer.
const MaxPage = math.MaxInt32 / PerPage

type Page[T any] struct {
	Items    []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"current_page"`
	PerPage  int `json:"per_page"`
	LastPage int `json:"last_page"`
}

func NewPage[T any](items []T, total, page int) Page[T] {
	if items == nil {
		items = []T{}
	}
	last := (total + PerPage - 1) / PerPage
	if last < 1 {
		last = 1
	}
	return Page[T]{Items: items, Total: total, Page: page, PerPage: PerPage, LastPage: last}
}

// Offset returns the row offset for a 1-based page number.
func Offset(page int) int {
	page = ClampPage(page)
	return (page - 1) * PerPage
}

// ClampPage bounds a 1-based page number to [1, MaxPage].
func ClampPage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}
