package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{ListingStatusPending, ListingStatusActive, true},
		{ListingStatusPending, ListingStatusInactive, true},
		{ListingStatusPending, ListingStatusSold, false},
		{ListingStatusActive, ListingStatusSold, true},
		{ListingStatusActive, ListingStatusInactive, true},
		{ListingStatusActive, ListingStatusPending, false},
		{ListingStatusInactive, ListingStatusActive, true},
		{ListingStatusInactive, ListingStatusSold, false},
		{ListingStatusSold, ListingStatusActive, false},
		{ListingStatusSold, ListingStatusInactive, false},
		{"bogus", ListingStatusActive, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionListingStatus(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestValidListingCategory(t *testing.T) {
	assert.True(t, ValidListingCategory("upsc"))
	assert.True(t, ValidListingCategory("engineering"))
	assert.False(t, ValidListingCategory("cooking"))
	assert.False(t, ValidListingCategory(""))
}
