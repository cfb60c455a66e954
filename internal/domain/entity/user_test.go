package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingAddRating(t *testing.T) {
	var r Rating

	r.AddRating(4)
	assert.Equal(t, 1, r.Count)
	assert.InDelta(t, 4.0, r.Average, 0.0001)

	r.AddRating(2)
	assert.Equal(t, 2, r.Count)
	assert.InDelta(t, 3.0, r.Average, 0.0001)

	r.AddRating(5)
	assert.Equal(t, 3, r.Count)
	assert.InDelta(t, 11.0/3.0, r.Average, 0.0001)
}

func TestUserCanSell(t *testing.T) {
	student := &User{Role: RoleStudent, IsActive: true, KYCStatus: KYCPending}
	assert.True(t, student.CanSell())

	library := &User{Role: RoleLibrary, IsActive: true, KYCStatus: KYCPending}
	assert.False(t, library.CanSell())

	library.KYCStatus = KYCVerified
	assert.True(t, library.CanSell())

	library.IsActive = false
	assert.False(t, library.CanSell())
}

func TestWishlistContains(t *testing.T) {
	w := &Wishlist{Items: []WishlistItem{{ListingID: "a"}, {ListingID: "b"}}}

	assert.True(t, w.Contains("a"))
	assert.True(t, w.Contains("b"))
	assert.False(t, w.Contains("c"))
}
