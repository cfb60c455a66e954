package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/service"
	"bookshare/pkg/errors"
)

// In-memory repository fakes mirroring the Firestore adapters' semantics.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateKYCStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.KYCStatus = status
	return nil
}

func (r *fakeUserRepo) UpdateRating(ctx context.Context, id string, rating entity.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.Rating = rating
	return nil
}

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]*entity.Listing
	nextID   int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*entity.Listing{}}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if listing.ID == "" {
		r.nextID++
		listing.ID = fmt.Sprintf("listing-%d", r.nextID)
	}
	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	cp := *listing
	r.listings[listing.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Listing, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Listing
	for _, l := range r.listings {
		if status, ok := filter["status"]; ok && l.Status != status {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) ListBySellerID(ctx context.Context, sellerID, listingStatus string, limit, offset int) ([]*entity.Listing, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Listing
	for _, l := range r.listings {
		if l.SellerID != sellerID {
			continue
		}
		if listingStatus != "" && l.Status != listingStatus {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.UpdatedAt = time.Now()
	cp := *listing
	r.listings[listing.ID] = &cp
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.listings[id]; ok {
		l.Views++
	}
	return nil
}

func (r *fakeListingRepo) UpdateRating(ctx context.Context, id string, rating entity.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	l.Rating = rating
	return nil
}

type fakeOrderRepo struct {
	mu          sync.Mutex
	orders      map[string]*entity.Order
	listingRepo *fakeListingRepo
	nextID      int
}

func newFakeOrderRepo(listingRepo *fakeListingRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}, listingRepo: listingRepo}
}

// CreateWithStockDecrement mirrors the transactional stock check in the
// Firestore adapter.
func (r *fakeOrderRepo) CreateWithStockDecrement(ctx context.Context, order *entity.Order) error {
	listing, err := r.listingRepo.GetByID(ctx, order.ListingID)
	if err != nil {
		return err
	}
	if listing.Status != entity.ListingStatusActive {
		return errors.BadRequest("Listing is not available for purchase", nil)
	}
	if listing.Stock < order.Quantity {
		return errors.Conflict("Not enough stock for this listing")
	}

	listing.Stock -= order.Quantity
	if listing.Stock == 0 {
		listing.Status = entity.ListingStatusSold
	}
	if err := r.listingRepo.Update(ctx, listing); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		r.nextID++
		order.ID = fmt.Sprintf("order-%d", r.nextID)
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.GatewayOrderID == gatewayOrderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) ListByBuyerID(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	order.UpdatedAt = time.Now()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) ListDeliveredUnreleased(ctx context.Context, deliveredBefore time.Time, limit int) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if o.OrderStatus != entity.OrderStatusDelivered || o.EscrowReleased {
			continue
		}
		if o.DeliveredAt == nil || !o.DeliveredAt.Before(deliveredBefore) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

type fakeWishlistRepo struct {
	mu        sync.Mutex
	wishlists map[string]*entity.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: map[string]*entity.Wishlist{}}
}

func (r *fakeWishlistRepo) GetByUserID(ctx context.Context, userID string) (*entity.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wishlists[userID]
	if !ok {
		return &entity.Wishlist{UserID: userID, Items: []entity.WishlistItem{}}, nil
	}
	cp := *w
	cp.Items = append([]entity.WishlistItem(nil), w.Items...)
	return &cp, nil
}

func (r *fakeWishlistRepo) AddItem(ctx context.Context, userID string, item entity.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wishlists[userID]
	if !ok {
		w = &entity.Wishlist{UserID: userID}
		r.wishlists[userID] = w
	}
	if w.Contains(item.ListingID) {
		return errors.Conflict("Listing is already on the wishlist")
	}
	w.Items = append(w.Items, item)
	return nil
}

func (r *fakeWishlistRepo) RemoveItem(ctx context.Context, userID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wishlists[userID]
	if !ok || !w.Contains(listingID) {
		return errors.NotFound("Wishlist item", nil)
	}
	items := w.Items[:0]
	for _, it := range w.Items {
		if it.ListingID != listingID {
			items = append(items, it)
		}
	}
	w.Items = items
	return nil
}

func (r *fakeWishlistRepo) Contains(ctx context.Context, userID, listingID string) (bool, error) {
	w, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return w.Contains(listingID), nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*entity.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*entity.Review{}}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == "" {
		r.nextID++
		review.ID = fmt.Sprintf("review-%d", r.nextID)
	}
	review.CreatedAt = time.Now()
	cp := *review
	r.reviews[review.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.OrderID == orderID {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Review
	for _, rv := range r.reviews {
		if rv.SellerID == sellerID {
			cp := *rv
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) ListByListingID(ctx context.Context, listingID string, limit, offset int) ([]*entity.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Review
	for _, rv := range r.reviews {
		if rv.ListingID == listingID {
			cp := *rv
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

type fakeBlogRepo struct {
	mu      sync.Mutex
	blogs   map[string]*entity.Blog
	replies map[string][]entity.BlogReply
	nextID  int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[string]*entity.Blog{}, replies: map[string][]entity.BlogReply{}}
}

func (r *fakeBlogRepo) Create(ctx context.Context, blog *entity.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if blog.ID == "" {
		r.nextID++
		blog.ID = fmt.Sprintf("blog-%d", r.nextID)
	}
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	cp := *blog
	r.blogs[blog.ID] = &cp
	return nil
}

func (r *fakeBlogRepo) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, errors.NotFound("Blog", nil)
	}
	cp := *b
	cp.LikedBy = append([]string(nil), b.LikedBy...)
	return &cp, nil
}

func (r *fakeBlogRepo) List(ctx context.Context, category string, limit, offset int) ([]*entity.Blog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Blog
	for _, b := range r.blogs {
		if category != "" && b.Category != category {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blogs, id)
	delete(r.replies, id)
	return nil
}

func (r *fakeBlogRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.blogs[id]; ok {
		b.Views++
	}
	return nil
}

// AddLike mirrors the likedBy transaction in the Firestore adapter: each
// user counts once, the second like is a no-op.
func (r *fakeBlogRepo) AddLike(ctx context.Context, id, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return false, errors.NotFound("Blog", nil)
	}
	for _, liker := range b.LikedBy {
		if liker == userID {
			return false, nil
		}
	}
	b.Likes++
	b.LikedBy = append(b.LikedBy, userID)
	return true, nil
}

func (r *fakeBlogRepo) AddReply(ctx context.Context, id string, reply entity.BlogReply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return errors.NotFound("Blog", nil)
	}
	r.replies[id] = append(r.replies[id], reply)
	b.Replies++
	return nil
}

func (r *fakeBlogRepo) ListReplies(ctx context.Context, id string, limit, offset int) ([]entity.BlogReply, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	replies := append([]entity.BlogReply(nil), r.replies[id]...)
	return replies, int64(len(replies)), nil
}

type fakeNoteRepo struct {
	mu     sync.Mutex
	notes  map[string]*entity.Note
	nextID int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*entity.Note{}}
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if note.ID == "" {
		r.nextID++
		note.ID = fmt.Sprintf("note-%d", r.nextID)
	}
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *fakeNoteRepo) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[id]
	if !ok {
		return nil, errors.NotFound("Note", nil)
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNoteRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Note, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Note
	for _, n := range r.notes {
		cp := *n
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notes, id)
	return nil
}

func (r *fakeNoteRepo) IncrementDownloads(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.notes[id]; ok {
		n.Downloads++
	}
	return nil
}

type fakeFileMetaRepo struct {
	mu     sync.Mutex
	files  map[string]*entity.FileMetadata
	nextID int
}

func newFakeFileMetaRepo() *fakeFileMetaRepo {
	return &fakeFileMetaRepo{files: map[string]*entity.FileMetadata{}}
}

func (r *fakeFileMetaRepo) Create(ctx context.Context, meta *entity.FileMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if meta.ID == "" {
		r.nextID++
		meta.ID = fmt.Sprintf("file-%d", r.nextID)
	}
	cp := *meta
	r.files[meta.ID] = &cp
	return nil
}

func (r *fakeFileMetaRepo) GetByID(ctx context.Context, id string) (*entity.FileMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok {
		return nil, errors.NotFound("File", nil)
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFileMetaRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.files, id)
	return nil
}

// fakeFileStore serves fixed object contents keyed by object name.
type fakeFileStore struct {
	objects map[string]string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{objects: map[string]string{}}
}

func (s *fakeFileStore) UploadFile(ctx context.Context, file io.Reader, fileType, filename, folder string, isPublic bool) (*service.UploadResult, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	objectName := folder + "/" + filename
	s.objects[objectName] = string(data)
	return &service.UploadResult{
		URL:        "https://storage.example.com/" + objectName,
		ObjectName: objectName,
		Size:       int64(len(data)),
	}, nil
}

func (s *fakeFileStore) DeleteFile(ctx context.Context, objectName string) error {
	delete(s.objects, objectName)
	return nil
}

func (s *fakeFileStore) GetFileContent(ctx context.Context, objectName string) (io.ReadCloser, string, int64, error) {
	content, ok := s.objects[objectName]
	if !ok {
		return nil, "", 0, errors.NotFound("File", nil)
	}
	return io.NopCloser(strings.NewReader(content)), "application/pdf", int64(len(content)), nil
}

func (s *fakeFileStore) Close() error { return nil }

// fakeGateway verifies signatures against a fixed expected value.
type fakeGateway struct {
	orders    int
	validSigs map[string]string // orderID|paymentID -> signature
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{validSigs: map[string]string{}}
}

func (g *fakeGateway) CreateOrder(ctx context.Context, req service.CreateGatewayOrderRequest) (*service.GatewayOrder, error) {
	g.orders++
	return &service.GatewayOrder{
		ID:       fmt.Sprintf("gw-order-%d", g.orders),
		Amount:   int64(req.Amount * 100),
		Currency: "INR",
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return g.validSigs[orderID+"|"+paymentID] == signature && signature != ""
}
