package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

// CreateWithStockDecrement runs the stock check, the decrement and the order
// write in one Firestore transaction so two buyers cannot both take the last
// unit. The listing flips to sold when stock reaches zero.
func (r *firestoreOrderRepository) CreateWithStockDecrement(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	listingRef := r.client.Collection("listings").Doc(order.ListingID)
	orderRef := r.client.Collection("orders").Doc(order.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(listingRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Listing", err)
			}
			return err
		}

		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return err
		}

		if listing.Status != entity.ListingStatusActive {
			return errors.BadRequest("Listing is not available for purchase", nil)
		}

		if listing.Stock < order.Quantity {
			return errors.Conflict("Not enough stock for this listing")
		}

		newStock := listing.Stock - order.Quantity
		updates := []firestore.Update{
			{Path: "stock", Value: newStock},
			{Path: "updatedAt", Value: now},
		}
		if newStock == 0 {
			updates = append(updates, firestore.Update{Path: "status", Value: entity.ListingStatusSold})
		}

		if err := tx.Update(listingRef, updates); err != nil {
			return err
		}

		return tx.Set(orderRef, order)
	})

	if err != nil {
		if errors.Is(err, "NOT_FOUND") || errors.Is(err, "BAD_REQUEST") || errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error) {
	iter := r.client.Collection("orders").Where("gatewayOrderId", "==", gatewayOrderID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, errors.NotFound("Order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) listByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").Query.Where(field, "==", value)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) ListByBuyerID(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.listByField(ctx, "buyerId", buyerID, limit, offset)
}

func (r *firestoreOrderRepository) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.listByField(ctx, "sellerId", sellerID, limit, offset)
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) ListDeliveredUnreleased(ctx context.Context, deliveredBefore time.Time, limit int) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query.
		Where("orderStatus", "==", entity.OrderStatusDelivered).
		Where("escrowReleased", "==", false).
		Where("deliveredAt", "<", deliveredBefore)

	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate delivered orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}
