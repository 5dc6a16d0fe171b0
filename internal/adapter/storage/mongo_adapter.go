package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ltnam/fashion-store/internal/core/domain"
)

// MongoStore is the document-store implementation of the repository ports
// and the stock ledger. Stock reservation is a single conditional UpdateOne
// guarded by "stockQuantity >= qty" inside an $elemMatch filter, so the
// check-and-decrement is atomic at the storage layer.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (m *MongoStore) products() *mongo.Collection { return m.db.Collection("products") }
func (m *MongoStore) orders() *mongo.Collection   { return m.db.Collection("orders") }
func (m *MongoStore) users() *mongo.Collection    { return m.db.Collection("users") }
func (m *MongoStore) reviews() *mongo.Collection  { return m.db.Collection("reviews") }

// ---- documents ----
// Money is stored as its decimal string form; field names follow the
// collection layout the SPA's API has always exposed.

type variantDoc struct {
	Size  string `bson:"size"`
	Color string `bson:"color"`
	SKU   string `bson:"sku,omitempty"`
	Stock int    `bson:"stockQuantity"`
}

type productDoc struct {
	ID          string       `bson:"_id"`
	Name        string       `bson:"name"`
	Description string       `bson:"description"`
	Category    string       `bson:"category"`
	Price       string       `bson:"price"`
	Images      []string     `bson:"images,omitempty"`
	Sizes       []string     `bson:"sizes,omitempty"`
	Colors      []string     `bson:"colors,omitempty"`
	Variants    []variantDoc `bson:"variants"`
	Rating      float64      `bson:"rating"`
	ReviewCount int          `bson:"reviewCount"`
	Active      bool         `bson:"isActive"`
	CreatedAt   time.Time    `bson:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt"`
}

// addressDoc doubles as the JSON shape the MySQL adapter stores for
// shipping snapshots.
type addressDoc struct {
	ID       string `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName string `bson:"fullName" json:"fullName"`
	Phone    string `bson:"phone" json:"phone"`
	Line1    string `bson:"addressLine1" json:"addressLine1"`
	Line2    string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	Landmark string `bson:"landmark,omitempty" json:"landmark,omitempty"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	ZipCode  string `bson:"zipCode" json:"zipCode"`
	Country  string `bson:"country" json:"country"`
	Type     string `bson:"addressType" json:"addressType"`
	Default  bool   `bson:"isDefault" json:"isDefault"`
}

type lineItemDoc struct {
	ProductID string `bson:"productId"`
	Name      string `bson:"name"`
	Size      string `bson:"size"`
	Color     string `bson:"color"`
	Quantity  int    `bson:"quantity"`
	UnitPrice string `bson:"unitPrice"`
}

type orderDoc struct {
	OrderID         string        `bson:"_id"`
	UserID          string        `bson:"userId"`
	Items           []lineItemDoc `bson:"items"`
	ShippingAddress addressDoc    `bson:"shippingAddress"`
	Total           string        `bson:"totalAmount"`
	Status          string        `bson:"status"`
	CreatedAt       time.Time     `bson:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt"`
}

type userDoc struct {
	ID           string       `bson:"_id"`
	Name         string       `bson:"name"`
	Email        string       `bson:"email"`
	PasswordHash string       `bson:"password"`
	Role         string       `bson:"role"`
	Phone        string       `bson:"phone,omitempty"`
	Addresses    []addressDoc `bson:"addresses"`
	Wishlist     []string     `bson:"wishlist"`
	CreatedAt    time.Time    `bson:"createdAt"`
}

type reviewDoc struct {
	ID        string    `bson:"_id"`
	ProductID string    `bson:"productId"`
	UserID    string    `bson:"userId"`
	UserName  string    `bson:"userName"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	CreatedAt time.Time `bson:"createdAt"`
}

// ---- stock ledger ----

func (m *MongoStore) Reserve(ctx context.Context, key domain.VariantKey, qty int) (int, error) {
	filter := bson.M{
		"_id": key.ProductID,
		"variants": bson.M{"$elemMatch": bson.M{
			"size":          key.Size,
			"color":         key.Color,
			"stockQuantity": bson.M{"$gte": qty},
		}},
	}
	update := bson.M{"$inc": bson.M{"variants.$.stockQuantity": -qty}}

	var doc productDoc
	err := m.products().FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, m.classifyReserveMiss(ctx, key)
	}
	if err != nil {
		return 0, fmt.Errorf("reserve stock: %w", err)
	}
	for _, v := range doc.Variants {
		if v.Size == key.Size && v.Color == key.Color {
			return v.Stock, nil
		}
	}
	return 0, nil
}

// classifyReserveMiss distinguishes a missing variant from one that simply
// has too little stock.
func (m *MongoStore) classifyReserveMiss(ctx context.Context, key domain.VariantKey) error {
	filter := bson.M{
		"_id":      key.ProductID,
		"variants": bson.M{"$elemMatch": bson.M{"size": key.Size, "color": key.Color}},
	}
	n, err := m.products().CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, key)
}

func (m *MongoStore) Release(ctx context.Context, key domain.VariantKey, qty int) error {
	filter := bson.M{
		"_id":      key.ProductID,
		"variants": bson.M{"$elemMatch": bson.M{"size": key.Size, "color": key.Color}},
	}
	res, err := m.products().UpdateOne(ctx, filter,
		bson.M{"$inc": bson.M{"variants.$.stockQuantity": qty}})
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	return nil
}

func (m *MongoStore) SetStock(ctx context.Context, key domain.VariantKey, qty int) error {
	filter := bson.M{
		"_id":      key.ProductID,
		"variants": bson.M{"$elemMatch": bson.M{"size": key.Size, "color": key.Color}},
	}
	res, err := m.products().UpdateOne(ctx, filter,
		bson.M{"$set": bson.M{"variants.$.stockQuantity": qty}})
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	return nil
}

// ---- products ----

func (m *MongoStore) CreateProduct(ctx context.Context, p domain.Product) error {
	if _, err := m.products().InsertOne(ctx, toProductDoc(p)); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (m *MongoStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var doc productDoc
	err := m.products().FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	p, err := fromProductDoc(doc)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *MongoStore) ListProducts(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	filter := bson.M{"isActive": true}
	if category != "" {
		filter["category"] = string(category)
	}
	cur, err := m.products().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	out := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := fromProductDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MongoStore) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := m.products().ReplaceOne(ctx, bson.M{"_id": p.ID}, toProductDoc(p))
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *MongoStore) DeactivateProduct(ctx context.Context, id string) error {
	res, err := m.products().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}})
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *MongoStore) SetRating(ctx context.Context, id string, rating float64, count int) error {
	res, err := m.products().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"rating": rating, "reviewCount": count}})
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- orders ----

func (m *MongoStore) CreateOrder(ctx context.Context, o domain.Order) error {
	if _, err := m.orders().InsertOne(ctx, toOrderDoc(o)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (m *MongoStore) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var doc orderDoc
	err := m.orders().FindOne(ctx, bson.M{"_id": orderID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}
	o, err := fromOrderDoc(doc)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (m *MongoStore) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return m.listOrders(ctx, bson.M{"userId": userID})
}

func (m *MongoStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return m.listOrders(ctx, bson.M{})
}

func (m *MongoStore) listOrders(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	cur, err := m.orders().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	out := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		o, err := fromOrderDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *MongoStore) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	res, err := m.orders().UpdateOne(ctx, bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now()}})
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- users ----

func (m *MongoStore) CreateUser(ctx context.Context, u domain.User) error {
	if _, err := m.users().InsertOne(ctx, toUserDoc(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: email %s", domain.ErrDuplicate, u.Email)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (m *MongoStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return m.findUser(ctx, bson.M{"_id": id})
}

func (m *MongoStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

func (m *MongoStore) findUser(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	err := m.users().FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	u := fromUserDoc(doc)
	return &u, nil
}

func (m *MongoStore) AddAddress(ctx context.Context, userID string, a domain.Address) error {
	res, err := m.users().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$push": bson.M{"addresses": toAddressDoc(a)}})
	if err != nil {
		return fmt.Errorf("add address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *MongoStore) UpdateAddress(ctx context.Context, userID string, a domain.Address) error {
	// Every field except the default flag; the flag only moves through
	// SetDefaultAddress.
	res, err := m.users().UpdateOne(ctx,
		bson.M{"_id": userID, "addresses._id": a.ID},
		bson.M{"$set": bson.M{
			"addresses.$.fullName":     a.FullName,
			"addresses.$.phone":        a.Phone,
			"addresses.$.addressLine1": a.Line1,
			"addresses.$.addressLine2": a.Line2,
			"addresses.$.landmark":     a.Landmark,
			"addresses.$.city":         a.City,
			"addresses.$.state":        a.State,
			"addresses.$.zipCode":      a.ZipCode,
			"addresses.$.country":      a.Country,
			"addresses.$.addressType":  string(a.Type),
		}})
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *MongoStore) DeleteAddress(ctx context.Context, userID, addressID string) error {
	res, err := m.users().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"addresses": bson.M{"_id": addressID}}})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("%w: address %s", domain.ErrNotFound, addressID)
	}
	return nil
}

// SetDefaultAddress rewrites every address's default flag in one pipeline
// update, so the single-default invariant cannot be lost to a concurrent
// address edit.
func (m *MongoStore) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{{Key: "addresses", Value: bson.D{{Key: "$map", Value: bson.D{
			{Key: "input", Value: "$addresses"},
			{Key: "as", Value: "a"},
			{Key: "in", Value: bson.D{{Key: "$mergeObjects", Value: bson.A{
				"$$a",
				bson.D{{Key: "isDefault", Value: bson.D{{Key: "$eq", Value: bson.A{"$$a._id", addressID}}}}},
			}}}},
		}}}}}}},
	}
	res, err := m.users().UpdateOne(ctx, bson.M{"_id": userID, "addresses._id": addressID}, update)
	if err != nil {
		return fmt.Errorf("set default address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *MongoStore) AddToWishlist(ctx context.Context, userID, productID string) error {
	res, err := m.users().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"wishlist": productID}})
	if err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *MongoStore) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	res, err := m.users().UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"wishlist": productID}})
	if err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- reviews ----

func (m *MongoStore) CreateReview(ctx context.Context, r domain.Review) error {
	doc := reviewDoc{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if _, err := m.reviews().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (m *MongoStore) ListReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	cur, err := m.reviews().Find(ctx, bson.M{"productId": productID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	out := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.Review{
			ID:        doc.ID,
			ProductID: doc.ProductID,
			UserID:    doc.UserID,
			UserName:  doc.UserName,
			Rating:    doc.Rating,
			Comment:   doc.Comment,
			CreatedAt: doc.CreatedAt,
		})
	}
	return out, nil
}

// EnsureIndexes creates the unique email index. Called once at startup.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := m.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// ---- conversions ----

func toProductDoc(p domain.Product) productDoc {
	variants := make([]variantDoc, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, variantDoc{Size: v.Size, Color: v.Color, SKU: v.SKU, Stock: v.Stock})
	}
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    string(p.Category),
		Price:       p.Price.String(),
		Images:      p.Images,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Variants:    variants,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromProductDoc(doc productDoc) (domain.Product, error) {
	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("decode price for product %s: %w", doc.ID, err)
	}
	variants := make([]domain.Variant, 0, len(doc.Variants))
	for _, v := range doc.Variants {
		variants = append(variants, domain.Variant{Size: v.Size, Color: v.Color, SKU: v.SKU, Stock: v.Stock})
	}
	return domain.Product{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Category:    domain.Category(doc.Category),
		Price:       price,
		Images:      doc.Images,
		Sizes:       doc.Sizes,
		Colors:      doc.Colors,
		Variants:    variants,
		Rating:      doc.Rating,
		ReviewCount: doc.ReviewCount,
		Active:      doc.Active,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func toAddressDoc(a domain.Address) addressDoc {
	return addressDoc{
		ID:       a.ID,
		FullName: a.FullName,
		Phone:    a.Phone,
		Line1:    a.Line1,
		Line2:    a.Line2,
		Landmark: a.Landmark,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
		Type:     string(a.Type),
		Default:  a.Default,
	}
}

func fromAddressDoc(doc addressDoc) domain.Address {
	return domain.Address{
		ID:       doc.ID,
		FullName: doc.FullName,
		Phone:    doc.Phone,
		Line1:    doc.Line1,
		Line2:    doc.Line2,
		Landmark: doc.Landmark,
		City:     doc.City,
		State:    doc.State,
		ZipCode:  doc.ZipCode,
		Country:  doc.Country,
		Type:     domain.AddressType(doc.Type),
		Default:  doc.Default,
	}
}

func toOrderDoc(o domain.Order) orderDoc {
	items := make([]lineItemDoc, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, lineItemDoc{
			ProductID: li.ProductID,
			Name:      li.Name,
			Size:      li.Size,
			Color:     li.Color,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice.String(),
		})
	}
	return orderDoc{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		Items:           items,
		ShippingAddress: toAddressDoc(o.ShippingAddress),
		Total:           o.Total.String(),
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func fromOrderDoc(doc orderDoc) (domain.Order, error) {
	total, err := decimal.NewFromString(doc.Total)
	if err != nil {
		return domain.Order{}, fmt.Errorf("decode total for order %s: %w", doc.OrderID, err)
	}
	items := make([]domain.LineItem, 0, len(doc.Items))
	for _, li := range doc.Items {
		price, err := decimal.NewFromString(li.UnitPrice)
		if err != nil {
			return domain.Order{}, fmt.Errorf("decode unit price for order %s: %w", doc.OrderID, err)
		}
		items = append(items, domain.LineItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Size:      li.Size,
			Color:     li.Color,
			Quantity:  li.Quantity,
			UnitPrice: price,
		})
	}
	return domain.Order{
		OrderID:         doc.OrderID,
		UserID:          doc.UserID,
		Items:           items,
		ShippingAddress: fromAddressDoc(doc.ShippingAddress),
		Total:           total,
		Status:          domain.OrderStatus(doc.Status),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}, nil
}

func toUserDoc(u domain.User) userDoc {
	addresses := make([]addressDoc, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		addresses = append(addresses, toAddressDoc(a))
	}
	wishlist := u.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}
	return userDoc{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Phone:        u.Phone,
		Addresses:    addresses,
		Wishlist:     wishlist,
		CreatedAt:    u.CreatedAt,
	}
}

func fromUserDoc(doc userDoc) domain.User {
	addresses := make([]domain.Address, 0, len(doc.Addresses))
	for _, a := range doc.Addresses {
		addresses = append(addresses, fromAddressDoc(a))
	}
	return domain.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         domain.Role(doc.Role),
		Phone:        doc.Phone,
		Addresses:    addresses,
		Wishlist:     doc.Wishlist,
		CreatedAt:    doc.CreatedAt,
	}
}
