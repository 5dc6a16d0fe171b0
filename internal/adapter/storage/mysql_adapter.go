package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	"github.com/ltnam/fashion-store/internal/core/domain"
)

const mysqlErrDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry
}

// MySQLStore is the relational implementation of the repository ports and
// the stock ledger. Reservation is a conditional UPDATE guarded by
// "stock >= ?" with a rows-affected check, so the check-and-decrement is
// atomic at the storage layer.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// ---- stock ledger ----

func (m *MySQLStore) Reserve(ctx context.Context, key domain.VariantKey, qty int) (int, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE product_variants
		SET stock = stock - ?
		WHERE product_id = ? AND size = ? AND color = ? AND stock >= ?`,
		qty, key.ProductID, key.Size, key.Color, qty,
	)
	if err != nil {
		return 0, fmt.Errorf("reserve stock: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return 0, m.classifyReserveMiss(ctx, key)
	}

	var remaining int
	err = m.db.QueryRowContext(ctx, `
		SELECT stock FROM product_variants
		WHERE product_id = ? AND size = ? AND color = ?`,
		key.ProductID, key.Size, key.Color,
	).Scan(&remaining)
	if err != nil {
		return 0, fmt.Errorf("read remaining stock: %w", err)
	}
	return remaining, nil
}

func (m *MySQLStore) classifyReserveMiss(ctx context.Context, key domain.VariantKey) error {
	var one int
	err := m.db.QueryRowContext(ctx, `
		SELECT 1 FROM product_variants
		WHERE product_id = ? AND size = ? AND color = ?`,
		key.ProductID, key.Size, key.Color,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, key)
}

func (m *MySQLStore) Release(ctx context.Context, key domain.VariantKey, qty int) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE product_variants
		SET stock = stock + ?
		WHERE product_id = ? AND size = ? AND color = ?`,
		qty, key.ProductID, key.Size, key.Color,
	)
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	return nil
}

func (m *MySQLStore) SetStock(ctx context.Context, key domain.VariantKey, qty int) error {
	// Existence is checked first: an UPDATE that sets the current value
	// reports zero affected rows.
	var one int
	err := m.db.QueryRowContext(ctx, `
		SELECT 1 FROM product_variants
		WHERE product_id = ? AND size = ? AND color = ?`,
		key.ProductID, key.Size, key.Color,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}

	_, err = m.db.ExecContext(ctx, `
		UPDATE product_variants
		SET stock = ?
		WHERE product_id = ? AND size = ? AND color = ?`,
		qty, key.ProductID, key.Size, key.Color,
	)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// ---- products ----

func (m *MySQLStore) CreateProduct(ctx context.Context, p domain.Product) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	images, _ := json.Marshal(p.Images)
	sizes, _ := json.Marshal(p.Sizes)
	colors, _ := json.Marshal(p.Colors)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (id, name, description, category, price, images, sizes, colors, rating, review_count, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, string(p.Category), p.Price.String(),
		images, sizes, colors, p.Rating, p.ReviewCount, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	if err := insertVariants(ctx, tx, p.ID, p.Variants); err != nil {
		return err
	}
	return tx.Commit()
}

func insertVariants(ctx context.Context, tx *sql.Tx, productID string, variants []domain.Variant) error {
	for _, v := range variants {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_variants (product_id, size, color, sku, stock)
			VALUES (?, ?, ?, ?, ?)`,
			productID, v.Size, v.Color, v.SKU, v.Stock,
		)
		if err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
	}
	return nil
}

func (m *MySQLStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	row := m.db.QueryRowContext(ctx, `
		SELECT id, name, description, category, price, images, sizes, colors, rating, review_count, is_active, created_at, updated_at
		FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := m.loadVariants(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *MySQLStore) ListProducts(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, category, price, images, sizes, colors, rating, review_count, is_active, created_at, updated_at
		FROM products WHERE is_active = 1`
	args := []any{}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	for i := range out {
		if err := m.loadVariants(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p                     domain.Product
		category, price       string
		images, sizes, colors []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &category, &price,
		&images, &sizes, &colors, &p.Rating, &p.ReviewCount, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	p.Category = domain.Category(category)
	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("decode price for product %s: %w", p.ID, err)
	}
	if len(images) > 0 {
		json.Unmarshal(images, &p.Images)
	}
	if len(sizes) > 0 {
		json.Unmarshal(sizes, &p.Sizes)
	}
	if len(colors) > 0 {
		json.Unmarshal(colors, &p.Colors)
	}
	return &p, nil
}

func (m *MySQLStore) loadVariants(ctx context.Context, p *domain.Product) error {
	rows, err := m.db.QueryContext(ctx, `
		SELECT size, color, sku, stock FROM product_variants WHERE product_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("query variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.Variant
		if err := rows.Scan(&v.Size, &v.Color, &v.SKU, &v.Stock); err != nil {
			return fmt.Errorf("scan variant: %w", err)
		}
		p.Variants = append(p.Variants, v)
	}
	return rows.Err()
}

func (m *MySQLStore) UpdateProduct(ctx context.Context, p domain.Product) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	images, _ := json.Marshal(p.Images)
	sizes, _ := json.Marshal(p.Sizes)
	colors, _ := json.Marshal(p.Colors)

	_, err = tx.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, category = ?, price = ?, images = ?, sizes = ?, colors = ?, rating = ?, review_count = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Description, string(p.Category), p.Price.String(),
		images, sizes, colors, p.Rating, p.ReviewCount, p.Active, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_variants WHERE product_id = ?`, p.ID); err != nil {
		return fmt.Errorf("delete variants: %w", err)
	}
	if err := insertVariants(ctx, tx, p.ID, p.Variants); err != nil {
		return err
	}
	return tx.Commit()
}

func (m *MySQLStore) DeactivateProduct(ctx context.Context, id string) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE products SET is_active = 0, updated_at = NOW() WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *MySQLStore) SetRating(ctx context.Context, id string, rating float64, count int) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE products SET rating = ?, review_count = ? WHERE id = ?`, rating, count, id)
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	return nil
}

// ---- orders ----

func (m *MySQLStore) CreateOrder(ctx context.Context, o domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	shipping, err := json.Marshal(toAddressDoc(o.ShippingAddress))
	if err != nil {
		return fmt.Errorf("encode shipping address: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, shipping_address, total_amount, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.OrderID, o.UserID, shipping, o.Total.String(), string(o.Status), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, li := range o.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, size, color, quantity, unit_price)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			o.OrderID, li.ProductID, li.Name, li.Size, li.Color, li.Quantity, li.UnitPrice.String(),
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return tx.Commit()
}

func (m *MySQLStore) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var (
		o             domain.Order
		shipping      []byte
		total, status string
	)
	err := m.db.QueryRowContext(ctx, `
		SELECT id, user_id, shipping_address, total_amount, status, created_at, updated_at
		FROM orders WHERE id = ?`, orderID,
	).Scan(&o.OrderID, &o.UserID, &shipping, &total, &status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}
	if err := decodeOrderFields(&o, shipping, total, status); err != nil {
		return nil, err
	}
	if err := m.loadOrderItems(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func decodeOrderFields(o *domain.Order, shipping []byte, total, status string) error {
	var addr addressDoc
	if err := json.Unmarshal(shipping, &addr); err != nil {
		return fmt.Errorf("decode shipping address for order %s: %w", o.OrderID, err)
	}
	o.ShippingAddress = fromAddressDoc(addr)
	t, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("decode total for order %s: %w", o.OrderID, err)
	}
	o.Total = t
	o.Status = domain.OrderStatus(status)
	return nil
}

func (m *MySQLStore) loadOrderItems(ctx context.Context, o *domain.Order) error {
	rows, err := m.db.QueryContext(ctx, `
		SELECT product_id, name, size, color, quantity, unit_price
		FROM order_items WHERE order_id = ?`, o.OrderID)
	if err != nil {
		return fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			li    domain.LineItem
			price string
		)
		if err := rows.Scan(&li.ProductID, &li.Name, &li.Size, &li.Color, &li.Quantity, &price); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		li.UnitPrice, err = decimal.NewFromString(price)
		if err != nil {
			return fmt.Errorf("decode unit price for order %s: %w", o.OrderID, err)
		}
		o.Items = append(o.Items, li)
	}
	return rows.Err()
}

func (m *MySQLStore) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return m.listOrders(ctx, `WHERE user_id = ?`, userID)
}

func (m *MySQLStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return m.listOrders(ctx, ``)
}

func (m *MySQLStore) listOrders(ctx context.Context, where string, args ...any) ([]domain.Order, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, user_id, shipping_address, total_amount, status, created_at, updated_at
		FROM orders `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var (
			o             domain.Order
			shipping      []byte
			total, status string
		)
		if err := rows.Scan(&o.OrderID, &o.UserID, &shipping, &total, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := decodeOrderFields(&o, shipping, total, status); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	for i := range out {
		if err := m.loadOrderItems(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (m *MySQLStore) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?`,
		string(status), orderID,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		var one int
		if err := m.db.QueryRowContext(ctx, `SELECT 1 FROM orders WHERE id = ?`, orderID).Scan(&one); errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
	}
	return nil
}

// ---- users ----

func (m *MySQLStore) CreateUser(ctx context.Context, u domain.User) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.Phone, u.CreatedAt,
	)
	if isDuplicateEntry(err) {
		return fmt.Errorf("%w: email %s", domain.ErrDuplicate, u.Email)
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (m *MySQLStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return m.findUser(ctx, `id = ?`, id)
}

func (m *MySQLStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.findUser(ctx, `email = ?`, email)
}

func (m *MySQLStore) findUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, phone, created_at
		FROM users WHERE `+where, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Phone, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	u.Role = domain.Role(role)

	rows, err := m.db.QueryContext(ctx, `
		SELECT id, full_name, phone, line1, line2, landmark, city, state, zip_code, country, address_type, is_default
		FROM addresses WHERE user_id = ? ORDER BY position`, u.ID)
	if err != nil {
		return nil, fmt.Errorf("query addresses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			a     domain.Address
			atype string
		)
		if err := rows.Scan(&a.ID, &a.FullName, &a.Phone, &a.Line1, &a.Line2, &a.Landmark,
			&a.City, &a.State, &a.ZipCode, &a.Country, &atype, &a.Default); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		a.Type = domain.AddressType(atype)
		u.Addresses = append(u.Addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan addresses: %w", err)
	}

	wrows, err := m.db.QueryContext(ctx, `
		SELECT product_id FROM wishlist_items WHERE user_id = ? ORDER BY position`, u.ID)
	if err != nil {
		return nil, fmt.Errorf("query wishlist: %w", err)
	}
	defer wrows.Close()
	for wrows.Next() {
		var id string
		if err := wrows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan wishlist: %w", err)
		}
		u.Wishlist = append(u.Wishlist, id)
	}
	if err := wrows.Err(); err != nil {
		return nil, fmt.Errorf("scan wishlist: %w", err)
	}
	return &u, nil
}

func (m *MySQLStore) AddAddress(ctx context.Context, userID string, a domain.Address) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO addresses (id, user_id, full_name, phone, line1, line2, landmark, city, state, zip_code, country, address_type, is_default, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT next_pos FROM (SELECT COALESCE(MAX(a2.position), 0) + 1 AS next_pos FROM addresses a2 WHERE a2.user_id = ?) pos))`,
		a.ID, userID, a.FullName, a.Phone, a.Line1, a.Line2, a.Landmark,
		a.City, a.State, a.ZipCode, a.Country, string(a.Type), a.Default, userID,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

func (m *MySQLStore) UpdateAddress(ctx context.Context, userID string, a domain.Address) error {
	// is_default deliberately untouched; the flag only moves through
	// SetDefaultAddress.
	_, err := m.db.ExecContext(ctx, `
		UPDATE addresses
		SET full_name = ?, phone = ?, line1 = ?, line2 = ?, landmark = ?, city = ?, state = ?, zip_code = ?, country = ?, address_type = ?
		WHERE id = ? AND user_id = ?`,
		a.FullName, a.Phone, a.Line1, a.Line2, a.Landmark, a.City, a.State, a.ZipCode, a.Country, string(a.Type),
		a.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}

func (m *MySQLStore) DeleteAddress(ctx context.Context, userID, addressID string) error {
	result, err := m.db.ExecContext(ctx, `
		DELETE FROM addresses WHERE id = ? AND user_id = ?`, addressID, userID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetDefaultAddress flips the flag for a whole user in a single statement,
// so no interleaving can leave two defaults.
func (m *MySQLStore) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	var one int
	err := m.db.QueryRowContext(ctx, `
		SELECT 1 FROM addresses WHERE id = ? AND user_id = ?`, addressID, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("set default address: %w", err)
	}

	_, err = m.db.ExecContext(ctx, `
		UPDATE addresses SET is_default = (id = ?) WHERE user_id = ?`, addressID, userID)
	if err != nil {
		return fmt.Errorf("set default address: %w", err)
	}
	return nil
}

func (m *MySQLStore) AddToWishlist(ctx context.Context, userID, productID string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT IGNORE INTO wishlist_items (user_id, product_id, position)
		VALUES (?, ?, (SELECT next_pos FROM (SELECT COALESCE(MAX(w2.position), 0) + 1 AS next_pos FROM wishlist_items w2 WHERE w2.user_id = ?) pos))`,
		userID, productID, userID,
	)
	if err != nil {
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

func (m *MySQLStore) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	_, err := m.db.ExecContext(ctx, `
		DELETE FROM wishlist_items WHERE user_id = ? AND product_id = ?`, userID, productID)
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}

// ---- reviews ----

func (m *MySQLStore) CreateReview(ctx context.Context, r domain.Review) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO reviews (id, product_id, user_id, user_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ProductID, r.UserID, r.UserName, r.Rating, r.Comment, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (m *MySQLStore) ListReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, product_id, user_id, user_name, rating, comment, created_at
		FROM reviews WHERE product_id = ? ORDER BY created_at DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var r domain.Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.UserID, &r.UserName, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
