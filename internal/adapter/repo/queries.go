package repo

// Order queries
const (
	upsertOrderSQL = `
		INSERT INTO orders (id, created_at, table_number, total_amount, status, waiter_id, waiter_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			created_at = EXCLUDED.created_at,
			table_number = EXCLUDED.table_number,
			total_amount = EXCLUDED.total_amount,
			status = EXCLUDED.status,
			waiter_id = EXCLUDED.waiter_id,
			waiter_name = EXCLUDED.waiter_name`

	deleteOrderItemsSQL = `DELETE FROM order_items WHERE order_id = $1`

	insertOrderItemSQL = `
		INSERT INTO order_items (order_id, position, dish_id, dish_name, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6)`

	selectOrdersSQL = `
		SELECT o.id, o.created_at, o.table_number, o.total_amount, o.status, o.waiter_id,
		       COALESCE(w.name, o.waiter_name)
		FROM orders o
		LEFT JOIN waiters w ON w.id = o.waiter_id`

	selectOrderItemsSQL = `
		SELECT oi.order_id, oi.dish_id, COALESCE(d.name, oi.dish_name), oi.quantity, oi.price
		FROM order_items oi
		LEFT JOIN dishes d ON d.id = oi.dish_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.position`

	updateOrderStatusSQL = `UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`
	selectOrderStatusSQL = `SELECT status FROM orders WHERE id = $1`
)

// Catalog queries
const (
	selectDishesSQL = `SELECT id, name, category, price, is_available, created_at, updated_at FROM dishes`
	insertDishSQL   = `
		INSERT INTO dishes (id, name, category, price, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	updateDishSQL = `
		UPDATE dishes SET name = $2, category = $3, price = $4, is_available = $5, updated_at = $6
		WHERE id = $1`
	deleteDishSQL = `DELETE FROM dishes WHERE id = $1`

	selectWaitersSQL = `SELECT id, name, phone, hired_at, created_at FROM waiters`
	insertWaiterSQL  = `
		INSERT INTO waiters (id, name, phone, hired_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	updateWaiterSQL = `UPDATE waiters SET name = $2, phone = $3, hired_at = $4 WHERE id = $1`
	deleteWaiterSQL = `DELETE FROM waiters WHERE id = $1`
)

// Back-office queries
const (
	selectSettingsSQL = `SELECT payload FROM settings WHERE id = 1`
	upsertSettingsSQL = `
		INSERT INTO settings (id, payload) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`

	selectUploadsSQL = `SELECT id, file_name, file_path, user_id, created_at FROM uploads`
	insertUploadSQL  = `
		INSERT INTO uploads (id, file_name, file_path, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	deleteUploadSQL = `DELETE FROM uploads WHERE id = $1`

	selectUserByNameSQL = `SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1`
	insertUserSQL       = `
		INSERT INTO users (id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
)
