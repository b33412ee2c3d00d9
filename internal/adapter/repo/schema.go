package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS waiters (
  id text PRIMARY KEY,
  name text NOT NULL,
  phone text NOT NULL,
  hired_at date NOT NULL,
  created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS dishes (
  id text PRIMARY KEY,
  name text NOT NULL,
  category text NOT NULL,
  price bigint NOT NULL CHECK (price > 0),
  is_available boolean NOT NULL DEFAULT true,
  created_at timestamptz NOT NULL DEFAULT now(),
  updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
  id text PRIMARY KEY,
  created_at timestamptz NOT NULL,
  table_number integer NOT NULL,
  total_amount bigint NOT NULL CHECK (total_amount >= 0),
  status text NOT NULL,
  waiter_id text NOT NULL DEFAULT '',
  waiter_name text NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS orders_status_created_idx ON orders (status, created_at);

CREATE TABLE IF NOT EXISTS order_items (
  order_id text NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  position integer NOT NULL,
  dish_id text NOT NULL DEFAULT '',
  dish_name text NOT NULL DEFAULT '',
  quantity integer NOT NULL,
  price bigint NOT NULL,
  PRIMARY KEY (order_id, position)
);

CREATE TABLE IF NOT EXISTS settings (
  id smallint PRIMARY KEY CHECK (id = 1),
  payload jsonb NOT NULL
);

CREATE TABLE IF NOT EXISTS uploads (
  id text PRIMARY KEY,
  file_name text NOT NULL,
  file_path text NOT NULL,
  user_id text NOT NULL,
  created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users (
  id text PRIMARY KEY,
  username text NOT NULL UNIQUE,
  password_hash text NOT NULL,
  role text NOT NULL,
  created_at timestamptz NOT NULL DEFAULT now()
);`

// EnsureSchema — создать необходимые таблицы, если отсутствуют.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return errors.Wrap(err, "ensure schema")
}
