package query

import (
	"context"

	"gorm.io/gorm"
)

type Scope func(*gorm.DB) *gorm.DB

// Query monta consultas GORM sobre uma tabela, lendo linhas do tipo T.
type Query[T any] struct {
	db      *gorm.DB
	ctx     context.Context
	table   string
	selects string
	orderBy string
	groupBy string
	scopes  []Scope
}

func New[T any](db *gorm.DB, table string) *Query[T] {
	return &Query[T]{
		db:     db,
		ctx:    context.Background(),
		table:  table,
		scopes: make([]Scope, 0),
	}
}

func (q *Query[T]) Context(ctx context.Context) *Query[T] {
	q.ctx = ctx
	return q
}

func (q *Query[T]) Select(columns string) *Query[T] {
	q.selects = columns
	return q
}

func (q *Query[T]) Where(query interface{}, args ...interface{}) *Query[T] {
	q.scopes = append(q.scopes, func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	})
	return q
}

// Scope aplica filtros opcionais; scopes nil são ignorados.
func (q *Query[T]) Scope(scopes ...Scope) *Query[T] {
	for _, s := range scopes {
		if s != nil {
			q.scopes = append(q.scopes, s)
		}
	}
	return q
}

func (q *Query[T]) Order(order string) *Query[T] {
	q.orderBy = order
	return q
}

func (q *Query[T]) Group(column string) *Query[T] {
	q.groupBy = column
	return q
}

func (q *Query[T]) build() *gorm.DB {
	db := q.db.WithContext(q.ctx).Table(q.table)
	if q.selects != "" {
		db = db.Select(q.selects)
	}
	for _, scope := range q.scopes {
		db = scope(db)
	}
	if q.groupBy != "" {
		db = db.Group(q.groupBy)
	}
	if q.orderBy != "" {
		db = db.Order(q.orderBy)
	}
	return db
}

func (q *Query[T]) Find() ([]T, error) {
	var results []T
	err := q.build().Find(&results).Error
	return results, err
}

func (q *Query[T]) DB() *gorm.DB {
	return q.build()
}
