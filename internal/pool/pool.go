// Package pool переиспользует буферизованные объекты middleware между запросами.
package pool

import (
	"sync"
	"sync/atomic"
)

// Resettable сбрасывает состояние объекта перед возвратом в пул
type Resettable interface {
	Reset()
}

// Pool хранит объекты типа T и считает, сколько из них было создано заново
type Pool[T Resettable] struct {
	pool     sync.Pool
	created  atomic.Int64
	acquired atomic.Int64
}

// New создает Pool, fn вызывается, когда свободных объектов нет
func New[T Resettable](fn func() T) *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any {
		p.created.Add(1)
		return fn()
	}
	return p
}

// Acquire берёт объект из пула и подготавливает его через prepare
func (p *Pool[T]) Acquire(prepare func(T)) T {
	x := p.pool.Get().(T)
	p.acquired.Add(1)
	if prepare != nil {
		prepare(x)
	}
	return x
}

// Release сбрасывает объект и возвращает его в пул
func (p *Pool[T]) Release(x T) {
	x.Reset()
	p.pool.Put(x)
}

// Stats возвращает число созданных и выданных объектов
func (p *Pool[T]) Stats() (created, acquired int64) {
	return p.created.Load(), p.acquired.Load()
}
