package audit

import (
	"errors"
	"sync"
	"time"
)

// Action тип действия аудита
type Action string

const (
	ActionCreate  Action = "create"
	ActionResolve Action = "resolve"
)

// Event структура события аудита
type Event struct {
	Timestamp int64  `json:"ts"`
	Action    Action `json:"action"`
	Mask      string `json:"mask"`
	URL       string `json:"url"`
}

// NewEvent создаёт новое событие аудита
func NewEvent(action Action, mask, url string) Event {
	return Event{
		Timestamp: time.Now().Unix(),
		Action:    action,
		Mask:      mask,
		URL:       url,
	}
}

type Observer interface {
	Notify(event Event)
	Close() error
}

// Publisher рассылает события наблюдателям в фоне, не задерживая запрос
type Publisher struct {
	mu          sync.Mutex
	subscribers []Observer
	wg          sync.WaitGroup
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Subscribe(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers = append(p.subscribers, o)
}

func (p *Publisher) Publish(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, s := range p.subscribers {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			s.Notify(event)
		}()
	}
}

// Close дожидается отправки событий и закрывает всех наблюдателей
func (p *Publisher) Close() error {
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	var errs []error
	for _, obs := range p.subscribers {
		if err := obs.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
