package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, every
// PushInterval or as soon as MaxBuffered messages are waiting.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	MaxBuffered    int
	ErrorHandler   func(error)

	lock    sync.Mutex
	flush   chan struct{}
	done    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
		MaxBuffered:  64,
		flush:        make(chan struct{}, 1),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll hands every buffered message to PushLogic. On failure the messages stay buffered.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	messages := p.MessagesBuffer
	p.MessagesBuffer = nil
	p.lock.Unlock()

	if len(messages) == 0 {
		return nil
	}

	if err := p.PushLogic(messages...); err != nil {
		p.lock.Lock()
		p.MessagesBuffer = append(messages, p.MessagesBuffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
	full := p.MaxBuffered > 0 && len(p.MessagesBuffer) >= p.MaxBuffered
	p.lock.Unlock()

	if full {
		select {
		case p.flush <- struct{}{}:
		default:
		}
	}
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	p.stopped.Add(1)
	go func() {
		defer p.stopped.Done()

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-p.done:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			case <-ticker.C:
			case <-p.flush:
			}

			if err := p.PushAll(); err != nil {
				p.ErrorHandler(err)
			}
		}
	}()
}

// Stop flushes what is left and waits for the push loop to exit.
func (p *Pusher[T]) Stop() {
	p.once.Do(func() {
		close(p.done)
	})
	p.stopped.Wait()
}
