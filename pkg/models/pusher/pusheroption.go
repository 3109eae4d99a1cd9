package pusher

import "time"

type Option[T any] func(*Pusher[T])

func WithPushLogic[T any](PushLogic func(...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.PushLogic = PushLogic
	}
}

func WithPushInterval[T any](PushInterval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		if PushInterval > 0 {
			p.PushInterval = PushInterval
		}
	}
}

func WithMaxBuffered[T any](MaxBuffered int) Option[T] {
	return func(p *Pusher[T]) {
		p.MaxBuffered = MaxBuffered
	}
}

func WithErrorHandler[T any](ErrorHandler func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.ErrorHandler = ErrorHandler
	}
}
