// Package notify fans editor events out to registered observers. Delivery
// is synchronous and in registration order; the editor is single-threaded,
// so no locking guards the subscriber list.
package notify

import "github.com/google/uuid"

// Observer reacts to editor events. Observers are registered by identity,
// so implementations should be pointer types.
type Observer interface {
	// ParagraphsDeleted is delivered when an edit removes paragraphs,
	// with the number removed.
	ParagraphsDeleted(count int)
	// AutoSaved is delivered after the buffer is written to path.
	AutoSaved(path string)
}

// Notifier delivers events to its subscribers. The zero value is ready to
// use.
type Notifier struct {
	observers []Observer
}

// Subscribe registers o. Registering the same observer again is a no-op;
// nil observers are ignored.
func (n *Notifier) Subscribe(o Observer) {
	if o == nil {
		return
	}
	for _, cur := range n.observers {
		if cur == o {
			return
		}
	}
	n.observers = append(n.observers, o)
}

// Unsubscribe removes o if present.
func (n *Notifier) Unsubscribe(o Observer) {
	for i, cur := range n.observers {
		if cur == o {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// Len reports the number of registered observers.
func (n *Notifier) Len() int {
	return len(n.observers)
}

// ParagraphsDeleted delivers a deletion event to every subscriber, in
// registration order.
func (n *Notifier) ParagraphsDeleted(count int) {
	for _, o := range n.observers {
		o.ParagraphsDeleted(count)
	}
}

// AutoSaved delivers an auto-save event to every subscriber, in
// registration order.
func (n *Notifier) AutoSaved(path string) {
	for _, o := range n.observers {
		o.AutoSaved(path)
	}
}

// Funcs adapts plain callbacks to the Observer interface. Each Funcs value
// carries a unique ID, so two adapters built from the same callbacks are
// still distinct subscribers. Nil callbacks are skipped.
type Funcs struct {
	id        string
	OnDeleted func(count int)
	OnSaved   func(path string)
}

// NewFuncs builds a callback-backed observer.
func NewFuncs(onDeleted func(count int), onSaved func(path string)) *Funcs {
	return &Funcs{
		id:        uuid.NewString(),
		OnDeleted: onDeleted,
		OnSaved:   onSaved,
	}
}

// ID returns the adapter's unique identity.
func (f *Funcs) ID() string {
	return f.id
}

// ParagraphsDeleted implements Observer.
func (f *Funcs) ParagraphsDeleted(count int) {
	if f.OnDeleted != nil {
		f.OnDeleted(count)
	}
}

// AutoSaved implements Observer.
func (f *Funcs) AutoSaved(path string) {
	if f.OnSaved != nil {
		f.OnSaved(path)
	}
}
