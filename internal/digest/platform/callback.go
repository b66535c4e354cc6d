package platform

import (
	"bytes"
	"sync"
)

// CallbackCrypto computes digests on a separate goroutine and reports them through
// handlers attached to the returned Operation.
type CallbackCrypto struct{}

// NewCallbackCrypto creates a callback-style digest facility.
func NewCallbackCrypto() *CallbackCrypto {
	return &CallbackCrypto{}
}

// Digest starts hashing a private copy of data.
func (c *CallbackCrypto) Digest(algorithm string, data []byte) Operation {
	op := &operation{}

	newHash, err := newHashFor(algorithm)
	if err != nil {
		op.settle(nil, err)
		return op
	}

	buf := bytes.Clone(data)
	go func() {
		op.settle(digestOf(newHash, buf), nil)
	}()
	return op
}

// operation settles once. A handler attached after settlement runs immediately,
// so attaching late never loses the outcome.
type operation struct {
	mu         sync.Mutex
	done       bool
	sum        []byte
	err        error
	onComplete func([]byte)
	onError    func(error)
}

func (o *operation) OnComplete(fn func(sum []byte)) {
	o.mu.Lock()
	if !o.done {
		o.onComplete = fn
		o.mu.Unlock()
		return
	}
	sum, err := o.sum, o.err
	o.mu.Unlock()

	if err == nil && fn != nil {
		fn(sum)
	}
}

func (o *operation) OnError(fn func(err error)) {
	o.mu.Lock()
	if !o.done {
		o.onError = fn
		o.mu.Unlock()
		return
	}
	err := o.err
	o.mu.Unlock()

	if err != nil && fn != nil {
		fn(err)
	}
}

func (o *operation) settle(sum []byte, err error) {
	o.mu.Lock()
	if o.done {
		o.mu.Unlock()
		return
	}
	o.done, o.sum, o.err = true, sum, err
	onComplete, onError := o.onComplete, o.onError
	o.mu.Unlock()

	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	if onComplete != nil {
		onComplete(sum)
	}
}
