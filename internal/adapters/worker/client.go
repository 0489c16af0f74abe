// Package worker talks to the code generation worker over a newline-delimited JSON protocol.
package worker

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Transpiler = (*Client)(nil)

// outboundMessage is the wire shape of a request. Exactly one payload is set.
type outboundMessage struct {
	ID          string                     `json:"id"`
	Routing     *domain.RoutingRequest     `json:"routing,omitempty"`
	Translation *domain.TranslationRequest `json:"translation,omitempty"`
}

// Client multiplexes concurrent requests over a single worker connection.
// Each request carries a fresh correlation id and responses may arrive in any order.
type Client struct {
	writeMu sync.Mutex
	w       io.WriteCloser

	mu      sync.Mutex
	pending map[string]chan *domain.GenerationResponse
	closed  error

	logger ports.Logger
	done   chan struct{}
}

// NewClient starts dispatching responses read from r. Requests are written to w.
func NewClient(r io.Reader, w io.WriteCloser, logger ports.Logger) *Client {
	c := &Client{
		w:       w,
		pending: make(map[string]chan *domain.GenerationResponse),
		logger:  logger,
		done:    make(chan struct{}),
	}

	go c.readLoop(r)

	return c
}

// Call sends req and waits for the response with the same correlation id.
//
// A response whose type differs from the request kind fails with
// ErrWorkerKindMismatch. If ctx ends first the request is abandoned and a late
// response is dropped. Failures reported by the worker are returned as a
// response with Succeeded set to false.
func (c *Client) Call(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResponse, error) {
	id := uuid.NewString()

	msg, err := encodeRequest(id, req)
	if err != nil {
		return nil, err
	}

	responses := make(chan *domain.GenerationResponse, 1)

	c.mu.Lock()
	if c.closed != nil {
		err := c.closed
		c.mu.Unlock()
		return nil, err
	}
	c.pending[id] = responses
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	if err := c.write(msg); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkerWriteFailed, err.Error()), "kind", string(req.Kind))
	}

	select {
	case resp, ok := <-responses:
		if !ok {
			return nil, c.closeErr()
		}
		if resp.Type != req.Kind {
			err := zerr.Wrap(domain.ErrWorkerKindMismatch, "Expected "+string(req.Kind)+" got "+string(resp.Type))
			return nil, zerr.With(err, "id", id)
		}
		return resp, nil
	case <-ctx.Done():
		return nil, zerr.With(zerr.Wrap(ctx.Err(), "abandoned worker request"), "id", id)
	}
}

// Close closes the request stream. Outstanding calls fail once the worker
// closes its side of the connection.
func (c *Client) Close(_ context.Context) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.w.Close(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		return zerr.Wrap(err, "failed to close worker input")
	}
	return nil
}

// Done is closed once the response stream has ended.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Pending returns the number of requests awaiting a response.
func (c *Client) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}

func (c *Client) write(msg []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_, err := c.w.Write(msg)
	return err
}

func (c *Client) closeErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed != nil {
		return c.closed
	}
	return domain.ErrWorkerClosed
}

// readLoop resolves pending calls until the response stream ends.
func (c *Client) readLoop(r io.Reader) {
	defer close(c.done)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			c.dispatch(line)
		}
		if err != nil {
			c.fail(err)
			return
		}
	}
}

func (c *Client) dispatch(line []byte) {
	var resp domain.GenerationResponse
	if err := json.Unmarshal(line, &resp); err != nil {
		c.logger.Warn("ignoring malformed worker message: " + err.Error())
		return
	}

	c.mu.Lock()
	responses, ok := c.pending[resp.ID]
	if ok {
		delete(c.pending, resp.ID)
	}
	c.mu.Unlock()

	if !ok {
		c.logger.Debug("dropping worker response for unknown id " + resp.ID)
		return
	}

	responses <- &resp
}

// fail rejects every outstanding and future call.
func (c *Client) fail(cause error) {
	err := zerr.Wrap(domain.ErrWorkerClosed, "worker stopped responding")
	if cause != nil && !errors.Is(cause, io.EOF) {
		err = zerr.With(err, "cause", cause.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = err
	for id, responses := range c.pending {
		close(responses)
		delete(c.pending, id)
	}
}

func encodeRequest(id string, req domain.GenerationRequest) ([]byte, error) {
	msg := outboundMessage{ID: id}

	switch req.Kind {
	case domain.KindRouting:
		msg.Routing = req.Routing
	case domain.KindTranslation:
		msg.Translation = req.Translation
	}

	if msg.Routing == nil && msg.Translation == nil {
		return nil, zerr.With(domain.ErrInvalidRequest, "kind", string(req.Kind))
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode worker request")
	}

	return append(data, '\n'), nil
}
