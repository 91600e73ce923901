package pipeline

import (
	"context"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/parser"
)

// ParseReply is the response to a parse request.
type ParseReply struct {
	Result *parser.Result
	Err    error
}

// CategorizeReply is the response to a categorize request.
type CategorizeReply struct {
	Transactions []models.Transaction
}

type parseRequest struct {
	content  string
	fileName string
	reply    chan ParseReply
}

type categorizeRequest struct {
	transactions []models.Transaction
	userRules    []models.Rule
	reply        chan CategorizeReply
}

// Worker runs parsing and categorization off the caller's goroutine as an
// actor mailbox: each request carries a whole batch in and a whole batch
// out, nothing is shared across the boundary, and there is no streaming of
// partial results.
//
// Cancellation is caller-side only. A caller that abandons a request (its
// context expires) simply stops waiting; the computation still runs to
// completion and its reply is dropped, since reply channels are buffered.
type Worker struct {
	log      logging.Logger
	pipeline *Pipeline
	requests chan any
	done     chan struct{}
}

// NewWorker creates and starts a worker backed by the given pipeline.
func NewWorker(log logging.Logger, p *Pipeline) *Worker {
	if log == nil {
		log = logging.Default()
	}
	if p == nil {
		p = New(log, Options{})
	}

	w := &Worker{
		log:      log,
		pipeline: p,
		requests: make(chan any),
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

// Close shuts the worker down. In-flight requests complete first.
func (w *Worker) Close() {
	close(w.requests)
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	for req := range w.requests {
		switch r := req.(type) {
		case parseRequest:
			result, err := parser.Parse(r.content, r.fileName, w.log)
			r.reply <- ParseReply{Result: result, Err: err}
		case categorizeRequest:
			annotated := w.pipeline.Categorize(r.transactions, r.userRules)
			r.reply <- CategorizeReply{Transactions: annotated}
		}
	}
}

// Parse submits a parse request and waits for the reply or context
// cancellation. On cancellation the work is not interrupted; its result is
// discarded.
func (w *Worker) Parse(ctx context.Context, content, fileName string) (*parser.Result, error) {
	req := parseRequest{
		content:  content,
		fileName: fileName,
		reply:    make(chan ParseReply, 1),
	}

	select {
	case w.requests <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case reply := <-req.reply:
		return reply.Result, reply.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Categorize submits a categorize request and waits for the annotated
// batch or context cancellation.
func (w *Worker) Categorize(ctx context.Context, transactions []models.Transaction, userRules []models.Rule) ([]models.Transaction, error) {
	req := categorizeRequest{
		transactions: transactions,
		userRules:    userRules,
		reply:        make(chan CategorizeReply, 1),
	}

	select {
	case w.requests <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case reply := <-req.reply:
		return reply.Transactions, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
